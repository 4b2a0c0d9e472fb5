package repo

import (
	"errors"

	"github.com/rogerio-castellano/storefront-simulator/internal/models"
)

// ErrProductNotFound is returned when a product is not found in the catalog.
var ErrProductNotFound = errors.New("product not found")

// CatalogRepository defines the read operations over the product catalog.
type CatalogRepository interface {
	GetAll() []models.Product
	GetByID(id int) (models.Product, error)
	FilterByCategory(categoryID int) []models.Product
	Categories() []models.Category
}
