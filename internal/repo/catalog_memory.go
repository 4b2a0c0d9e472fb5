package repo

import "github.com/rogerio-castellano/storefront-simulator/internal/models"

// AllCategories is the FilterByCategory sentinel for "no filter".
const AllCategories = 0

// InMemoryCatalogRepository is the fixture-backed implementation of
// CatalogRepository. It is read-only after construction and safe to share.
type InMemoryCatalogRepository struct {
	products   []models.Product
	categories []models.Category
}

// NewInMemoryCatalogRepository creates a catalog over the given fixture
// slices, preserving their order.
func NewInMemoryCatalogRepository(products []models.Product, categories []models.Category) *InMemoryCatalogRepository {
	return &InMemoryCatalogRepository{
		products:   products,
		categories: categories,
	}
}

// GetAll retrieves all products in fixture order.
func (r *InMemoryCatalogRepository) GetAll() []models.Product {
	return r.products
}

// GetByID retrieves a product by its ID.
func (r *InMemoryCatalogRepository) GetByID(id int) (models.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// FilterByCategory returns the products belonging to the category with the
// given id. The sentinel AllCategories clears the filter, and an id that
// matches no category also falls back to the full list rather than an empty
// one. The fallback is long-standing observed behavior that callers rely on.
func (r *InMemoryCatalogRepository) FilterByCategory(categoryID int) []models.Product {
	if categoryID == AllCategories {
		return r.products
	}

	name := ""
	for _, c := range r.categories {
		if c.ID == categoryID {
			name = c.Name
			break
		}
	}
	if name == "" {
		return r.products
	}

	var filtered []models.Product
	for _, p := range r.products {
		if p.Category == name {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Categories retrieves the category list in fixture order.
func (r *InMemoryCatalogRepository) Categories() []models.Category {
	return r.categories
}
