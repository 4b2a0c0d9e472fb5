package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Product represents a catalog entry. Stock is the ceiling for any cart
// line's quantity; the cart never decrements it, only compares against it.
type Product struct {
	ID          int             `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Description string          `json:"description" yaml:"description"`
	Price       decimal.Decimal `json:"price" yaml:"price"`
	Stock       int             `json:"stock" yaml:"stock"`
	Category    string          `json:"category" yaml:"category"`
}

// Category groups products by name match on Product.Category.
type Category struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// NewProduct validates every field and returns the entity or a
// *ValidationError for the first offending field.
func NewProduct(id int, name, description string, price decimal.Decimal, stock int, category string) (Product, error) {
	if id <= 0 {
		return Product{}, &ValidationError{Field: "ID", Description: "id must be a positive number"}
	}
	if strings.TrimSpace(name) == "" {
		return Product{}, &ValidationError{Field: "Name", Description: "name is required"}
	}
	if !price.IsPositive() {
		return Product{}, &ValidationError{Field: "Price", Description: "price must be greater than zero"}
	}
	if stock < 0 {
		return Product{}, &ValidationError{Field: "Stock", Description: "stock cannot be negative"}
	}
	if strings.TrimSpace(category) == "" {
		return Product{}, &ValidationError{Field: "Category", Description: "category is required"}
	}

	return Product{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
		Category:    category,
	}, nil
}

func NewCategory(id int, name string) (Category, error) {
	if id <= 0 {
		return Category{}, &ValidationError{Field: "ID", Description: "id must be a positive number"}
	}
	if strings.TrimSpace(name) == "" {
		return Category{}, &ValidationError{Field: "Name", Description: "name is required"}
	}

	return Category{ID: id, Name: name}, nil
}
