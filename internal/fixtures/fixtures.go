// Package fixtures holds the static seed data for a session: the product
// catalog, its categories, and the user list. Everything goes through the
// validating constructors, so a bad fixture fails the load instead of
// leaking an invalid entity into the system.
package fixtures

import (
	_ "embed"
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rogerio-castellano/storefront-simulator/internal/auth"
	"github.com/rogerio-castellano/storefront-simulator/internal/models"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

type productRecord struct {
	ID          int    `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Price       string `yaml:"price"`
	Stock       int    `yaml:"stock"`
	Category    string `yaml:"category"`
}

type categoryRecord struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
}

type userRecord struct {
	ID       int    `yaml:"id"`
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type fixtureFile struct {
	Products   []productRecord  `yaml:"products"`
	Categories []categoryRecord `yaml:"categories"`
	Users      []userRecord     `yaml:"users"`
}

// Data is the validated seed for one process run.
type Data struct {
	Products   []models.Product
	Categories []models.Category
	Users      []models.User
}

// Load parses the embedded fixture and builds every entity. Fixture
// passwords are bcrypt-hashed here; the plaintext never leaves this package.
func Load() (Data, error) {
	return load(fixturesYAML)
}

func load(raw []byte) (Data, error) {
	var f fixtureFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return Data{}, fmt.Errorf("parsing fixtures: %w", err)
	}

	var data Data
	for _, rec := range f.Products {
		price, err := decimal.NewFromString(rec.Price)
		if err != nil {
			return Data{}, fmt.Errorf("product %d: invalid price %q: %w", rec.ID, rec.Price, err)
		}
		p, err := models.NewProduct(rec.ID, rec.Name, rec.Description, price, rec.Stock, rec.Category)
		if err != nil {
			return Data{}, fmt.Errorf("product %d: %w", rec.ID, err)
		}
		data.Products = append(data.Products, p)
	}

	for _, rec := range f.Categories {
		c, err := models.NewCategory(rec.ID, rec.Name)
		if err != nil {
			return Data{}, fmt.Errorf("category %d: %w", rec.ID, err)
		}
		data.Categories = append(data.Categories, c)
	}

	for _, rec := range f.Users {
		u, err := models.NewUser(rec.ID, rec.Name, rec.Email, rec.Password)
		if err != nil {
			return Data{}, fmt.Errorf("user %d: %w", rec.ID, err)
		}
		hash, err := auth.HashPassword(rec.Password)
		if err != nil {
			return Data{}, fmt.Errorf("user %d: hashing password: %w", rec.ID, err)
		}
		u.PasswordHash = hash
		data.Users = append(data.Users, u)
	}

	return data, nil
}
