package repo

import (
	"errors"

	"github.com/rogerio-castellano/storefront-simulator/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	GetByEmail(email string) (models.User, error)
}
