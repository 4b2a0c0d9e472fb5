package repo

import "github.com/rogerio-castellano/storefront-simulator/internal/models"

type InMemoryUserRepository struct {
	users []models.User
}

func NewInMemoryUserRepository(users []models.User) *InMemoryUserRepository {
	return &InMemoryUserRepository{users: users}
}

func (r *InMemoryUserRepository) GetByEmail(email string) (models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}

	return models.User{}, ErrUserNotFound
}
