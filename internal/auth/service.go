package auth

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/rogerio-castellano/storefront-simulator/internal/models"
	"github.com/rogerio-castellano/storefront-simulator/internal/repo"
)

// ErrInvalidCredentials is returned for an unknown email or a wrong
// password; the two cases are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrTooManyAttempts is returned when the login throttle rejects an attempt
// before credentials are even checked.
var ErrTooManyAttempts = errors.New("too many login attempts")

// Service authenticates users against the user repository and issues
// session tokens for successful logins.
type Service struct {
	users    repo.UserRepository
	secret   []byte
	tokenTTL time.Duration
	throttle *loginThrottle
}

func NewService(users repo.UserRepository, secret []byte, tokenTTL time.Duration) *Service {
	return &Service{
		users:    users,
		secret:   secret,
		tokenTTL: tokenTTL,
		throttle: newLoginThrottle(),
	}
}

// Login verifies the credentials and, on success, returns the user together
// with a signed session token.
func (s *Service) Login(email, password string) (models.User, string, error) {
	if !s.throttle.allow(email) {
		return models.User{}, "", ErrTooManyAttempts
	}

	user, err := s.users.GetByEmail(email)
	if err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return models.User{}, "", err
	}

	return user, token, nil
}

// HashPassword hashes a fixture password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
