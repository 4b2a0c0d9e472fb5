package models

import "strings"

type User struct {
	ID           int    `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Email        string `json:"email" yaml:"email"`
	PasswordHash string `json:"-" yaml:"-"`
}

// NewUser validates the identity fields and the raw password; the caller is
// responsible for hashing the password before storing the user.
func NewUser(id int, name, email, password string) (User, error) {
	if id <= 0 {
		return User{}, &ValidationError{Field: "ID", Description: "id must be a positive number"}
	}
	if strings.TrimSpace(name) == "" {
		return User{}, &ValidationError{Field: "Name", Description: "name is required"}
	}
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return User{}, &ValidationError{Field: "Email", Description: "email must be a valid email address"}
	}
	if len(password) < 6 {
		return User{}, &ValidationError{Field: "Password", Description: "password must be at least 6 characters long"}
	}

	return User{ID: id, Name: name, Email: email}, nil
}
