package models

import "fmt"

// ValidationError reports the first invalid field found while building an
// entity. It is the only hard failure in the system and can only occur at
// fixture-load time.
type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Description)
}
