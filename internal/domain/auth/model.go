// Package auth checks administrator credentials for the admin surface.
package auth

import (
	"strings"

	"simorgh/internal/core/apperror"
)

// Credentials is a login attempt.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate validates the login attempt shape.
func (c Credentials) Validate() error {
	if strings.TrimSpace(c.Username) == "" {
		return apperror.NewValidation("username is required").WithDetail("field", "username")
	}
	if c.Password == "" {
		return apperror.NewValidation("password is required").WithDetail("field", "password")
	}
	return nil
}
