package dto

import "simorgh/internal/domain/auth"

// LoginRequest for admin login. Fields are not marked required: a missing field is a
// failed login, not a malformed request.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ToCredentials converts to domain credentials.
func (r *LoginRequest) ToCredentials() auth.Credentials {
	return auth.Credentials{
		Username: r.Username,
		Password: r.Password,
	}
}
