package auth

import (
	"context"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"simorgh/internal/core/apperror"
	"simorgh/pkg/logger"
)

// Service verifies the single administrator account. No session or token is issued;
// a successful check only tells the caller the credentials match.
type Service struct {
	username     string
	passwordHash []byte
}

// NewService hashes password once so the plain text is not kept in memory.
func NewService(username, password string) (*Service, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &Service{username: username, passwordHash: hash}, nil
}

// NewServiceWithHash uses an existing bcrypt hash.
func NewServiceWithHash(username, passwordHash string) (*Service, error) {
	if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
		return nil, fmt.Errorf("invalid admin password hash: %w", err)
	}
	return &Service{username: username, passwordHash: []byte(passwordHash)}, nil
}

// Login checks creds and returns an unauthorized error on mismatch.
func (s *Service) Login(ctx context.Context, creds Credentials) error {
	if err := creds.Validate(); err != nil {
		return apperror.NewUnauthorized("invalid credentials")
	}

	// The hash is compared even for an unknown username so both paths cost the same.
	userOK := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(s.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(creds.Password))
	if !userOK || passErr != nil {
		logger.Warn(ctx, "admin login rejected", "username", creds.Username)
		return apperror.NewUnauthorized("invalid credentials")
	}

	logger.Info(ctx, "admin logged in", "username", creds.Username)
	return nil
}
