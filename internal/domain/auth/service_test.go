package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"simorgh/internal/core/apperror"
)

func TestService_Login(t *testing.T) {
	svc, err := NewService("admin", "password")
	require.NoError(t, err)

	tests := []struct {
		name    string
		creds   Credentials
		wantErr bool
	}{
		{name: "valid", creds: Credentials{Username: "admin", Password: "password"}},
		{name: "wrong password", creds: Credentials{Username: "admin", Password: "nope"}, wantErr: true},
		{name: "wrong user", creds: Credentials{Username: "root", Password: "password"}, wantErr: true},
		{name: "empty", creds: Credentials{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Login(context.Background(), tt.creds)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.True(t, apperror.HasCode(err, apperror.CodeUnauthorized))
			assert.Equal(t, 401, apperror.GetHTTPStatus(err))
		})
	}
}

func TestNewServiceWithHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	svc, err := NewServiceWithHash("editor", string(hash))
	require.NoError(t, err)
	assert.NoError(t, svc.Login(context.Background(), Credentials{Username: "editor", Password: "s3cret"}))

	_, err = NewServiceWithHash("editor", "plain-text")
	assert.Error(t, err)
}
