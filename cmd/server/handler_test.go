package main

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"simorgh/internal/config"
	"simorgh/internal/domain/auth"
)

func TestWrapHandler_CORSAndGzip(t *testing.T) {
	body := strings.Repeat(`{"name":"Simorgh"}`, 200)
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	})
	h := wrapHandler(inner, config.CORSOptions{AllowedOrigins: []string{"https://simorgh.example"}})

	req := httptest.NewRequest(http.MethodGet, "/api/data", nil)
	req.Header.Set("Origin", "https://simorgh.example")
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "https://simorgh.example", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	raw, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, body, string(raw))
}

func TestWrapHandler_RejectsUnknownOrigin(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	h := wrapHandler(inner, config.CORSOptions{AllowedOrigins: []string{"https://simorgh.example"}})

	req := httptest.NewRequest(http.MethodGet, "/api/data", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewAuthService(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("from-hash"), bcrypt.MinCost)
	require.NoError(t, err)

	svc, err := newAuthService(config.AdminOptions{Username: "admin", Password: "ignored", PasswordHash: string(hash)})
	require.NoError(t, err)
	assert.NoError(t, svc.Login(t.Context(), auth.Credentials{Username: "admin", Password: "from-hash"}))
	assert.Error(t, svc.Login(t.Context(), auth.Credentials{Username: "admin", Password: "ignored"}))

	_, err = newAuthService(config.AdminOptions{Username: "admin", PasswordHash: "not-a-hash"})
	assert.Error(t, err)
}
