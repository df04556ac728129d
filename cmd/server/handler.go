package main

import (
	"net/http"
	"slices"

	"github.com/NYTimes/gziphandler"
	"github.com/rs/cors"

	"simorgh/internal/config"
	"simorgh/internal/domain/auth"
)

// wrapHandler adds CORS and response compression around the router.
func wrapHandler(h http.Handler, opts config.CORSOptions) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "X-Request-ID", "X-Trace-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "X-Trace-ID"},
		AllowCredentials: !slices.Contains(opts.AllowedOrigins, "*"),
	})
	return gziphandler.GzipHandler(c.Handler(h))
}

// newAuthService prefers a configured bcrypt hash over the plain password.
func newAuthService(opts config.AdminOptions) (*auth.Service, error) {
	if opts.PasswordHash != "" {
		return auth.NewServiceWithHash(opts.Username, opts.PasswordHash)
	}
	return auth.NewService(opts.Username, opts.Password)
}
