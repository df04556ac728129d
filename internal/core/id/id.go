// Package id provides identifier generation for document records.
// Departments and training modules get UUIDv7 ids so that ids sort by creation time,
// matching the insertion order the admin panel shows.
package id

import (
	"strings"

	"github.com/google/uuid"
)

// New generates a new UUIDv7 string.
func New() string {
	v, err := uuid.NewV7()
	if err != nil {
		// Fallback to V4 if V7 fails (should never happen)
		return uuid.New().String()
	}
	return v.String()
}

// WithPrefix generates a new id with a readable prefix, e.g. "dept-<uuid>".
func WithPrefix(prefix string) string {
	if prefix == "" {
		return New()
	}
	return prefix + "-" + New()
}

// IsValid reports whether s is a non-blank identifier.
func IsValid(s string) bool {
	return strings.TrimSpace(s) != ""
}
