package holding

import (
	"context"
	"errors"
)

// ErrNoDocument is returned by Storage.Read when nothing has been stored yet.
var ErrNoDocument = errors.New("holding: no document stored")

// Storage persists the whole document as one unit. Implementations live under
// internal/infrastructure/storage.
type Storage interface {
	// Read returns the stored snapshot or ErrNoDocument.
	Read(ctx context.Context) (*Snapshot, error)
	// Write replaces the stored snapshot.
	Write(ctx context.Context, s Snapshot) error
}
