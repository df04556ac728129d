package storage

import (
	"context"
	"time"

	"simorgh/internal/domain/holding"
	"simorgh/pkg/logger"
)

type timeoutStorage struct {
	next    holding.Storage
	timeout time.Duration
}

// WithTimeout bounds every Read and Write of s by d and logs each call at debug level.
// A non-positive d returns s as is.
func WithTimeout(s holding.Storage, d time.Duration) holding.Storage {
	if d <= 0 {
		return s
	}
	return &timeoutStorage{next: s, timeout: d}
}

func (t *timeoutStorage) Read(ctx context.Context) (*holding.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	start := time.Now()
	snap, err := t.next.Read(ctx)
	logger.Debug(ctx, "storage read", "took", time.Since(start), "error", err)
	return snap, err
}

func (t *timeoutStorage) Write(ctx context.Context, snap holding.Snapshot) error {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	start := time.Now()
	err := t.next.Write(ctx, snap)
	logger.Debug(ctx, "storage write", "took", time.Since(start), "error", err)
	return err
}
