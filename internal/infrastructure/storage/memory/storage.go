// Package memory keeps the document in process memory. Nothing survives a restart.
package memory

import (
	"context"
	"sync"

	"simorgh/internal/domain/holding"
)

var _ holding.Storage = (*Storage)(nil)

// Storage is an in-process holding.Storage.
type Storage struct {
	mu   sync.RWMutex
	snap *holding.Snapshot
}

// New returns an empty storage.
func New() *Storage {
	return &Storage{}
}

// Read implements holding.Storage.
func (s *Storage) Read(_ context.Context) (*holding.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return nil, holding.ErrNoDocument
	}
	cp := s.snap.Clone()
	return &cp, nil
}

// Write implements holding.Storage.
func (s *Storage) Write(_ context.Context, snap holding.Snapshot) error {
	cp := snap.Clone()
	s.mu.Lock()
	s.snap = &cp
	s.mu.Unlock()
	return nil
}
