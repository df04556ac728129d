package holding

import (
	"context"
	"errors"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"simorgh/internal/core/apperror"
	"simorgh/pkg/logger"
)

var tracer = otel.Tracer("simorgh/holding")

// LoadSource tells where the adopted document came from.
type LoadSource string

const (
	SourceStorage LoadSource = "storage"
	SourceDefault LoadSource = "default"
)

// Store owns the current document. It starts not loaded; Load moves it to loaded
// and it never goes back.
//
// Reads hand out deep copies. Replace is last-write-wins: concurrent editors overwrite
// each other without conflict detection. Replaces are serialized from adoption through
// the storage write, so the document in memory is always the one written last.
type Store struct {
	storage Storage
	log     *logger.Logger

	// writeMu is held across adopt and storage write; mu guards doc and source.
	writeMu sync.Mutex
	mu      sync.RWMutex
	doc     *HoldingData
	source  LoadSource
}

// NewStore creates a Store over storage. A nil log discards output.
func NewStore(storage Storage, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{storage: storage, log: log.WithComponent("holding_store")}
}

// Load reads the persisted document and adopts it. When storage fails or is empty the
// bundled default is adopted and written back as a seed; a failed seed is logged only.
// Load never fails.
func (s *Store) Load(ctx context.Context) LoadSource {
	ctx, span := tracer.Start(ctx, "holding.Load")
	defer span.End()

	snap, err := s.storage.Read(ctx)
	if err == nil && snap != nil {
		s.adopt(Hydrate(*snap), SourceStorage)
		span.SetAttributes(attribute.String("holding.source", string(SourceStorage)))
		s.log.WithContext(ctx).Infow("document loaded from storage",
			"subsidiaries", len(snap.Subsidiaries))
		if err := Validate(*snap); err != nil {
			s.log.WithContext(ctx).Warnw("stored document is invalid, edits are rejected until it is fixed",
				"error", err)
		}
		return SourceStorage
	}

	switch {
	case err == nil, errors.Is(err, ErrNoDocument):
		s.log.WithContext(ctx).Infow("storage is empty, using bundled document")
	default:
		span.RecordError(err)
		s.log.WithContext(ctx).Warnw("storage read failed, using bundled document", "error", err)
	}

	doc := Default()
	s.adopt(doc, SourceDefault)
	span.SetAttributes(attribute.String("holding.source", string(SourceDefault)))

	if err := s.storage.Write(ctx, Dehydrate(doc)); err != nil {
		span.RecordError(err)
		s.log.WithContext(ctx).Warnw("seeding storage failed", "error", err)
	}
	return SourceDefault
}

// Adopt makes snap the current document without reading or writing storage. It is
// for callers that read storage themselves.
func (s *Store) Adopt(snap Snapshot) {
	s.adopt(Hydrate(snap), SourceStorage)
}

// Loaded reports whether Load has completed.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc != nil
}

// Source reports where the current document came from. Empty until loaded.
func (s *Store) Source() LoadSource {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source
}

// Read returns a deep copy of the current document.
func (s *Store) Read() (*HoldingData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.doc == nil {
		return nil, apperror.NewNotReady("document is still loading")
	}
	return s.doc.Clone(), nil
}

// Snapshot returns the persisted form of the current document.
func (s *Store) Snapshot() (Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.doc == nil {
		return Snapshot{}, apperror.NewNotReady("document is still loading")
	}
	return Dehydrate(s.doc), nil
}

// Replace validates doc and writes it through to storage. It requires a loaded store.
// A document that fails validation is rejected and nothing changes. Otherwise doc
// becomes current even when the write fails; that case returns an error with code
// NOT_DURABLE so the caller can warn the editor that the change is not persisted.
func (s *Store) Replace(ctx context.Context, doc *HoldingData) error {
	ctx, span := tracer.Start(ctx, "holding.Replace")
	defer span.End()

	if doc == nil {
		return apperror.NewValidation("document is required")
	}
	if !s.Loaded() {
		return apperror.NewNotReady("document is still loading")
	}

	snap := Dehydrate(doc)
	if err := Validate(snap); err != nil {
		span.SetStatus(codes.Error, "invalid document")
		return s.markPreexisting(err)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.doc = doc.Clone()
	s.mu.Unlock()

	if err := s.storage.Write(ctx, snap); err != nil {
		span.RecordError(err, trace.WithAttributes(attribute.Bool("holding.durable", false)))
		s.log.WithContext(ctx).Errorw("document kept in memory only", "error", err)
		return apperror.NewNotDurable(err)
	}

	span.SetAttributes(attribute.Bool("holding.durable", true))
	s.log.WithContext(ctx).Infow("document saved")
	return nil
}

// ReplaceSnapshot hydrates s and replaces the current document with it.
func (s *Store) ReplaceSnapshot(ctx context.Context, snap Snapshot) error {
	return s.Replace(ctx, Hydrate(snap))
}

// Update applies fn to a copy of the current document and replaces it with the
// result. Errors returned by fn abort the update.
func (s *Store) Update(ctx context.Context, fn func(doc *HoldingData) error) error {
	doc, err := s.Read()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.Replace(ctx, doc)
}

// markPreexisting flags a validation error when the current document fails
// validation as well, so the editor knows the problem predates the edit.
func (s *Store) markPreexisting(err error) error {
	appErr, ok := apperror.AsAppError(err)
	if !ok {
		return err
	}
	s.mu.RLock()
	current := s.doc
	s.mu.RUnlock()
	if current != nil && Validate(Dehydrate(current)) != nil {
		return appErr.WithDetail("stored_document_invalid", true)
	}
	return err
}

func (s *Store) adopt(doc *HoldingData, source LoadSource) {
	s.mu.Lock()
	s.doc = doc
	s.source = source
	s.mu.Unlock()
}
