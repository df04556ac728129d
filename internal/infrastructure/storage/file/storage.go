// Package file stores the document as one JSON file. Paths ending in ".zst" are
// zstd-compressed.
package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"

	"simorgh/internal/domain/holding"
)

const zstdExt = ".zst"

var _ holding.Storage = (*Storage)(nil)

// Storage is a file-backed holding.Storage. Writes go to a temporary file in the
// same directory which is then renamed over the target, so readers never see a
// partially written document.
type Storage struct {
	path     string
	compress bool

	mu sync.Mutex
}

// New creates a storage for path. The directory is created on first write.
func New(path string) *Storage {
	return &Storage{path: path, compress: strings.HasSuffix(path, zstdExt)}
}

// Path returns the file location.
func (s *Storage) Path() string {
	return s.path
}

// Read implements holding.Storage.
func (s *Storage) Read(_ context.Context) (*holding.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, holding.ErrNoDocument
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, holding.ErrNoDocument
	}

	if s.compress {
		dec, err := zstd.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("open zstd stream: %w", err)
		}
		defer dec.Close()
		if raw, err = io.ReadAll(dec); err != nil {
			return nil, fmt.Errorf("decompress %s: %w", s.path, err)
		}
	}

	var snap holding.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return &snap, nil
}

// Write implements holding.Storage.
func (s *Storage) Write(_ context.Context, snap holding.Snapshot) error {
	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := s.encode(tmp, raw); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}

func (s *Storage) encode(w io.Writer, raw []byte) error {
	if !s.compress {
		if _, err := w.Write(raw); err != nil {
			return fmt.Errorf("write document: %w", err)
		}
		return nil
	}
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("create zstd encoder: %w", err)
	}
	if _, err := enc.Write(raw); err != nil {
		enc.Close()
		return fmt.Errorf("compress document: %w", err)
	}
	return enc.Close()
}
