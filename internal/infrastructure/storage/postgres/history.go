package postgres

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/wI2L/jsondiff"
)

// CompressionAlgo specifies how a revision patch is stored.
type CompressionAlgo string

const (
	CompressionNone CompressionAlgo = "none"
	CompressionZstd CompressionAlgo = "zstd"
)

// defaultCompressThreshold is the patch size above which patches are compressed.
const defaultCompressThreshold = 10 * 1024

// Revision is one saved version of the document. Patch turns the document of this
// revision back into the previous one (a reverse RFC 6902 patch); the first revision
// carries the patch back to an empty object.
type Revision struct {
	Revision        int64           `db:"revision"`
	Patch           json.RawMessage `db:"patch"`
	PatchCompressed []byte          `db:"patch_compressed"`
	CompressionAlgo CompressionAlgo `db:"compression_algo"`
	Operations      int             `db:"operations"`
	CreatedAt       time.Time       `db:"created_at"`
}

// HistoryCodec builds and compresses revision patches.
type HistoryCodec struct {
	encoder           *zstd.Encoder
	decoder           *zstd.Decoder
	compressThreshold int
}

// NewHistoryCodec creates a codec. A threshold of zero or less uses the default.
func NewHistoryCodec(compressThreshold int) (*HistoryCodec, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}
	if compressThreshold <= 0 {
		compressThreshold = defaultCompressThreshold
	}
	return &HistoryCodec{
		encoder:           encoder,
		decoder:           decoder,
		compressThreshold: compressThreshold,
	}, nil
}

// NewRevision diffs next against previous and returns the revision entry. A nil
// previous body is treated as an empty object.
func (c *HistoryCodec) NewRevision(revision int64, previous, next []byte, at time.Time) (Revision, error) {
	if previous == nil {
		previous = []byte("{}")
	}
	reverse, err := jsondiff.CompareJSON(next, previous)
	if err != nil {
		return Revision{}, fmt.Errorf("diff revisions: %w", err)
	}
	patch, err := json.Marshal(reverse)
	if err != nil {
		return Revision{}, fmt.Errorf("marshal patch: %w", err)
	}

	entry := Revision{
		Revision:        revision,
		Patch:           patch,
		CompressionAlgo: CompressionNone,
		Operations:      len(reverse),
		CreatedAt:       at.UTC(),
	}
	if len(patch) > c.compressThreshold {
		entry.PatchCompressed = c.encoder.EncodeAll(patch, nil)
		entry.Patch = nil
		entry.CompressionAlgo = CompressionZstd
	}
	return entry, nil
}

// Decode restores Patch of a compressed entry in place.
func (c *HistoryCodec) Decode(entry *Revision) error {
	if entry.CompressionAlgo != CompressionZstd || len(entry.PatchCompressed) == 0 {
		return nil
	}
	patch, err := c.decoder.DecodeAll(entry.PatchCompressed, nil)
	if err != nil {
		return fmt.Errorf("decompress patch: %w", err)
	}
	entry.Patch = patch
	entry.PatchCompressed = nil
	return nil
}
