package postgres

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDBColumns(t *testing.T) {
	assert.Equal(t, []string{"body", "revision", "updated_at"}, dbColumns[documentRow]())
	assert.Equal(t,
		[]string{"revision", "patch", "patch_compressed", "compression_algo", "operations", "created_at"},
		dbColumns[Revision]())
}

func TestDBValues(t *testing.T) {
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	r := Revision{Revision: 7, Patch: json.RawMessage(`[]`), CompressionAlgo: CompressionNone, Operations: 1, CreatedAt: at}

	assert.Equal(t,
		[]any{int64(7), json.RawMessage(`[]`), []byte(nil), CompressionNone, 1, at},
		dbValues(r))
	assert.Equal(t, dbValues(r), dbValues(&r))
	assert.Nil(t, dbValues(42))
}
