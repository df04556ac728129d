package postgres

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *DocumentRepo {
	t.Helper()
	codec, err := NewHistoryCodec(0)
	require.NoError(t, err)
	return NewDocumentRepo(nil, codec, 10)
}

func TestDocumentRepo_QueryBuilders(t *testing.T) {
	repo := newTestRepo(t)
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name     string
		build    func() (string, []any, error)
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "select document",
			build:    repo.selectDocument().ToSql,
			wantSQL:  "SELECT body, revision, updated_at FROM holding_document WHERE key = $1",
			wantArgs: []any{"holding"},
		},
		{
			name:     "select document for update",
			build:    repo.selectDocument().Suffix("FOR UPDATE").ToSql,
			wantSQL:  "SELECT body, revision, updated_at FROM holding_document WHERE key = $1 FOR UPDATE",
			wantArgs: []any{"holding"},
		},
		{
			name:  "upsert document",
			build: repo.upsertDocument([]byte(`{}`), 3, at).ToSql,
			wantSQL: "INSERT INTO holding_document (key,body,revision,updated_at) VALUES ($1,$2,$3,$4) " +
				"ON CONFLICT (key) DO UPDATE SET body = EXCLUDED.body, revision = EXCLUDED.revision, updated_at = EXCLUDED.updated_at",
			wantArgs: []any{"holding", []byte(`{}`), int64(3), at},
		},
		{
			name:     "prune history",
			build:    repo.pruneHistory(5).ToSql,
			wantSQL:  "DELETE FROM holding_document_history WHERE document_key = $1 AND revision < $2",
			wantArgs: []any{"holding", int64(5)},
		},
		{
			name:  "select history",
			build: repo.selectHistory(20).ToSql,
			wantSQL: "SELECT revision, patch, patch_compressed, compression_algo, operations, created_at " +
				"FROM holding_document_history WHERE document_key = $1 ORDER BY revision DESC LIMIT 20",
			wantArgs: []any{"holding"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := tt.build()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestDocumentRepo_InsertRevision(t *testing.T) {
	repo := newTestRepo(t)
	entry := Revision{Revision: 2, Patch: json.RawMessage(`[]`), CompressionAlgo: CompressionNone}

	sql, args, err := repo.insertRevision(entry).ToSql()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sql, "INSERT INTO holding_document_history (document_key,revision,patch,patch_compressed,compression_algo,operations,created_at)"))
	assert.Len(t, args, 7)
	assert.Equal(t, "holding", args[0])
}

func TestHistoryCodec_ReversePatch(t *testing.T) {
	codec, err := NewHistoryCodec(0)
	require.NoError(t, err)

	prev := []byte(`{"name":"Old","slogan":"same"}`)
	next := []byte(`{"name":"New","slogan":"same"}`)

	entry, err := codec.NewRevision(7, prev, next, time.Now())
	require.NoError(t, err)
	assert.Equal(t, CompressionNone, entry.CompressionAlgo)
	assert.Equal(t, 1, entry.Operations)

	var ops []map[string]any
	require.NoError(t, json.Unmarshal(entry.Patch, &ops))
	require.Len(t, ops, 1)
	assert.Equal(t, "replace", ops[0]["op"])
	assert.Equal(t, "/name", ops[0]["path"])
	assert.Equal(t, "Old", ops[0]["value"])
}

func TestHistoryCodec_FirstRevisionDiffsAgainstEmptyObject(t *testing.T) {
	codec, err := NewHistoryCodec(0)
	require.NoError(t, err)

	entry, err := codec.NewRevision(1, nil, []byte(`{"name":"H"}`), time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, entry.Operations)
	assert.Contains(t, string(entry.Patch), `"remove"`)
}

func TestHistoryCodec_CompressesLargePatches(t *testing.T) {
	codec, err := NewHistoryCodec(64)
	require.NoError(t, err)

	// The reverse patch carries the previous, long value.
	prev := []byte(`{"intro":"` + strings.Repeat("simorgh ", 100) + `"}`)
	entry, err := codec.NewRevision(2, prev, []byte(`{"intro":""}`), time.Now())
	require.NoError(t, err)
	assert.Equal(t, CompressionZstd, entry.CompressionAlgo)
	assert.Nil(t, entry.Patch)
	require.NotEmpty(t, entry.PatchCompressed)

	require.NoError(t, codec.Decode(&entry))
	assert.Nil(t, entry.PatchCompressed)
	assert.Contains(t, string(entry.Patch), `"/intro"`)
}
