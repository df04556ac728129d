package postgres

import (
	"context"
	"fmt"
)

const (
	documentTable = "holding_document"
	historyTable  = "holding_document_history"

	// documentKey is the primary key of the only document row.
	documentKey = "holding"
)

// schema creates the document and history tables. It is idempotent.
const schema = `
CREATE TABLE IF NOT EXISTS holding_document (
	key        TEXT PRIMARY KEY,
	body       JSONB NOT NULL,
	revision   BIGINT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS holding_document_history (
	document_key     TEXT NOT NULL,
	revision         BIGINT NOT NULL,
	patch            JSONB,
	patch_compressed BYTEA,
	compression_algo TEXT NOT NULL DEFAULT 'none',
	operations       INTEGER NOT NULL,
	created_at       TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (document_key, revision)
);
`

// EnsureSchema creates the tables when they are missing.
func EnsureSchema(ctx context.Context, pool *Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
