package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"simorgh/internal/domain/holding"
	"simorgh/pkg/logger"
)

var _ holding.Storage = (*DocumentRepo)(nil)

type documentRow struct {
	Body      []byte    `db:"body"`
	Revision  int64     `db:"revision"`
	UpdatedAt time.Time `db:"updated_at"`
}

// DocumentRepo implements holding.Storage. The current document lives in one row;
// every write also appends a revision and prunes revisions beyond the history limit.
type DocumentRepo struct {
	txm          *TxManager
	codec        *HistoryCodec
	builder      squirrel.StatementBuilderType
	historyLimit uint64
	now          func() time.Time
}

// NewDocumentRepo creates a repository. A historyLimit of zero keeps every revision.
func NewDocumentRepo(txm *TxManager, codec *HistoryCodec, historyLimit uint64) *DocumentRepo {
	return &DocumentRepo{
		txm:          txm,
		codec:        codec,
		builder:      squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		historyLimit: historyLimit,
		now:          time.Now,
	}
}

// Read implements holding.Storage.
func (r *DocumentRepo) Read(ctx context.Context) (*holding.Snapshot, error) {
	var snap holding.Snapshot
	err := r.txm.ReadOnly(ctx, func(ctx context.Context) error {
		row, found, err := r.current(ctx, false)
		if err != nil {
			return err
		}
		if !found {
			return holding.ErrNoDocument
		}
		if err := json.Unmarshal(row.Body, &snap); err != nil {
			return fmt.Errorf("decode document revision %d: %w", row.Revision, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// Write implements holding.Storage.
func (r *DocumentRepo) Write(ctx context.Context, s holding.Snapshot) error {
	body, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	return r.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		prev, found, err := r.current(ctx, true)
		if err != nil {
			return err
		}
		var prevBody []byte
		if found {
			prevBody = prev.Body
		}

		now := r.now()
		revision := prev.Revision + 1
		if err := r.exec(ctx, r.upsertDocument(body, revision, now)); err != nil {
			return fmt.Errorf("save document: %w", err)
		}

		entry, err := r.codec.NewRevision(revision, prevBody, body, now)
		if err != nil {
			return err
		}
		if err := r.exec(ctx, r.insertRevision(entry)); err != nil {
			return fmt.Errorf("save revision %d: %w", revision, err)
		}

		if r.historyLimit > 0 && uint64(revision) > r.historyLimit {
			r.prune(ctx, revision-int64(r.historyLimit)+1)
		}
		return nil
	})
}

// prune drops old revisions behind a savepoint. A failed prune is logged and the
// document write still commits; the next write retries it.
func (r *DocumentRepo) prune(ctx context.Context, keepFrom int64) {
	err := r.txm.Savepoint(ctx, func(ctx context.Context) error {
		return r.exec(ctx, r.pruneHistory(keepFrom))
	})
	if err != nil {
		logger.Warn(ctx, "prune history failed", "keep_from", keepFrom, "error", err)
	}
}

// History returns up to limit revisions, newest first, with patches decompressed.
func (r *DocumentRepo) History(ctx context.Context, limit uint64) ([]Revision, error) {
	sql, args, err := r.selectHistory(limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var entries []Revision
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &entries, sql, args...); err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	for i := range entries {
		if err := r.codec.Decode(&entries[i]); err != nil {
			return nil, fmt.Errorf("revision %d: %w", entries[i].Revision, err)
		}
	}
	return entries, nil
}

func (r *DocumentRepo) current(ctx context.Context, forUpdate bool) (documentRow, bool, error) {
	q := r.selectDocument()
	if forUpdate {
		q = q.Suffix("FOR UPDATE")
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return documentRow{}, false, fmt.Errorf("build query: %w", err)
	}

	var row documentRow
	err = pgxscan.Get(ctx, r.txm.GetQuerier(ctx), &row, sql, args...)
	if pgxscan.NotFound(err) {
		return documentRow{}, false, nil
	}
	if err != nil {
		return documentRow{}, false, fmt.Errorf("load document: %w", err)
	}
	return row, true, nil
}

func (r *DocumentRepo) exec(ctx context.Context, q squirrel.Sqlizer) error {
	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	_, err = r.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	return err
}

// --- query builders ---

func (r *DocumentRepo) selectDocument() squirrel.SelectBuilder {
	return r.builder.
		Select(dbColumns[documentRow]()...).
		From(documentTable).
		Where(squirrel.Eq{"key": documentKey})
}

func (r *DocumentRepo) upsertDocument(body []byte, revision int64, at time.Time) squirrel.InsertBuilder {
	return r.builder.
		Insert(documentTable).
		Columns("key", "body", "revision", "updated_at").
		Values(documentKey, body, revision, at.UTC()).
		Suffix("ON CONFLICT (key) DO UPDATE SET body = EXCLUDED.body, revision = EXCLUDED.revision, updated_at = EXCLUDED.updated_at")
}

func (r *DocumentRepo) insertRevision(e Revision) squirrel.InsertBuilder {
	return r.builder.
		Insert(historyTable).
		Columns(append([]string{"document_key"}, dbColumns[Revision]()...)...).
		Values(append([]any{documentKey}, dbValues(e)...)...)
}

// pruneHistory deletes revisions older than keepFrom.
func (r *DocumentRepo) pruneHistory(keepFrom int64) squirrel.DeleteBuilder {
	return r.builder.
		Delete(historyTable).
		Where(squirrel.Eq{"document_key": documentKey}).
		Where(squirrel.Lt{"revision": keepFrom})
}

func (r *DocumentRepo) selectHistory(limit uint64) squirrel.SelectBuilder {
	q := r.builder.
		Select(dbColumns[Revision]()...).
		From(historyTable).
		Where(squirrel.Eq{"document_key": documentKey}).
		OrderBy("revision DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	return q
}
