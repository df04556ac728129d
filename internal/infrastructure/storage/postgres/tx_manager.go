package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"simorgh/internal/core/tx"
	"simorgh/pkg/logger"
)

var tracer = otel.Tracer("simorgh/postgres")

var _ tx.ReadOnlyManager = (*TxManager)(nil)

// defaultStatementTimeout caps every statement of a document transaction.
const defaultStatementTimeout = 10 * time.Second

// TxManager runs document reads and writes in read committed transactions carried by
// the context. Writes lock the document row, so a stronger isolation level buys nothing.
type TxManager struct {
	pool             *pgxpool.Pool
	statementTimeout time.Duration
}

// NewTxManager creates a transaction manager over pool.
func NewTxManager(pool *Pool) *TxManager {
	return &TxManager{pool: pool.Pool, statementTimeout: defaultStatementTimeout}
}

type txKey struct{}

// RunInTransaction runs fn in a read-write transaction. When ctx already carries a
// transaction fn joins it.
func (m *TxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, pgx.ReadWrite, fn)
}

// ReadOnly runs fn in a transaction that rejects writes.
func (m *TxManager) ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, pgx.ReadOnly, fn)
}

// Savepoint runs fn behind a savepoint of the transaction carried by ctx. A failing fn
// rolls back only its own statements and the outer transaction stays usable. Without
// a transaction in ctx it behaves like RunInTransaction.
func (m *TxManager) Savepoint(ctx context.Context, fn func(ctx context.Context) error) error {
	outer := txFrom(ctx)
	if outer == nil {
		return m.RunInTransaction(ctx, fn)
	}

	// Begin on a pgx.Tx issues SAVEPOINT; Commit releases it and Rollback rolls back to it.
	nested, err := outer.Begin(ctx)
	if err != nil {
		return fmt.Errorf("create savepoint: %w", err)
	}
	if err := fn(context.WithValue(ctx, txKey{}, nested)); err != nil {
		m.rollback(ctx, nested, err)
		return err
	}
	if err := nested.Commit(ctx); err != nil {
		return fmt.Errorf("release savepoint: %w", err)
	}
	return nil
}

func (m *TxManager) run(ctx context.Context, mode pgx.TxAccessMode, fn func(ctx context.Context) error) error {
	if txFrom(ctx) != nil {
		return fn(ctx)
	}

	ctx, span := tracer.Start(ctx, "postgres.transaction",
		trace.WithAttributes(attribute.String("tx.access_mode", string(mode))))
	defer span.End()

	t, err := m.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted, AccessMode: mode})
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("begin transaction: %w", err)
	}

	if m.statementTimeout > 0 {
		stmt := fmt.Sprintf("SET LOCAL statement_timeout = %d", m.statementTimeout.Milliseconds())
		if _, err := t.Exec(ctx, stmt); err != nil {
			m.rollback(ctx, t, err)
			return fmt.Errorf("set statement_timeout: %w", err)
		}
	}

	if err := fn(context.WithValue(ctx, txKey{}, t)); err != nil {
		span.RecordError(err)
		m.rollback(ctx, t, err)
		return err
	}
	if err := t.Commit(ctx); err != nil {
		span.RecordError(err)
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// rollback runs on a fresh context so a cancelled request still releases the transaction.
func (m *TxManager) rollback(ctx context.Context, t pgx.Tx, cause error) {
	if err := t.Rollback(context.Background()); err != nil {
		logger.Error(ctx, "rollback failed", "error", err, "cause", cause)
	}
}

func txFrom(ctx context.Context) pgx.Tx {
	t, _ := ctx.Value(txKey{}).(pgx.Tx)
	return t
}

// Querier is satisfied by both a transaction and the pool, so repositories work
// inside and outside transactions.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// GetQuerier returns the transaction carried by ctx, or the pool.
func (m *TxManager) GetQuerier(ctx context.Context) Querier {
	if t := txFrom(ctx); t != nil {
		return t
	}
	return m.pool
}
