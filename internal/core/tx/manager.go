// Package tx defines transaction boundaries independent of the database driver.
package tx

import (
	"context"
)

// Manager runs fn inside a transaction. An error from fn rolls the transaction back;
// nested calls reuse the transaction already carried by ctx.
type Manager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ReadOnlyManager adds read-only transactions.
type ReadOnlyManager interface {
	Manager

	// ReadOnly runs fn in a transaction that rejects writes.
	ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}
