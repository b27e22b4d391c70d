package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager hands out the pgx transaction a ledger write runs in.
// Every *InTx repository method takes the tx it returns.
type TransactionManager interface {
	// Begin opens a transaction whose row-lock waits are bounded by the
	// configured lock timeout.
	Begin(ctx context.Context) (pgx.Tx, error)

	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback is safe to defer; on a committed tx it does nothing.
	Rollback(ctx context.Context, tx pgx.Tx) error
}
