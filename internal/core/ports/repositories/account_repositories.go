package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sake/strichliste/internal/core/domain"
)

// AccountFilter narrows ListAccounts.
type AccountFilter struct {
	Disabled bool
	// Active, when set, keeps only accounts whose last balance change is at or
	// after (true) or before (false) ActiveSince. Never-used accounts count as inactive.
	Active      *bool
	ActiveSince time.Time
}

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves an account. Returns apperrors.ErrNotFound if absent.
	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts by their IDs. Missing ids are omitted.
	FindAccountsByIDs(ctx context.Context, accountIDs []int64) (map[int64]domain.Account, error)

	// ListAccounts retrieves accounts ordered by name.
	ListAccounts(ctx context.Context, filter AccountFilter) ([]domain.Account, error)

	// SearchAccounts retrieves accounts whose name contains query, ordered by name.
	SearchAccounts(ctx context.Context, query string, limit int) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account and returns it with its id assigned.
	SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error)

	// UpdateAccount updates name, email and disabled flag. The balance is untouched.
	UpdateAccount(ctx context.Context, account domain.Account) error
}

// AccountTransactionSupport defines operations used by the transaction engine
type AccountTransactionSupport interface {
	// FindAccountsByIDsForUpdate selects accounts and locks them for update within a transaction.
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []int64) (map[int64]domain.Account, error)

	// UpdateAccountBalanceInTx adds delta to the balance of an account within a given transaction.
	UpdateAccountBalanceInTx(ctx context.Context, tx pgx.Tx, accountID int64, delta int64, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}
