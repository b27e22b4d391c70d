package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/sake/strichliste/internal/core/domain"
)

// LedgerReader defines read operations for ledger entries
type LedgerReader interface {
	// FindEntryByID retrieves a ledger entry. Returns apperrors.ErrNotFound if absent.
	FindEntryByID(ctx context.Context, entryID int64) (*domain.LedgerEntry, error)

	// FindEntriesByIDs retrieves multiple entries by id. Missing ids are omitted.
	FindEntriesByIDs(ctx context.Context, entryIDs []int64) (map[int64]domain.LedgerEntry, error)

	// ListEntriesByAccount lists entries of an account newest first. A non-empty
	// nextToken continues after the last entry of the previous page and takes
	// precedence over offset. Returns the token for the following page, if any.
	ListEntriesByAccount(ctx context.Context, accountID int64, limit, offset int, nextToken *string) ([]domain.LedgerEntry, *string, error)

	// CountEntriesByAccount counts entries of an account.
	CountEntriesByAccount(ctx context.Context, accountID int64) (int64, error)
}

// LedgerTransactionSupport defines the writes of the transaction engine
type LedgerTransactionSupport interface {
	// InsertEntryInTx inserts entry and returns the stored row.
	InsertEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) (*domain.LedgerEntry, error)

	// LinkRecipientInTx points the sender entry at its recipient sibling.
	LinkRecipientInTx(ctx context.Context, tx pgx.Tx, senderEntryID, recipientEntryID int64) error
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerTransactionSupport
}

// LedgerRepositoryWithTx is the ledger repository together with the
// transaction boundary the engine runs in.
type LedgerRepositoryWithTx interface {
	LedgerRepositoryFacade
	TransactionManager
}
