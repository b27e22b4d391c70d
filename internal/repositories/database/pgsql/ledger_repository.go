package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sake/strichliste/internal/apperrors"
	"github.com/sake/strichliste/internal/core/domain"
	portsrepo "github.com/sake/strichliste/internal/core/ports/repositories"
	"github.com/sake/strichliste/internal/models"
	"github.com/sake/strichliste/internal/utils/mapping"
	"github.com/sake/strichliste/internal/utils/pagination"
)

const ledgerColumns = `id, account_id, article_id, recipient_transaction_id, sender_transaction_id, quantity, comment, amount, deleted, created_at`

const defaultEntryLimit = 5

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for ledger entries.
func newPgxLedgerRepository(pool DBPool, lockTimeout time.Duration) *PgxLedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool, LockTimeout: lockTimeout}}
}

var _ portsrepo.LedgerRepositoryWithTx = (*PgxLedgerRepository)(nil)

func scanLedgerEntry(row rowScanner) (models.LedgerEntry, error) {
	var m models.LedgerEntry
	err := row.Scan(
		&m.ID,
		&m.AccountID,
		&m.ArticleID,
		&m.RecipientTransactionID,
		&m.SenderTransactionID,
		&m.Quantity,
		&m.Comment,
		&m.Amount,
		&m.Deleted,
		&m.CreatedAt,
	)
	return m, err
}

func collectLedgerEntries(rows pgx.Rows) ([]models.LedgerEntry, error) {
	defer rows.Close()
	var out []models.LedgerEntry
	for rows.Next() {
		m, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// InsertEntryInTx inserts a ledger entry and returns the stored row.
func (r *PgxLedgerRepository) InsertEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	m := mapping.ToModelLedgerEntry(entry)
	query := `
		INSERT INTO ledger_entries (account_id, article_id, recipient_transaction_id, sender_transaction_id, quantity, comment, amount, deleted, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, false, $8)
		RETURNING ` + ledgerColumns + `;
	`
	saved, err := scanLedgerEntry(tx.QueryRow(ctx, query,
		m.AccountID,
		m.ArticleID,
		m.RecipientTransactionID,
		m.SenderTransactionID,
		m.Quantity,
		m.Comment,
		m.Amount,
		m.CreatedAt,
	))
	if err != nil {
		return nil, classifyError(fmt.Sprintf("failed to insert ledger entry for account %d", m.AccountID), err)
	}
	e := mapping.ToDomainLedgerEntry(saved)
	return &e, nil
}

// LinkRecipientInTx completes a transfer: the sender entry is inserted first,
// so it can only learn its sibling's id afterwards. The link is set once.
func (r *PgxLedgerRepository) LinkRecipientInTx(ctx context.Context, tx pgx.Tx, senderEntryID, recipientEntryID int64) error {
	query := `
		UPDATE ledger_entries
		SET recipient_transaction_id = $2
		WHERE id = $1 AND recipient_transaction_id IS NULL;
	`
	tag, err := tx.Exec(ctx, query, senderEntryID, recipientEntryID)
	if err != nil {
		return classifyError(fmt.Sprintf("failed to link ledger entry %d to %d", senderEntryID, recipientEntryID), err)
	}
	if tag.RowsAffected() != 1 {
		return apperrors.NewStorageUnknownError(
			fmt.Sprintf("ledger entry %d was not linked to %d", senderEntryID, recipientEntryID), nil)
	}
	return nil
}

// FindEntryByID retrieves a single ledger entry.
func (r *PgxLedgerRepository) FindEntryByID(ctx context.Context, entryID int64) (*domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE id = $1;`

	m, err := scanLedgerEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewEntityNotFoundError("transaction", fmt.Sprintf("Transaction %d does not exist.", entryID))
		}
		return nil, classifyError(fmt.Sprintf("failed to find ledger entry %d", entryID), err)
	}
	e := mapping.ToDomainLedgerEntry(m)
	return &e, nil
}

// FindEntriesByIDs retrieves multiple ledger entries keyed by id.
func (r *PgxLedgerRepository) FindEntriesByIDs(ctx context.Context, entryIDs []int64) (map[int64]domain.LedgerEntry, error) {
	if len(entryIDs) == 0 {
		return map[int64]domain.LedgerEntry{}, nil
	}
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE id = ANY($1);`

	rows, err := r.Pool.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, classifyError("failed to query ledger entries by IDs", err)
	}
	ms, err := collectLedgerEntries(rows)
	if err != nil {
		return nil, classifyError("failed to scan ledger entries", err)
	}

	entries := make(map[int64]domain.LedgerEntry, len(ms))
	for _, m := range ms {
		entries[m.ID] = mapping.ToDomainLedgerEntry(m)
	}
	return entries, nil
}

// ListEntriesByAccount retrieves entries of an account newest first, either
// by offset or continuing from nextToken.
func (r *PgxLedgerRepository) ListEntriesByAccount(ctx context.Context, accountID int64, limit, offset int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	if limit <= 0 {
		limit = defaultEntryLimit
	}
	// One extra row tells whether another page exists.
	fetchLimit := limit + 1

	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE account_id = $1`
	args := []any{accountID}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(apperrors.KindParameterInvalid, "invalid nextToken", err)
		}
		query += ` AND (created_at, id) < ($2, $3)`
		args = append(args, lastCreatedAt, lastID)
		offset = 0
	}

	// id breaks ties between entries created in the same instant, e.g. transfer siblings.
	query += ` ORDER BY created_at DESC, id DESC`
	args = append(args, fetchLimit)
	query += ` LIMIT $` + strconv.Itoa(len(args))
	if offset > 0 {
		args = append(args, offset)
		query += ` OFFSET $` + strconv.Itoa(len(args))
	}
	query += `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, classifyError(fmt.Sprintf("failed to query ledger entries for account %d", accountID), err)
	}
	ms, err := collectLedgerEntries(rows)
	if err != nil {
		return nil, nil, classifyError(fmt.Sprintf("failed to scan ledger entries for account %d", accountID), err)
	}

	var nextTokenVal *string
	if len(ms) > limit {
		last := ms[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.ID)
		nextTokenVal = &token
		ms = ms[:limit]
	}
	return mapping.ToDomainLedgerEntries(ms), nextTokenVal, nil
}

// CountEntriesByAccount counts entries of an account.
func (r *PgxLedgerRepository) CountEntriesByAccount(ctx context.Context, accountID int64) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM ledger_entries WHERE account_id = $1;`, accountID).Scan(&count)
	if err != nil {
		return 0, classifyError(fmt.Sprintf("failed to count ledger entries for account %d", accountID), err)
	}
	return count, nil
}
