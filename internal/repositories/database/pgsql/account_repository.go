package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sake/strichliste/internal/apperrors"
	"github.com/sake/strichliste/internal/core/domain"
	portsrepo "github.com/sake/strichliste/internal/core/ports/repositories"
	"github.com/sake/strichliste/internal/models"
	"github.com/sake/strichliste/internal/utils/mapping"
)

const accountColumns = `id, name, email, balance, disabled, created_at, last_updated`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool DBPool, lockTimeout time.Duration) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool, LockTimeout: lockTimeout}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row rowScanner) (models.Account, error) {
	var m models.Account
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Balance, &m.Disabled, &m.CreatedAt, &m.LastUpdated)
	return m, err
}

func collectAccounts(rows pgx.Rows) ([]models.Account, error) {
	defer rows.Close()
	var out []models.Account
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func accountNotFound(accountID int64) error {
	return apperrors.NewEntityNotFoundError("account", fmt.Sprintf("Account %d does not exist.", accountID))
}

// FindAccountByID retrieves a single account.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1;`

	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, accountNotFound(accountID)
		}
		return nil, classifyError(fmt.Sprintf("failed to find account %d", accountID), err)
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

// FindAccountsByIDs retrieves multiple accounts keyed by id.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []int64) (map[int64]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[int64]domain.Account{}, nil
	}
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = ANY($1);`

	rows, err := r.Pool.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, classifyError("failed to query accounts by IDs", err)
	}
	ms, err := collectAccounts(rows)
	if err != nil {
		return nil, classifyError("failed to scan account rows", err)
	}

	accounts := make(map[int64]domain.Account, len(ms))
	for _, m := range ms {
		accounts[m.ID] = mapping.ToDomainAccount(m)
	}
	return accounts, nil
}

// ListAccounts retrieves accounts matching filter ordered by name.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, filter portsrepo.AccountFilter) ([]domain.Account, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + accountColumns + ` FROM accounts WHERE disabled = $1`)
	args := []any{filter.Disabled}

	if filter.Active != nil {
		args = append(args, filter.ActiveSince)
		placeholder := "$" + strconv.Itoa(len(args))
		if *filter.Active {
			sb.WriteString(` AND last_updated >= ` + placeholder)
		} else {
			sb.WriteString(` AND (last_updated IS NULL OR last_updated < ` + placeholder + `)`)
		}
	}
	sb.WriteString(` ORDER BY name;`)

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, classifyError("failed to list accounts", err)
	}
	ms, err := collectAccounts(rows)
	if err != nil {
		return nil, classifyError("failed to scan account rows", err)
	}
	return mapping.ToDomainAccounts(ms), nil
}

// SearchAccounts retrieves accounts whose name contains query.
func (r *PgxAccountRepository) SearchAccounts(ctx context.Context, query string, limit int) ([]domain.Account, error) {
	sqlQuery := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY name
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, sqlQuery, likeEscaper.Replace(query), limit)
	if err != nil {
		return nil, classifyError("failed to search accounts", err)
	}
	ms, err := collectAccounts(rows)
	if err != nil {
		return nil, classifyError("failed to scan account rows", err)
	}
	return mapping.ToDomainAccounts(ms), nil
}

// SaveAccount inserts a new account. The balance of a new account is always zero.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (name, email, balance, disabled, created_at)
		VALUES ($1, $2, 0, $3, $4)
		RETURNING ` + accountColumns + `;
	`
	saved, err := scanAccount(r.Pool.QueryRow(ctx, query, m.Name, m.Email, m.Disabled, m.CreatedAt))
	if err != nil {
		return nil, classifyError(fmt.Sprintf("failed to save account %q", m.Name), err)
	}
	acc := mapping.ToDomainAccount(saved)
	return &acc, nil
}

// UpdateAccount updates name, email and disabled flag.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `UPDATE accounts SET name = $2, email = $3, disabled = $4 WHERE id = $1;`

	tag, err := r.Pool.Exec(ctx, query, m.ID, m.Name, m.Email, m.Disabled)
	if err != nil {
		return classifyError(fmt.Sprintf("failed to update account %d", m.ID), err)
	}
	if tag.RowsAffected() == 0 {
		return accountNotFound(m.ID)
	}
	return nil
}

// FindAccountsByIDsForUpdate selects accounts and locks their rows until tx
// ends. Rows are locked in id order so concurrent transfers cannot deadlock.
func (r *PgxAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []int64) (map[int64]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE id = ANY($1)
		ORDER BY id
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, classifyError("failed to query accounts by IDs for update", err)
	}
	ms, err := collectAccounts(rows)
	if err != nil {
		return nil, classifyError("failed to scan locked account rows", err)
	}

	accounts := make(map[int64]domain.Account, len(ms))
	for _, m := range ms {
		accounts[m.ID] = mapping.ToDomainAccount(m)
	}
	return accounts, nil
}

// UpdateAccountBalanceInTx adds delta to the balance of an account.
func (r *PgxAccountRepository) UpdateAccountBalanceInTx(ctx context.Context, tx pgx.Tx, accountID int64, delta int64, now time.Time) error {
	query := `UPDATE accounts SET balance = balance + $2, last_updated = $3 WHERE id = $1;`

	tag, err := tx.Exec(ctx, query, accountID, delta, now)
	if err != nil {
		return classifyError(fmt.Sprintf("failed to update balance of account %d", accountID), err)
	}
	if tag.RowsAffected() == 0 {
		return accountNotFound(accountID)
	}
	return nil
}
