package pgsql

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/sake/strichliste/internal/apperrors"
	"github.com/sake/strichliste/internal/core/domain"
	"github.com/sake/strichliste/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ledgerColumnNames = []string{"id", "account_id", "article_id", "recipient_transaction_id", "sender_transaction_id", "quantity", "comment", "amount", "deleted", "created_at"}

var (
	noInt    = sql.NullInt64{}
	noString = sql.NullString{}
)

func someInt(v int64) sql.NullInt64 { return sql.NullInt64{Int64: v, Valid: true} }

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestBeginSetsLockTimeout(t *testing.T) {
	mock := newMockPool(t)
	repo := newPgxLedgerRepository(mock, 1500*time.Millisecond)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("set_config\\('lock_timeout'").WithArgs("1500ms").WillReturnResult(pgxmock.NewResult("SELECT", 1))

	tx, err := repo.Begin(ctx)
	require.NoError(t, err)
	assert.NotNil(t, tx)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBeginLockTimeoutFailureRollsBack(t *testing.T) {
	mock := newMockPool(t)
	repo := newPgxLedgerRepository(mock, time.Second)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("set_config").WithArgs("1000ms").WillReturnError(&pgconn.PgError{Code: "08006"})
	mock.ExpectRollback()

	tx, err := repo.Begin(ctx)
	assert.Nil(t, tx)
	assert.ErrorIs(t, err, apperrors.ErrStorageUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertEntryInTx(t *testing.T) {
	mock := newMockPool(t)
	repo := newPgxLedgerRepository(mock, 0)
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	tx, err := mock.Begin(ctx)
	require.NoError(t, err)

	mock.ExpectQuery("INSERT INTO ledger_entries").
		WithArgs(int64(2), noInt, noInt, someInt(20), noInt, noString, int64(500), now).
		WillReturnRows(pgxmock.NewRows(ledgerColumnNames).
			AddRow(int64(21), int64(2), noInt, noInt, someInt(20), noInt, noString, int64(500), false, now))

	entry, err := repo.InsertEntryInTx(ctx, tx, domain.LedgerEntry{
		AccountID:           2,
		SenderTransactionID: domain.Int64Ptr(20),
		Amount:              500,
		CreatedAt:           now,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(21), entry.ID)
	assert.Equal(t, domain.KindTransfer, entry.Kind())
	assert.Nil(t, entry.RecipientTransactionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLinkRecipientInTx(t *testing.T) {
	mock := newMockPool(t)
	repo := newPgxLedgerRepository(mock, 0)
	ctx := context.Background()

	mock.ExpectBegin()
	tx, err := mock.Begin(ctx)
	require.NoError(t, err)

	mock.ExpectExec("UPDATE ledger_entries SET recipient_transaction_id").
		WithArgs(int64(20), int64(21)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE ledger_entries SET recipient_transaction_id").
		WithArgs(int64(20), int64(22)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	require.NoError(t, repo.LinkRecipientInTx(ctx, tx, 20, 21))

	// already linked rows are never relinked
	err = repo.LinkRecipientInTx(ctx, tx, 20, 22)
	assert.ErrorIs(t, err, apperrors.ErrStorageUnknown)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListEntriesByAccountPagination(t *testing.T) {
	mock := newMockPool(t)
	repo := newPgxLedgerRepository(mock, 0)
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM ledger_entries WHERE account_id = \\$1 ORDER BY created_at DESC, id DESC LIMIT \\$2").
		WithArgs(int64(1), 3).
		WillReturnRows(pgxmock.NewRows(ledgerColumnNames).
			AddRow(int64(9), int64(1), noInt, noInt, noInt, noInt, noString, int64(100), false, base).
			AddRow(int64(8), int64(1), someInt(4), noInt, noInt, someInt(2), sql.NullString{String: "two", Valid: true}, int64(-300), false, base.Add(-time.Minute)).
			AddRow(int64(7), int64(1), noInt, noInt, noInt, noInt, noString, int64(50), false, base.Add(-2*time.Minute)))

	entries, next, err := repo.ListEntriesByAccount(ctx, 1, 2, 0, nil)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.KindArticle, entries[1].Kind())
	require.NotNil(t, next)

	lastCreatedAt, lastID, err := pagination.DecodeToken(*next)
	require.NoError(t, err)
	assert.Equal(t, int64(8), lastID)
	assert.True(t, lastCreatedAt.Equal(base.Add(-time.Minute)))

	mock.ExpectQuery("AND \\(created_at, id\\) < \\(\\$2, \\$3\\)").
		WithArgs(int64(1), pgxmock.AnyArg(), int64(8), 3).
		WillReturnRows(pgxmock.NewRows(ledgerColumnNames).
			AddRow(int64(7), int64(1), noInt, noInt, noInt, noInt, noString, int64(50), false, base.Add(-2*time.Minute)))

	entries, next, err = repo.ListEntriesByAccount(ctx, 1, 2, 0, next)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Nil(t, next)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListEntriesByAccountRejectsBadToken(t *testing.T) {
	mock := newMockPool(t)
	repo := newPgxLedgerRepository(mock, 0)
	bad := "%%%"

	_, _, err := repo.ListEntriesByAccount(context.Background(), 1, 5, 0, &bad)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}
