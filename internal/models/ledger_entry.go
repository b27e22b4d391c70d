package models

import (
	"database/sql"
	"time"
)

// LedgerEntry is a row of the ledger_entries table.
type LedgerEntry struct {
	ID                     int64          `db:"id"`
	AccountID              int64          `db:"account_id"`
	ArticleID              sql.NullInt64  `db:"article_id"`
	RecipientTransactionID sql.NullInt64  `db:"recipient_transaction_id"`
	SenderTransactionID    sql.NullInt64  `db:"sender_transaction_id"`
	Quantity               sql.NullInt64  `db:"quantity"`
	Comment                sql.NullString `db:"comment"`
	Amount                 int64          `db:"amount"`
	Deleted                bool           `db:"deleted"`
	CreatedAt              time.Time      `db:"created_at"`
}
