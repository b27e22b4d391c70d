package models

import (
	"database/sql"
	"time"
)

// Article is a row of the articles table.
type Article struct {
	ID          int64          `db:"id"`
	PrecursorID sql.NullInt64  `db:"precursor_id"` // Nullable self reference
	Name        string         `db:"name"`
	Barcode     sql.NullString `db:"barcode"`
	UnitAmount  int64          `db:"unit_amount"`
	Active      bool           `db:"active"`
	UsageCount  int64          `db:"usage_count"`
	CreatedAt   time.Time      `db:"created_at"`
}
