package models

import (
	"database/sql"
	"time"
)

// Account is a row of the accounts table.
type Account struct {
	ID          int64          `db:"id"`
	Name        string         `db:"name"`
	Email       sql.NullString `db:"email"`
	Balance     int64          `db:"balance"`
	Disabled    bool           `db:"disabled"`
	CreatedAt   time.Time      `db:"created_at"`
	LastUpdated sql.NullTime   `db:"last_updated"`
}
