package domain

import "time"

// Account holds a running balance in minor currency units. The balance is
// authoritative and is only ever changed by the transaction engine.
type Account struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Email       *string    `json:"email,omitempty"`
	Balance     int64      `json:"balance"`
	Disabled    bool       `json:"isDisabled"`
	CreatedAt   time.Time  `json:"created"`
	LastUpdated *time.Time `json:"updated,omitempty"`
}

// IsActive reports whether the account was touched within stalePeriod of now.
// Accounts that never transacted count as inactive.
func (a Account) IsActive(now time.Time, stalePeriod time.Duration) bool {
	if a.LastUpdated == nil {
		return false
	}
	return !a.LastUpdated.Before(now.Add(-stalePeriod))
}
