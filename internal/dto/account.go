package dto

import (
	"time"

	"github.com/sake/strichliste/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name  string  `json:"name" binding:"required,max=64"`
	Email *string `json:"email" binding:"omitempty,email"` // Optional
}

// UpdateAccountRequest defines the data allowed for updating an account.
// The balance is never accepted from callers.
type UpdateAccountRequest struct {
	Name       string  `json:"name" binding:"required,max=64"`
	Email      *string `json:"email" binding:"omitempty,email"`
	IsDisabled *bool   `json:"isDisabled"` // Optional: unchanged when omitted
}

// ListAccountsParams are the query parameters of the account listing.
type ListAccountsParams struct {
	Disabled bool  `form:"disabled"`
	Active   *bool `form:"active"`
}

// SearchAccountsParams are the query parameters of the account search.
type SearchAccountsParams struct {
	Query string `form:"query" binding:"required"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Email      *string    `json:"email"`
	Balance    int64      `json:"balance"`
	IsActive   bool       `json:"isActive"`
	IsDisabled bool       `json:"isDisabled"`
	Created    time.Time  `json:"created"`
	Updated    *time.Time `json:"updated"`
}

// AccountsResponse wraps account listings.
type AccountsResponse struct {
	Accounts []AccountResponse `json:"users"`
	Count    int               `json:"count"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO. Whether
// the account counts as active depends on the configured stale period.
func ToAccountResponse(acc *domain.Account, now time.Time, stalePeriod time.Duration) AccountResponse {
	return AccountResponse{
		ID:         acc.ID,
		Name:       acc.Name,
		Email:      acc.Email,
		Balance:    acc.Balance,
		IsActive:   acc.IsActive(now, stalePeriod),
		IsDisabled: acc.Disabled,
		Created:    acc.CreatedAt,
		Updated:    acc.LastUpdated,
	}
}

// ToAccountsResponse converts a slice of accounts.
func ToAccountsResponse(accs []domain.Account, now time.Time, stalePeriod time.Duration) AccountsResponse {
	out := make([]AccountResponse, len(accs))
	for i := range accs {
		out[i] = ToAccountResponse(&accs[i], now, stalePeriod)
	}
	return AccountsResponse{Accounts: out, Count: len(out)}
}
