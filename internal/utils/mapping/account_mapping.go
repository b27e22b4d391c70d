package mapping

import (
	"database/sql"

	"github.com/sake/strichliste/internal/core/domain"
	"github.com/sake/strichliste/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	m := models.Account{
		ID:        d.ID,
		Name:      d.Name,
		Email:     NullString(d.Email),
		Balance:   d.Balance,
		Disabled:  d.Disabled,
		CreatedAt: d.CreatedAt,
	}
	if d.LastUpdated != nil {
		m.LastUpdated = sql.NullTime{Time: *d.LastUpdated, Valid: true}
	}
	return m
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		ID:          m.ID,
		Name:        m.Name,
		Email:       stringPtr(m.Email),
		Balance:     m.Balance,
		Disabled:    m.Disabled,
		CreatedAt:   m.CreatedAt,
		LastUpdated: timePtr(m.LastUpdated),
	}
}

// ToDomainAccounts converts a slice of model Accounts
func ToDomainAccounts(ms []models.Account) []domain.Account {
	out := make([]domain.Account, len(ms))
	for i, m := range ms {
		out[i] = ToDomainAccount(m)
	}
	return out
}
