package mapping

import (
	"github.com/sake/strichliste/internal/core/domain"
	"github.com/sake/strichliste/internal/models"
)

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		ID:                     d.ID,
		AccountID:              d.AccountID,
		ArticleID:              NullInt64(d.ArticleID),
		RecipientTransactionID: NullInt64(d.RecipientTransactionID),
		SenderTransactionID:    NullInt64(d.SenderTransactionID),
		Quantity:               NullInt64(d.Quantity),
		Comment:                NullString(d.Comment),
		Amount:                 d.Amount,
		Deleted:                d.Deleted,
		CreatedAt:              d.CreatedAt,
	}
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		ID:                     m.ID,
		AccountID:              m.AccountID,
		ArticleID:              int64Ptr(m.ArticleID),
		RecipientTransactionID: int64Ptr(m.RecipientTransactionID),
		SenderTransactionID:    int64Ptr(m.SenderTransactionID),
		Quantity:               int64Ptr(m.Quantity),
		Comment:                stringPtr(m.Comment),
		Amount:                 m.Amount,
		Deleted:                m.Deleted,
		CreatedAt:              m.CreatedAt,
	}
}

// ToDomainLedgerEntries converts a slice of model LedgerEntries
func ToDomainLedgerEntries(ms []models.LedgerEntry) []domain.LedgerEntry {
	out := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		out[i] = ToDomainLedgerEntry(m)
	}
	return out
}
