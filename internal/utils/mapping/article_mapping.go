package mapping

import (
	"github.com/sake/strichliste/internal/core/domain"
	"github.com/sake/strichliste/internal/models"
)

// ToModelArticle converts a domain Article to a model Article
func ToModelArticle(d domain.Article) models.Article {
	return models.Article{
		ID:          d.ID,
		PrecursorID: NullInt64(d.PrecursorID),
		Name:        d.Name,
		Barcode:     NullString(d.Barcode),
		UnitAmount:  d.UnitAmount,
		Active:      d.Active,
		UsageCount:  d.UsageCount,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainArticle converts a model Article to a domain Article
func ToDomainArticle(m models.Article) domain.Article {
	return domain.Article{
		ID:          m.ID,
		PrecursorID: int64Ptr(m.PrecursorID),
		Name:        m.Name,
		Barcode:     stringPtr(m.Barcode),
		UnitAmount:  m.UnitAmount,
		Active:      m.Active,
		UsageCount:  m.UsageCount,
		CreatedAt:   m.CreatedAt,
	}
}

// ToArticleArena indexes model rows by id for chain reconstruction.
func ToArticleArena(ms []models.Article) domain.Arena[domain.Article] {
	arena := make(domain.Arena[domain.Article], len(ms))
	for _, m := range ms {
		arena[m.ID] = ToDomainArticle(m)
	}
	return arena
}
