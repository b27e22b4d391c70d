package dto

import (
	"time"

	"github.com/sake/strichliste/internal/core/domain"
)

// CreateArticleRequest defines a new article or a new revision of one.
type CreateArticleRequest struct {
	Name    string  `json:"name" binding:"required,max=255"`
	Barcode *string `json:"barcode" binding:"omitempty,barcode"`
	Amount  *int64  `json:"amount" binding:"required"` // unit price in minor units
}

// ListArticlesParams are the query parameters of the article listing.
// Existing clients send "ancestor"; "ancestors" is accepted as well.
type ListArticlesParams struct {
	Active    *bool `form:"active"`
	Limit     int   `form:"limit" binding:"omitempty,min=1"`
	Offset    int   `form:"offset" binding:"omitempty,min=0"`
	Ancestor  bool  `form:"ancestor"`
	Ancestors bool  `form:"ancestors"`
}

// WithAncestors reports whether replaced revisions were requested.
func (p ListArticlesParams) WithAncestors() bool {
	return p.Ancestor || p.Ancestors
}

// ArticleResponse defines the data returned for an article revision.
type ArticleResponse struct {
	ID         int64            `json:"id"`
	Name       string           `json:"name"`
	Barcode    *string          `json:"barcode"`
	Amount     int64            `json:"amount"`
	IsActive   bool             `json:"isActive"`
	UsageCount int64            `json:"usageCount"`
	Created    time.Time        `json:"created"`
	Precursor  *ArticleResponse `json:"precursor"`
}

// ArticlesResponse wraps article listings.
type ArticlesResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Count    int               `json:"count"`
}

// ToArticleResponse converts a chained article, precursors included.
func ToArticleResponse(obj *domain.ArticleObject) *ArticleResponse {
	if obj == nil {
		return nil
	}
	return &ArticleResponse{
		ID:         obj.ID,
		Name:       obj.Name,
		Barcode:    obj.Barcode,
		Amount:     obj.UnitAmount,
		IsActive:   obj.Active,
		UsageCount: obj.UsageCount,
		Created:    obj.CreatedAt,
		Precursor:  ToArticleResponse(obj.Precursor),
	}
}

// ToArticlesResponse converts a slice of chained articles.
func ToArticlesResponse(objs []domain.ArticleObject) ArticlesResponse {
	out := make([]ArticleResponse, len(objs))
	for i := range objs {
		out[i] = *ToArticleResponse(&objs[i])
	}
	return ArticlesResponse{Articles: out, Count: len(out)}
}
