package domain

import "time"

// Article is one revision of a catalog item. Revisions form a singly linked
// list through PrecursorID, newest first.
type Article struct {
	ID          int64     `json:"id"`
	PrecursorID *int64    `json:"precursorId,omitempty"`
	Name        string    `json:"name"`
	Barcode     *string   `json:"barcode,omitempty"`
	UnitAmount  int64     `json:"amount"`
	Active      bool      `json:"isActive"`
	UsageCount  int64     `json:"usageCount"`
	CreatedAt   time.Time `json:"created"`
}

// ArticleObject is an article with its revision history materialised.
type ArticleObject struct {
	Article
	Precursor *ArticleObject `json:"precursor"`
}

// Depth is the number of revisions in the chain starting at o.
func (o *ArticleObject) Depth() int {
	n := 0
	for node := o; node != nil; node = node.Precursor {
		n++
	}
	return n
}

// Flatten returns the chain newest first.
func (o *ArticleObject) Flatten() []Article {
	var out []Article
	for node := o; node != nil; node = node.Precursor {
		out = append(out, node.Article)
	}
	return out
}
