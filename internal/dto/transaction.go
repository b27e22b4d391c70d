package dto

import (
	"time"

	"github.com/sake/strichliste/internal/core/domain"
)

// CreateTransactionRequest selects the transaction kind by which optional
// fields are present: amount alone, articleId, or recipientId with a negative amount.
type CreateTransactionRequest struct {
	Amount      *int64  `json:"amount"`
	Quantity    *int64  `json:"quantity" binding:"omitempty,min=1"`
	Comment     *string `json:"comment" binding:"omitempty,max=255"`
	RecipientID *int64  `json:"recipientId"`
	ArticleID   *int64  `json:"articleId"`
}

// ListTransactionsParams are the query parameters of the transaction listing.
type ListTransactionsParams struct {
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=1000"`
	Offset    int     `form:"offset" binding:"omitempty,min=0"`
	NextToken *string `form:"nextToken"`
}

// TransactionResponse defines the data returned for a ledger entry.
type TransactionResponse struct {
	ID                     int64            `json:"id"`
	Kind                   string           `json:"kind"`
	Amount                 int64            `json:"amount"`
	Quantity               *int64           `json:"quantity"`
	Comment                *string          `json:"comment"`
	IsDeleted              bool             `json:"isDeleted"`
	Created                time.Time        `json:"created"`
	User                   *AccountResponse `json:"user"`
	Article                *ArticleResponse `json:"article"`
	Recipient              *AccountResponse `json:"recipient"`
	Sender                 *AccountResponse `json:"sender"`
	RecipientTransactionID *int64           `json:"recipientTransactionId"`
	SenderTransactionID    *int64           `json:"senderTransactionId"`
}

// TransactionsResponse wraps transaction listings.
type TransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Count        int64                 `json:"count"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

func toOptionalAccountResponse(acc *domain.Account, now time.Time, stalePeriod time.Duration) *AccountResponse {
	if acc == nil {
		return nil
	}
	resp := ToAccountResponse(acc, now, stalePeriod)
	return &resp
}

// ToTransactionResponse converts an enriched ledger entry.
func ToTransactionResponse(t *domain.TransactionObject, now time.Time, stalePeriod time.Duration) TransactionResponse {
	return TransactionResponse{
		ID:                     t.ID,
		Kind:                   string(t.Kind()),
		Amount:                 t.Amount,
		Quantity:               t.Quantity,
		Comment:                t.Comment,
		IsDeleted:              t.Deleted,
		Created:                t.CreatedAt,
		User:                   toOptionalAccountResponse(t.Account, now, stalePeriod),
		Article:                ToArticleResponse(t.Article),
		Recipient:              toOptionalAccountResponse(t.Recipient, now, stalePeriod),
		Sender:                 toOptionalAccountResponse(t.Sender, now, stalePeriod),
		RecipientTransactionID: t.RecipientTransactionID,
		SenderTransactionID:    t.SenderTransactionID,
	}
}
