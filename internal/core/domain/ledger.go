package domain

import "time"

// TransactionKind is derived from which optional references an entry carries.
type TransactionKind string

const (
	KindValue    TransactionKind = "VALUE"
	KindArticle  TransactionKind = "ARTICLE"
	KindTransfer TransactionKind = "TRANSFER"
)

// LedgerEntry is one balance-affecting event for one account. Transfers are
// stored as two entries referencing each other through RecipientTransactionID
// (on the paying side) and SenderTransactionID (on the receiving side).
type LedgerEntry struct {
	ID                     int64     `json:"id"`
	AccountID              int64     `json:"userId"`
	ArticleID              *int64    `json:"articleId,omitempty"`
	RecipientTransactionID *int64    `json:"recipientTransactionId,omitempty"`
	SenderTransactionID    *int64    `json:"senderTransactionId,omitempty"`
	Quantity               *int64    `json:"quantity,omitempty"`
	Comment                *string   `json:"comment,omitempty"`
	Amount                 int64     `json:"amount"`
	Deleted                bool      `json:"isDeleted"`
	CreatedAt              time.Time `json:"created"`
}

// Kind reports the transaction kind of the entry.
func (e LedgerEntry) Kind() TransactionKind {
	switch {
	case e.ArticleID != nil:
		return KindArticle
	case e.RecipientTransactionID != nil || e.SenderTransactionID != nil:
		return KindTransfer
	default:
		return KindValue
	}
}

// TransactionObject is a ledger entry enriched with the records it refers to.
// For the paying side of a transfer Recipient is set, for the receiving side
// Sender is set.
type TransactionObject struct {
	LedgerEntry
	Account   *Account       `json:"user"`
	Article   *ArticleObject `json:"article,omitempty"`
	Recipient *Account       `json:"recipient,omitempty"`
	Sender    *Account       `json:"sender,omitempty"`
}

// TransactionPage is one page of an account's ledger, newest first. Count is
// the total number of entries of the account.
type TransactionPage struct {
	Transactions []TransactionObject
	Count        int64
	NextToken    *string
}
