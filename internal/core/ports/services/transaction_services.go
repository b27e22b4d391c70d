package services

import (
	"context"

	"github.com/sake/strichliste/internal/core/domain"
	"github.com/sake/strichliste/internal/dto"
)

// TransactionEngineSvc creates ledger entries. Every operation runs in one
// database transaction and checks the caller-supplied limits before writing.
type TransactionEngineSvc interface {
	// AddValueTransaction books amount directly onto the account.
	AddValueTransaction(ctx context.Context, accountID int64, amount int64, comment *string, limits domain.Limits) (*domain.TransactionObject, error)

	// AddArticleTransaction books the purchase of quantity (default 1) units of an active article.
	AddArticleTransaction(ctx context.Context, accountID int64, articleID int64, quantity *int64, comment *string, limits domain.Limits) (*domain.TransactionObject, error)

	// AddTransferTransaction moves -amount from the account to the recipient. amount must be negative.
	AddTransferTransaction(ctx context.Context, accountID int64, recipientID int64, amount int64, comment *string, limits domain.Limits) (*domain.TransactionObject, error)

	// AddTransaction picks the transaction kind from which request fields are set.
	AddTransaction(ctx context.Context, accountID int64, req dto.CreateTransactionRequest, limits domain.Limits) (*domain.TransactionObject, error)
}

// TransactionReaderSvc defines read operations for ledger entries
type TransactionReaderSvc interface {
	// GetTransaction retrieves one entry of an account.
	GetTransaction(ctx context.Context, accountID int64, entryID int64) (*domain.TransactionObject, error)

	// ListTransactions retrieves entries of an account, newest first.
	ListTransactions(ctx context.Context, accountID int64, params dto.ListTransactionsParams) (*domain.TransactionPage, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionEngineSvc
	TransactionReaderSvc
}
