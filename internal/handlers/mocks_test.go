package handlers_test

import (
	"context"

	"github.com/sake/strichliste/internal/core/domain"
	portssvc "github.com/sake/strichliste/internal/core/ports/services"
	"github.com/sake/strichliste/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) SearchAccounts(ctx context.Context, params dto.SearchAccountsParams) ([]domain.Account, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, accountID int64, req dto.UpdateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

// --- Mock ArticleService ---
type MockArticleService struct {
	mock.Mock
}

var _ portssvc.ArticleSvcFacade = (*MockArticleService)(nil)

func (m *MockArticleService) GetArticle(ctx context.Context, articleID int64) (*domain.ArticleObject, error) {
	args := m.Called(ctx, articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ArticleObject), args.Error(1)
}

func (m *MockArticleService) ListArticles(ctx context.Context, params dto.ListArticlesParams) ([]domain.ArticleObject, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ArticleObject), args.Error(1)
}

func (m *MockArticleService) CreateArticle(ctx context.Context, req dto.CreateArticleRequest) (*domain.ArticleObject, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ArticleObject), args.Error(1)
}

func (m *MockArticleService) ReplaceArticle(ctx context.Context, oldID int64, req dto.CreateArticleRequest) (*domain.ArticleObject, error) {
	args := m.Called(ctx, oldID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ArticleObject), args.Error(1)
}

func (m *MockArticleService) DeactivateArticle(ctx context.Context, articleID int64) (*domain.ArticleObject, error) {
	args := m.Called(ctx, articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ArticleObject), args.Error(1)
}

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

func (m *MockTransactionService) AddValueTransaction(ctx context.Context, accountID int64, amount int64, comment *string, limits domain.Limits) (*domain.TransactionObject, error) {
	args := m.Called(ctx, accountID, amount, comment, limits)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionObject), args.Error(1)
}

func (m *MockTransactionService) AddArticleTransaction(ctx context.Context, accountID int64, articleID int64, quantity *int64, comment *string, limits domain.Limits) (*domain.TransactionObject, error) {
	args := m.Called(ctx, accountID, articleID, quantity, comment, limits)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionObject), args.Error(1)
}

func (m *MockTransactionService) AddTransferTransaction(ctx context.Context, accountID int64, recipientID int64, amount int64, comment *string, limits domain.Limits) (*domain.TransactionObject, error) {
	args := m.Called(ctx, accountID, recipientID, amount, comment, limits)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionObject), args.Error(1)
}

func (m *MockTransactionService) AddTransaction(ctx context.Context, accountID int64, req dto.CreateTransactionRequest, limits domain.Limits) (*domain.TransactionObject, error) {
	args := m.Called(ctx, accountID, req, limits)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionObject), args.Error(1)
}

func (m *MockTransactionService) GetTransaction(ctx context.Context, accountID int64, entryID int64) (*domain.TransactionObject, error) {
	args := m.Called(ctx, accountID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionObject), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, accountID int64, params dto.ListTransactionsParams) (*domain.TransactionPage, error) {
	args := m.Called(ctx, accountID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionPage), args.Error(1)
}
