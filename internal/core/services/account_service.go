package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/sake/strichliste/internal/apperrors"
	"github.com/sake/strichliste/internal/core/domain"
	portsrepo "github.com/sake/strichliste/internal/core/ports/repositories"
	portssvc "github.com/sake/strichliste/internal/core/ports/services"
	"github.com/sake/strichliste/internal/dto"
	"github.com/sake/strichliste/internal/utils"
)

const defaultSearchLimit = 25

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	stalePeriod time.Duration
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithStalePeriod sets how long an account counts as active after its last transaction.
func WithStalePeriod(period time.Duration) AccountServiceOption {
	return func(s *accountService) {
		s.stalePeriod = period
	}
}

// WithAccountClock overrides the clock used for timestamps and activity.
func WithAccountClock(clock func() time.Time) AccountServiceOption {
	return func(s *accountService) {
		s.Clock = clock
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(repo portsrepo.AccountRepositoryFacade, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo: repo,
		stalePeriod: domain.DefaultStalePeriod,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	name := utils.SanitizeText(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationFailedError("Name must not be empty.")
	}

	account, err := s.accountRepo.SaveAccount(ctx, domain.Account{
		Name:      name,
		Email:     utils.SanitizeOptional(req.Email),
		CreatedAt: s.Now(),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("name", name))
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.Int64("account_id", account.ID))
	return account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

func (s *accountService) ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx, portsrepo.AccountFilter{
		Disabled:    params.Disabled,
		Active:      params.Active,
		ActiveSince: s.Now().Add(-s.stalePeriod),
	})
}

func (s *accountService) SearchAccounts(ctx context.Context, params dto.SearchAccountsParams) ([]domain.Account, error) {
	query := utils.SanitizeText(params.Query)
	if query == "" {
		return nil, apperrors.NewValidationFailedError("Search query must not be empty.")
	}
	limit := params.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	return s.accountRepo.SearchAccounts(ctx, query, limit)
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID int64, req dto.UpdateAccountRequest) (*domain.Account, error) {
	name := utils.SanitizeText(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationFailedError("Name must not be empty.")
	}

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	account.Name = name
	account.Email = utils.SanitizeOptional(req.Email)
	if req.IsDisabled != nil {
		account.Disabled = *req.IsDisabled
	}

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.Int64("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated", slog.Int64("account_id", accountID), slog.Bool("disabled", account.Disabled))
	return account, nil
}
