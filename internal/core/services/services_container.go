package services

import (
	portsrepo "github.com/sake/strichliste/internal/core/ports/repositories"
	portssvc "github.com/sake/strichliste/internal/core/ports/services"
	"github.com/sake/strichliste/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account: NewAccountService(
			repos.AccountRepo,
			WithStalePeriod(cfg.Settings.StalePeriod),
		),
		Article: NewArticleService(repos.ArticleRepo),
		Transaction: NewTransactionService(
			repos.AccountRepo,
			repos.ArticleRepo,
			repos.LedgerRepo,
		),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade     = (*accountService)(nil)
	_ portssvc.ArticleSvcFacade     = (*articleService)(nil)
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
)
