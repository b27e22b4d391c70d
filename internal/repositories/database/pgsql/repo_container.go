package pgsql

import (
	"time"

	portsrepo "github.com/sake/strichliste/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the postgres repositories. lockTimeout bounds
// every row-lock wait inside their transactions.
func NewRepositoryProvider(dbPool DBPool, lockTimeout time.Duration) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: newPgxAccountRepository(dbPool, lockTimeout),
		ArticleRepo: newPgxArticleRepository(dbPool, lockTimeout),
		LedgerRepo:  newPgxLedgerRepository(dbPool, lockTimeout),
	}
}
