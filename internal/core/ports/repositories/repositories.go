package repositories

// RepositoryProvider is what the service container is wired from. The ledger
// repository is the only one that hands out transactions to the engine.
type RepositoryProvider struct {
	AccountRepo AccountRepositoryFacade
	ArticleRepo ArticleRepositoryFacade
	LedgerRepo  LedgerRepositoryWithTx
}
