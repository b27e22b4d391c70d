package services

// ServiceContainer bundles the account, catalog and ledger services the
// HTTP handlers are built from.
type ServiceContainer struct {
	Account     AccountSvcFacade
	Article     ArticleSvcFacade
	Transaction TransactionSvcFacade
}
