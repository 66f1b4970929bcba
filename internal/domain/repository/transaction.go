package repository

import "context"

// TransactionManager runs a unit of work atomically. Repositories obtained
// from the factory inside fn share the transaction.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out transaction-bound repositories.
type RepositoryFactory interface {
	NewPairingRepository() PairingRepository
}
