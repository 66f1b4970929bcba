// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"agrimatch/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type txManager struct {
	db *gorm.DB
}

// txScope binds repositories to the *gorm.DB of an open transaction.
type txScope struct {
	tx *gorm.DB
}

func (s txScope) NewPairingRepository() repository.PairingRepository {
	return NewPairingRepository(s.tx)
}

// NewTransactionManager returns a TransactionManager backed by GORM transactions.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &txManager{db: db}
}

// Execute commits when fn returns nil and rolls back on an error or a panic.
// fn's own error is returned unwrapped so callers can match domain errors.
func (m *txManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	var fnErr error

	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txScope{tx: tx})

		return fnErr
	})

	switch {
	case err == nil:
		return nil
	case fnErr != nil && errors.Is(err, fnErr):
		return fnErr
	default:
		return errors.Wrap(err, "pairing transaction failed")
	}
}
