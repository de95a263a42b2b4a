// Package db scopes gorm transactions to a context. Repository calls made
// inside a use case transaction pick the transactional handle off the
// context instead of receiving it as a parameter, so repository interfaces
// stay free of *gorm.DB.
package db

import (
	"context"

	"gorm.io/gorm"
)

type txContextKey struct{}

// TransactionManager opens transactions for multi-step mutations. Release,
// move, delete, and the history undo all run their checks and writes
// through one RunInTransaction call.
type TransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction runs fn inside a single transaction and hands it a
// context carrying the transactional handle. An error from fn rolls back
// every write made through that context.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txContextKey{}, tx))
	})
}

// GetTxFromContext returns the transaction carried by ctx. Outside a
// transaction it falls back to the given handle with the context attached,
// so repositories work the same either way.
func GetTxFromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txContextKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback.WithContext(ctx)
}
