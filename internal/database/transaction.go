package database

import (
	"context"

	"gorm.io/gorm"
)

// txKey is the context key for storing the active transaction.
type txKey struct{}

// TransactionManager scopes a group of store writes to one commit/rollback.
// Every mutating service operation runs flag, association and audit writes
// inside a single RunInTransaction call so they succeed or fail together.
type TransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager creates a new TransactionManager.
func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction executes fn within a database transaction. The transaction
// is committed when fn returns nil and rolled back on any error, including
// panics unwound by gorm.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, txKey{}, tx)
		return fn(txCtx)
	})
}

// FromContext returns the transaction stored in ctx, or the fallback DB when
// the call is not running inside a transaction scope. Repositories resolve
// their handle through this so reads stay lock-free while writes share the
// enclosing transaction.
func FromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback.WithContext(ctx)
}
