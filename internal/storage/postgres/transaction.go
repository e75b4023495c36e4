package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"bills_fetcher/internal/service"
)

type TransactionManager struct {
	db *sqlx.DB
}

func NewTransactionManager(db *sqlx.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// WithTransaction runs fn with stores bound to a fresh transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
func (tm *TransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context, stores service.Stores) error) error {
	tx, err := tm.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(ctx, NewStores(tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

func NewStores(q QueryExecutor) service.Stores {
	return service.Stores{
		Bills:      NewBillStore(q),
		People:     NewPersonStore(q),
		Committees: NewCommitteeStore(q),
	}
}
