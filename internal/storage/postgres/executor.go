package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// QueryExecutor is the part of sqlx shared by *sqlx.DB and *sqlx.Tx. Stores
// run every statement through the executor they were built with.
type QueryExecutor interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

var (
	_ QueryExecutor = (*sqlx.DB)(nil)
	_ QueryExecutor = (*sqlx.Tx)(nil)
)
