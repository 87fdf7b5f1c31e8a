package repository

import (
	"context"
	"database/sql"
)

// DBTX is the handle repositories run their queries on. Both *sql.DB and
// *sql.Tx satisfy it, so the caller decides whether a unit of work runs
// in autocommit mode or inside a transaction it owns.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store groups the repositories bound to a single DBTX
type Store struct {
	Products   ProductRepository
	Categories CategoryRepository
}

// NewStore creates product and category repositories sharing the same handle
func NewStore(db DBTX) *Store {
	return &Store{
		Products:   NewProductRepository(db),
		Categories: NewCategoryRepository(db),
	}
}

// scanner is implemented by *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}
