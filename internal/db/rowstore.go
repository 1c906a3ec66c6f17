package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Row maps column name to value for one result row.
type Row map[string]any

// StoreError is returned for any transport or database level failure.
type StoreError struct {
	Query string
	Err   error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %v", e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Store is the row store client. It executes exactly one statement with
// bound parameters and returns the result rows; an empty slice means no
// row matched. No retries, no validation.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) Execute(ctx context.Context, query string, args ...any) ([]Row, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, &StoreError{Query: query, Err: err}
	}

	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, &StoreError{Query: query, Err: err}
	}

	out := make([]Row, 0, len(maps))
	for _, m := range maps {
		out = append(out, Row(m))
	}
	return out, nil
}
