package store

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store reads practice records from PostgreSQL. It never writes.
type Store struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}
