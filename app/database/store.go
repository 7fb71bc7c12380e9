// Package database is the raw-SQL persistence layer. Store wraps *sql.DB and
// exposes the query surface the services consume; no ORM, every query is
// explicit.
package database

import (
	"database/sql"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for the few callers (migrations, CLIs)
// that need it directly.
func (s *Store) DB() *sql.DB {
	return s.db
}
