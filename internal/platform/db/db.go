package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Open a Postgres pool sized for the planning workload: one plan request
// fans out into a handful of cache reads and write-backs, but traffic is
// bursty rather than sustained, so the pool stays small with a modest
// idle reserve.
func Open(databaseURL string) (*sql.DB, error) {
	pool, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open db: open postgres pool: %w", err)
	}

	pool.SetMaxOpenConns(15)
	pool.SetMaxIdleConns(5)
	pool.SetConnMaxLifetime(time.Hour)

	if err := pool.Ping(); err != nil {
		return nil, fmt.Errorf("open db: verify postgres connection: %w", err)
	}

	return pool, nil
}
