package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"trip-planner-service/internal/platform/obs"
	"trip-planner-service/internal/ports"
)

// SQLMatrixCache is a Postgres-backed cache of pairwise travel results,
// keyed by travel mode and an "origin|destination" coordinate pair.
type SQLMatrixCache struct {
	DB *sql.DB
}

func NewSQLMatrixCache(db *sql.DB) *SQLMatrixCache {
	return &SQLMatrixCache{DB: db}
}

// Fetch cached travel results for the given pair keys under one mode.
func (s *SQLMatrixCache) GetMany(
	ctx context.Context,
	mode string,
	pairs []string,
) (_ map[string]ports.DistanceResult, err error) {
	defer obs.Time(ctx, "matrix.cache.GetMany")(&err)

	if s.DB == nil {
		return nil, errors.New("matrix cache: db is nil")
	}

	if mode == "" {
		return nil, errors.New("get matrix cache: mode must not be empty")
	}

	if len(pairs) == 0 {
		return map[string]ports.DistanceResult{}, nil
	}

	seen := map[string]struct{}{}
	uniq := make([]string, 0, len(pairs))
	for _, p := range pairs {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		uniq = append(uniq, p)
	}

	if len(uniq) == 0 {
		return map[string]ports.DistanceResult{}, nil
	}

	q := `
	SELECT origin || '|' || destination, distance_meters, duration_seconds
    FROM matrix_cache
    WHERE mode = $1
        AND origin || '|' || destination = ANY($2::text[]);
	`

	rows, err := s.DB.QueryContext(ctx, q, mode, uniq)
	if err != nil {
		return nil, fmt.Errorf("get matrix cache: query matrix_cache table: %w", err)
	}
	defer rows.Close()

	out := make(map[string]ports.DistanceResult, len(uniq))
	for rows.Next() {
		var pair string
		var meters, seconds int
		if err := rows.Scan(&pair, &meters, &seconds); err != nil {
			return nil, fmt.Errorf("get matrix cache: scan rows: %w", err)
		}
		out[pair] = ports.DistanceResult{
			DistanceMeters:  meters,
			DurationSeconds: seconds,
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get matrix cache: row iteration: %w", err)
	}

	return out, nil
}

// Store many cached travel results under one mode.
func (s *SQLMatrixCache) PutMany(
	ctx context.Context,
	mode string,
	results map[string]ports.DistanceResult,
) error {
	if s.DB == nil {
		return errors.New("matrix cache: db is nil")
	}

	if mode == "" {
		return errors.New("insert matrix cache: mode must not be empty")
	}

	if len(results) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert matrix cache: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO matrix_cache (mode, origin, destination, distance_meters, duration_seconds)
    VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (mode, origin, destination) DO UPDATE
	SET distance_meters = EXCLUDED.distance_meters,
		duration_seconds = EXCLUDED.duration_seconds;
	`)
	if err != nil {
		return fmt.Errorf("insert matrix cache: db prepare: %w", err)
	}
	defer stmt.Close()

	for pair, r := range results {
		origin, destination, ok := strings.Cut(pair, "|")
		if !ok || origin == "" || destination == "" {
			return fmt.Errorf("insert matrix cache: malformed pair key %q", pair)
		}

		if _, err := stmt.ExecContext(ctx, mode, origin, destination, r.DistanceMeters, r.DurationSeconds); err != nil {
			return fmt.Errorf("insert matrix cache pair=%q: %w", pair, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert matrix cache commit: %w", err)
	}

	return nil
}
