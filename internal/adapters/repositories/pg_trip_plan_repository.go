package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"

	"github.com/google/uuid"
)

// Postgres-backed implementation of the TripPlanRepository port.
// Plans are stored as JSONB snapshots keyed by uuid.
type PGTripPlanRepository struct{ DB *sql.DB }

func NewPGTripPlanRepository(db *sql.DB) *PGTripPlanRepository {
	return &PGTripPlanRepository{DB: db}
}

// Persist a computed trip plan and return its id.
func (r *PGTripPlanRepository) SavePlan(ctx context.Context, plan *domain.TripPlan) (uuid.UUID, error) {
	if r.DB == nil {
		return uuid.Nil, errors.New("trip plan repository: DB is nil")
	}
	if plan == nil {
		return uuid.Nil, errors.New("save plan: plan must be non-nil")
	}

	payload, err := json.Marshal(plan)
	if err != nil {
		return uuid.Nil, fmt.Errorf("save plan: marshal plan: %w", err)
	}

	id := uuid.New()

	query := `
	INSERT INTO trip_plans (id, plan)
	VALUES ($1, $2);
	`
	if _, err := r.DB.ExecContext(ctx, query, id, payload); err != nil {
		return uuid.Nil, fmt.Errorf("save plan: insert trip_plans row: %w", err)
	}

	return id, nil
}

// Fetch a stored trip plan by id.
func (r *PGTripPlanRepository) GetPlan(ctx context.Context, id uuid.UUID) (*ports.StoredTripPlan, error) {
	if r.DB == nil {
		return nil, errors.New("trip plan repository: DB is nil")
	}

	query := `
	SELECT plan, created_at
	FROM trip_plans
	WHERE id = $1;
	`

	var payload []byte
	var createdAt time.Time
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&payload, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrPlanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get plan: query trip_plans table: %w", err)
	}

	var plan domain.TripPlan
	if err := json.Unmarshal(payload, &plan); err != nil {
		return nil, fmt.Errorf("get plan: unmarshal plan %s: %w", id, err)
	}

	return &ports.StoredTripPlan{ID: id, Plan: &plan, CreatedAt: createdAt}, nil
}
