package ports

import (
	"context"
	"errors"
	"time"

	"trip-planner-service/internal/domain"

	"github.com/google/uuid"
)

var ErrPlanNotFound = errors.New("trip plan not found")

// A persisted planning result.
type StoredTripPlan struct {
	ID        uuid.UUID
	Plan      *domain.TripPlan
	CreatedAt time.Time
}

// Port: a boundary for persisting and retrieving computed trip plans.
type TripPlanRepository interface {
	SavePlan(ctx context.Context, plan *domain.TripPlan) (uuid.UUID, error)
	GetPlan(ctx context.Context, id uuid.UUID) (*StoredTripPlan, error)
}
