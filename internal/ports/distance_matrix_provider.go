package ports

import (
	"context"
	"trip-planner-service/internal/domain"
)

// Distance and travel duration between two locations.
type DistanceResult struct {
	DistanceMeters  int
	DurationSeconds int
}

// Pairwise travel metrics for an ordered coordinate list.
// Row i, column j describes travel from coordinate i to coordinate j.
type TravelMatrix struct {
	DurationsSeconds [][]int
	DistancesMeters  [][]int
}

// Contract for retrieving a pairwise travel matrix under a travel mode.
type DistanceMatrixProvider interface {
	TravelMatrix(ctx context.Context, coords []domain.Coordinates, mode string) (TravelMatrix, error)
}
