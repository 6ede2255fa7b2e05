package ports

import (
	"context"
	"trip-planner-service/internal/domain"
)

// Contract for resolving textual location descriptors to coordinates.
type Geocoder interface {
	// Return candidate coordinates for a free-text address, best match first.
	Geocode(ctx context.Context, address string) ([]domain.Coordinates, error)
	// Return the coordinates of a known place reference.
	PlaceDetails(ctx context.Context, placeID string) (domain.Coordinates, error)
}
