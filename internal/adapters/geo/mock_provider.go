package geo

import (
	"context"
	"fmt"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

// In-memory Geocoder for tests: fixed address and place lookups.
type MockGeocoder struct {
	Addresses map[string]domain.Coordinates
	Places    map[string]domain.Coordinates
}

func (m *MockGeocoder) Geocode(ctx context.Context, address string) ([]domain.Coordinates, error) {
	c, ok := m.Addresses[address]
	if !ok {
		return []domain.Coordinates{}, nil
	}
	return []domain.Coordinates{c}, nil
}

func (m *MockGeocoder) PlaceDetails(ctx context.Context, placeID string) (domain.Coordinates, error) {
	c, ok := m.Places[placeID]
	if !ok {
		return domain.Coordinates{}, fmt.Errorf("unknown place %q", placeID)
	}
	return c, nil
}

// In-memory DistanceMatrixProvider for tests: returns a fixed matrix or a
// fixed error, counting calls.
type MockMatrixProvider struct {
	Matrix ports.TravelMatrix
	Err    error
	Calls  int
}

func (m *MockMatrixProvider) TravelMatrix(ctx context.Context, coords []domain.Coordinates, mode string) (ports.TravelMatrix, error) {
	m.Calls++
	if m.Err != nil {
		return ports.TravelMatrix{}, m.Err
	}
	return m.Matrix, nil
}
