package services

import (
	"context"
	"errors"
	"testing"

	"trip-planner-service/internal/adapters/geo"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

func TestMatrixBuilderUsesProviderMatrix(t *testing.T) {
	provider := &geo.MockMatrixProvider{
		Matrix: ports.TravelMatrix{
			DurationsSeconds: [][]int{{0, 90}, {90, 0}},
			DistancesMeters:  [][]int{{0, 1500}, {1500, 0}},
		},
	}
	b := &MatrixBuilder{Provider: provider}
	coords := []domain.Coordinates{{Lat: 12.9716, Lng: 77.5946}, {Lat: 12.9352, Lng: 77.6245}}

	m := b.Build(context.Background(), coords, domain.Vehicle{Mode: domain.ModeCar})

	if provider.Calls != 1 {
		t.Fatalf("provider calls = %d, want 1", provider.Calls)
	}
	// 90 seconds rounds up to 2 minutes.
	if m.Minutes[0][1] != 2 || m.Minutes[1][0] != 2 {
		t.Errorf("minutes = %v, want 2 each way", m.Minutes)
	}
	if m.Km[0][1] != 1.5 {
		t.Errorf("km = %v, want 1.5", m.Km[0][1])
	}
}

func TestMatrixBuilderFallsBackOnProviderError(t *testing.T) {
	provider := &geo.MockMatrixProvider{Err: errors.New("upstream timeout")}
	b := &MatrixBuilder{Provider: provider}

	// One degree of latitude at the equator is about 111.2 km.
	coords := []domain.Coordinates{{Lat: 0, Lng: 0}, {Lat: 1, Lng: 0}}

	m := b.Build(context.Background(), coords, domain.Vehicle{Mode: domain.ModeCar})

	if provider.Calls != 1 {
		t.Fatalf("provider calls = %d, want 1", provider.Calls)
	}
	if m.Km[0][1] < 111.1 || m.Km[0][1] > 111.3 {
		t.Errorf("km = %v, want about 111.2", m.Km[0][1])
	}
	// 111.2 km at 40 km/h is 166.8 minutes, rounded up.
	if m.Minutes[0][1] != 167 {
		t.Errorf("minutes = %d, want 167", m.Minutes[0][1])
	}
	if m.Minutes[0][0] != 0 || m.Km[1][1] != 0 {
		t.Error("diagonal must stay zero")
	}
}

func TestMatrixBuilderFallsBackOnMalformedShape(t *testing.T) {
	provider := &geo.MockMatrixProvider{
		Matrix: ports.TravelMatrix{
			DurationsSeconds: [][]int{{0}},
			DistancesMeters:  [][]int{{0}},
		},
	}
	b := &MatrixBuilder{Provider: provider}
	coords := []domain.Coordinates{{Lat: 0, Lng: 0}, {Lat: 1, Lng: 0}}

	m := b.Build(context.Background(), coords, domain.Vehicle{Mode: domain.ModeBike})

	// Bike fallback speed is 15 km/h: 111.2 km takes 444.8 minutes.
	if m.Minutes[0][1] != 445 {
		t.Errorf("minutes = %d, want 445", m.Minutes[0][1])
	}
}

func TestMatrixBuilderWithoutProviderEstimates(t *testing.T) {
	b := &MatrixBuilder{}
	coords := []domain.Coordinates{{Lat: 0, Lng: 0}, {Lat: 0, Lng: 1}}

	m := b.Build(context.Background(), coords, domain.Vehicle{Mode: domain.ModeWalking})

	if m.Km[0][1] < 111.1 || m.Km[0][1] > 111.3 {
		t.Errorf("km = %v, want about 111.2", m.Km[0][1])
	}
	// Walking fallback speed is 5 km/h.
	if m.Minutes[0][1] != 1335 {
		t.Errorf("minutes = %d, want 1335", m.Minutes[0][1])
	}
}
