package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

// Input to a single planning run.
type PlanRequest struct {
	Locations   []domain.VisitLocation
	Vehicle     domain.Vehicle
	Constraints domain.TripConstraints
	// Optional calendar date ("2006-01-02") for day one of the itinerary.
	StartDate string
}

// Planner runs the trip-planning pipeline: resolve locations, build the
// travel matrix, order the stops, schedule them, split into days, and
// aggregate the result.
//
// Collaborators are injected at construction; a Planner holds no mutable
// state and is safe for concurrent use.
type Planner struct {
	Resolver  *LocationResolver
	Matrix    *MatrixBuilder
	Optimizer RouteOptimizer
}

func NewPlanner(geocoder ports.Geocoder, provider ports.DistanceMatrixProvider) *Planner {
	return &Planner{
		Resolver:  NewLocationResolver(geocoder),
		Matrix:    &MatrixBuilder{Provider: provider},
		Optimizer: GreedyPriorityOptimizer{},
	}
}

// PlanTrip produces a day-by-day itinerary for the requested locations.
//
// A single unresolvable location is fatal. Distance provider failures are
// not: the matrix builder degrades to a great-circle estimate. Schedule
// overflow is reported inside the plan, never as an error.
func (p *Planner) PlanTrip(ctx context.Context, req PlanRequest) (*domain.TripPlan, error) {
	if len(req.Locations) == 0 {
		return nil, errors.New("plan trip: at least one location is required")
	}
	for _, loc := range req.Locations {
		if err := loc.Validate(); err != nil {
			return nil, fmt.Errorf("plan trip: %w", err)
		}
	}

	dayStart, dayEnd, err := req.Constraints.Window()
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}
	window := dayEnd - dayStart

	var startDate *time.Time
	if req.StartDate != "" {
		d, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return nil, fmt.Errorf("plan trip: parse start date %q: %w", req.StartDate, err)
		}
		startDate = &d
	}

	resolved, err := p.Resolver.ResolveAll(ctx, req.Locations)
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	coords := make([]domain.Coordinates, len(resolved))
	for i, loc := range resolved {
		coords[i] = *loc.Coordinates
	}

	matrix := p.Matrix.Build(ctx, coords, req.Vehicle)
	order := p.Optimizer.Order(resolved, matrix.Minutes)
	schedule := BuildSchedule(resolved, order, matrix, dayStart)
	days := SplitDays(schedule, req.Constraints, dayStart, window, startDate)

	return AggregatePlan(days), nil
}
