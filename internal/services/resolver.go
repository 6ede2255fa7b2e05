package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"

	"golang.org/x/sync/errgroup"
)

const defaultResolveConcurrency = 5

// LocationResolver turns location descriptors into coordinates using an
// injected geocoding collaborator.
type LocationResolver struct {
	Geocoder    ports.Geocoder
	Concurrency int
}

func NewLocationResolver(geocoder ports.Geocoder) *LocationResolver {
	return &LocationResolver{Geocoder: geocoder}
}

// Resolve a single location to coordinates.
//
// Resolution order: explicit coordinates, then the first geocoding result
// for the address, then the place-details lookup for the place reference.
func (r *LocationResolver) Resolve(ctx context.Context, loc domain.VisitLocation) (domain.Coordinates, error) {
	if loc.Coordinates != nil {
		return *loc.Coordinates, nil
	}

	var lastErr error

	if addr := strings.TrimSpace(loc.Address); addr != "" {
		results, err := r.Geocoder.Geocode(ctx, addr)
		if err == nil && len(results) > 0 {
			return results[0], nil
		}
		if err != nil {
			lastErr = fmt.Errorf("geocode %q: %w", addr, err)
		} else {
			lastErr = fmt.Errorf("geocode %q: no results", addr)
		}
	}

	if placeID := strings.TrimSpace(loc.PlaceID); placeID != "" {
		coord, err := r.Geocoder.PlaceDetails(ctx, placeID)
		if err == nil {
			return coord, nil
		}
		lastErr = fmt.Errorf("place details %q: %w", placeID, err)
	}

	if lastErr == nil {
		lastErr = errors.New("no address, place reference, or coordinates given")
	}

	return domain.Coordinates{}, &domain.UnresolvableLocationError{Name: loc.Name, Err: lastErr}
}

// ResolveAll resolves every location, returning enriched copies in input
// order. Lookups run concurrently with a bounded worker count; collection
// order never depends on call completion order. The first failure aborts.
func (r *LocationResolver) ResolveAll(ctx context.Context, locs []domain.VisitLocation) ([]domain.VisitLocation, error) {
	resolved := make([]domain.VisitLocation, len(locs))

	limit := r.Concurrency
	if limit <= 0 {
		limit = defaultResolveConcurrency
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, loc := range locs {
		i, loc := i, loc
		g.Go(func() error {
			coord, err := r.Resolve(ctx, loc)
			if err != nil {
				return err
			}
			enriched := loc
			enriched.Coordinates = &coord
			resolved[i] = enriched
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return resolved, nil
}
