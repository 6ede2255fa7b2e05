package geo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/obs"
	"trip-planner-service/internal/ports"
)

// Cache of address -> coordinates lookups.
type GeocodeCache interface {
	GetMany(ctx context.Context, addresses []string) (map[string]domain.Coordinates, error)
	PutMany(ctx context.Context, results map[string]domain.Coordinates) error
}

// Cache of pairwise travel results, keyed "origin|destination" with
// "lat,lng" endpoints, partitioned by travel mode.
type MatrixCache interface {
	GetMany(ctx context.Context, mode string, pairs []string) (map[string]ports.DistanceResult, error)
	PutMany(ctx context.Context, mode string, results map[string]ports.DistanceResult) error
}

// OlaMapsClient implements the Geocoder and DistanceMatrixProvider ports
// against the Ola Maps HTTP API.
//
// It coordinates:
//   - Address normalization
//   - Persistent geocode caching
//   - Persistent pairwise matrix caching
//   - External API calls with retry/backoff
//
// The client is safe for concurrent use.
type OlaMapsClient struct {
	session      *http.Client
	apiKey       string
	baseURL      string
	geocodeCache GeocodeCache
	matrixCache  MatrixCache
}

func NewOlaMapsClient(apiKey, baseURL string, geocodeCache GeocodeCache, matrixCache MatrixCache) (*OlaMapsClient, error) {
	if apiKey == "" {
		return nil, errors.New("ola maps api key is empty")
	}
	if baseURL == "" {
		baseURL = "https://api.olamaps.io"
	}

	return &OlaMapsClient{
		session:      &http.Client{Timeout: 10 * time.Second},
		apiKey:       apiKey,
		baseURL:      strings.TrimRight(baseURL, "/"),
		geocodeCache: geocodeCache,
		matrixCache:  matrixCache,
	}, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func (o *OlaMapsClient) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Geocode resolves a free-text address, best match first.
func (o *OlaMapsClient) Geocode(ctx context.Context, address string) (_ []domain.Coordinates, err error) {
	defer obs.Time(ctx, "olamaps.Geocode")(&err)

	norm := o.normalize(address)
	if norm == "" {
		return nil, errors.New("geocode: address must be non-empty")
	}

	if o.geocodeCache != nil {
		hits, err := o.geocodeCache.GetMany(ctx, []string{norm})
		if err != nil {
			return nil, fmt.Errorf("geocode cache read: %w", err)
		}
		if c, ok := hits[norm]; ok {
			return []domain.Coordinates{c}, nil
		}
	}

	results, err := o.fetchGeocode(ctx, norm)
	if err != nil {
		return nil, fmt.Errorf("geocode %q: %w", norm, err)
	}

	if o.geocodeCache != nil && len(results) > 0 {
		if err := o.geocodeCache.PutMany(ctx, map[string]domain.Coordinates{norm: results[0]}); err != nil {
			log.Printf("geocode cache write failed: %v", err)
		}
	}

	return results, nil
}

// PlaceDetails resolves a place reference to its coordinates.
func (o *OlaMapsClient) PlaceDetails(ctx context.Context, placeID string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "olamaps.PlaceDetails")(&err)

	placeID = strings.TrimSpace(placeID)
	if placeID == "" {
		return domain.Coordinates{}, errors.New("place details: place id must be non-empty")
	}

	coord, err := o.fetchPlaceDetails(ctx, placeID)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("place details %q: %w", placeID, err)
	}
	return coord, nil
}

// TravelMatrix returns pairwise travel metrics for the coordinate list.
// When every off-diagonal pair is cached the API is not called at all;
// any miss triggers a single full-matrix fetch whose pairs are written back.
func (o *OlaMapsClient) TravelMatrix(ctx context.Context, coords []domain.Coordinates, mode string) (_ ports.TravelMatrix, err error) {
	defer obs.Time(ctx, "olamaps.TravelMatrix")(&err)

	n := len(coords)
	if n == 0 {
		return ports.TravelMatrix{}, nil
	}

	keys := make([]string, n)
	for i, c := range coords {
		keys[i] = c.LatLngString()
	}

	if o.matrixCache != nil {
		pairs := make([]string, 0, n*n-n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j {
					pairs = append(pairs, keys[i]+"|"+keys[j])
				}
			}
		}

		hits, err := o.matrixCache.GetMany(ctx, mode, pairs)
		if err != nil {
			return ports.TravelMatrix{}, fmt.Errorf("matrix cache read: %w", err)
		}
		if len(hits) == len(pairs) {
			return assembleMatrix(keys, hits), nil
		}
	}

	fetched, err := o.fetchMatrix(ctx, coords, mode)
	if err != nil {
		return ports.TravelMatrix{}, fmt.Errorf("fetch travel matrix: %w", err)
	}

	if o.matrixCache != nil {
		results := make(map[string]ports.DistanceResult, n*n-n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				results[keys[i]+"|"+keys[j]] = ports.DistanceResult{
					DistanceMeters:  fetched.DistancesMeters[i][j],
					DurationSeconds: fetched.DurationsSeconds[i][j],
				}
			}
		}
		if err := o.matrixCache.PutMany(ctx, mode, results); err != nil {
			log.Printf("matrix cache write failed: %v", err)
		}
	}

	return fetched, nil
}

func assembleMatrix(keys []string, pairs map[string]ports.DistanceResult) ports.TravelMatrix {
	n := len(keys)
	m := ports.TravelMatrix{
		DurationsSeconds: make([][]int, n),
		DistancesMeters:  make([][]int, n),
	}
	for i := 0; i < n; i++ {
		m.DurationsSeconds[i] = make([]int, n)
		m.DistancesMeters[i] = make([]int, n)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			r := pairs[keys[i]+"|"+keys[j]]
			m.DurationsSeconds[i][j] = r.DurationSeconds
			m.DistancesMeters[i][j] = r.DistanceMeters
		}
	}
	return m
}
