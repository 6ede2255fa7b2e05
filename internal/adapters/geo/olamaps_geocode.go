package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"trip-planner-service/internal/domain"
)

type latLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type geocodeResponse struct {
	GeocodingResults []struct {
		Geometry struct {
			Location latLng `json:"location"`
		} `json:"geometry"`
	} `json:"geocodingResults"`
}

type placeDetailsResponse struct {
	Result struct {
		Geometry struct {
			Location latLng `json:"location"`
		} `json:"geometry"`
	} `json:"result"`
}

// fetchGeocode resolves an address via the forward geocoding endpoint.
func (o *OlaMapsClient) fetchGeocode(ctx context.Context, address string) ([]domain.Coordinates, error) {
	endpoint := o.baseURL + "/places/v1/geocode"

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		return o.newRequest(ctx, http.MethodGet, endpoint, map[string]string{"address": address})
	})
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode geocode response: %w", err)
	}

	out := make([]domain.Coordinates, 0, len(decoded.GeocodingResults))
	for _, r := range decoded.GeocodingResults {
		out = append(out, domain.Coordinates{Lat: r.Geometry.Location.Lat, Lng: r.Geometry.Location.Lng})
	}

	return out, nil
}

// fetchPlaceDetails resolves a place reference via the details endpoint.
func (o *OlaMapsClient) fetchPlaceDetails(ctx context.Context, placeID string) (domain.Coordinates, error) {
	endpoint := o.baseURL + "/places/v1/details"

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		return o.newRequest(ctx, http.MethodGet, endpoint, map[string]string{"place_id": placeID})
	})
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	var decoded placeDetailsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinates{}, fmt.Errorf("decode place details response: %w", err)
	}

	loc := decoded.Result.Geometry.Location
	if loc.Lat == 0 && loc.Lng == 0 {
		return domain.Coordinates{}, fmt.Errorf("no geometry for place %q", placeID)
	}

	return domain.Coordinates{Lat: loc.Lat, Lng: loc.Lng}, nil
}
