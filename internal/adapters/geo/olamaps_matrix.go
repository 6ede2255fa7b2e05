package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

type matrixResponse struct {
	Rows []struct {
		Elements []struct {
			Status   string `json:"status"`
			Duration int    `json:"duration"`
			Distance int    `json:"distance"`
		} `json:"elements"`
	} `json:"rows"`
}

// fetchMatrix retrieves the full N×N duration/distance matrix from the
// distance matrix endpoint.
func (o *OlaMapsClient) fetchMatrix(ctx context.Context, coords []domain.Coordinates, mode string) (ports.TravelMatrix, error) {
	n := len(coords)
	points := make([]string, n)
	for i, c := range coords {
		points[i] = c.LatLngString()
	}
	joined := strings.Join(points, "|")

	endpoint := o.baseURL + "/routing/v1/distanceMatrix"

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		return o.newRequest(ctx, http.MethodGet, endpoint, map[string]string{
			"origins":      joined,
			"destinations": joined,
			"mode":         mode,
		})
	})
	if err != nil {
		return ports.TravelMatrix{}, fmt.Errorf("matrix request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.TravelMatrix{}, fmt.Errorf("decode matrix response: %w", err)
	}

	if len(decoded.Rows) != n {
		return ports.TravelMatrix{}, fmt.Errorf("expected %d matrix rows, got %d", n, len(decoded.Rows))
	}

	out := ports.TravelMatrix{
		DurationsSeconds: make([][]int, n),
		DistancesMeters:  make([][]int, n),
	}
	for i, row := range decoded.Rows {
		if len(row.Elements) != n {
			return ports.TravelMatrix{}, fmt.Errorf("matrix row %d has %d elements, want %d", i, len(row.Elements), n)
		}
		out.DurationsSeconds[i] = make([]int, n)
		out.DistancesMeters[i] = make([]int, n)
		for j, el := range row.Elements {
			if el.Status != "" && el.Status != "OK" {
				return ports.TravelMatrix{}, fmt.Errorf("matrix element (%d,%d) status %q", i, j, el.Status)
			}
			out.DurationsSeconds[i][j] = el.Duration
			out.DistancesMeters[i][j] = el.Distance
		}
	}

	return out, nil
}
