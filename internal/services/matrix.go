package services

import (
	"context"
	"log"
	"math"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/obs"
	"trip-planner-service/internal/ports"
)

// Pairwise travel metrics in the units the planning core works in:
// whole minutes (rounded up) and kilometers.
type TravelTimeMatrix struct {
	Minutes [][]int
	Km      [][]float64
}

// MatrixBuilder obtains a travel matrix from the distance provider, falling
// back to a great-circle estimate when the provider is missing or fails.
// Build never returns an error: a degraded matrix beats no plan.
type MatrixBuilder struct {
	Provider ports.DistanceMatrixProvider
}

func (b *MatrixBuilder) Build(ctx context.Context, coords []domain.Coordinates, vehicle domain.Vehicle) TravelTimeMatrix {
	if b.Provider != nil {
		m, err := b.Provider.TravelMatrix(ctx, coords, vehicle.ModeCode())
		if err == nil && matrixShapeOK(m, len(coords)) {
			return fromProviderMatrix(m)
		}
		if err != nil {
			log.Printf("distance provider failed, estimating travel times: mode=%s err=%v", vehicle.ModeCode(), err)
		} else {
			log.Printf("distance provider returned a malformed matrix, estimating travel times: mode=%s n=%d", vehicle.ModeCode(), len(coords))
		}
		obs.MatrixFallbacks.Inc()
	}

	return estimateMatrix(coords, vehicle.SpeedKmh())
}

func matrixShapeOK(m ports.TravelMatrix, n int) bool {
	if len(m.DurationsSeconds) != n || len(m.DistancesMeters) != n {
		return false
	}
	for i := 0; i < n; i++ {
		if len(m.DurationsSeconds[i]) != n || len(m.DistancesMeters[i]) != n {
			return false
		}
	}
	return true
}

func fromProviderMatrix(m ports.TravelMatrix) TravelTimeMatrix {
	n := len(m.DurationsSeconds)
	out := TravelTimeMatrix{
		Minutes: make([][]int, n),
		Km:      make([][]float64, n),
	}
	for i := 0; i < n; i++ {
		out.Minutes[i] = make([]int, n)
		out.Km[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			out.Minutes[i][j] = int(math.Ceil(float64(m.DurationsSeconds[i][j]) / 60))
			out.Km[i][j] = float64(m.DistancesMeters[i][j]) / 1000
		}
	}
	return out
}

// estimateMatrix builds the fallback matrix from great-circle distances and
// the vehicle speed, rounding durations up to whole minutes.
func estimateMatrix(coords []domain.Coordinates, speedKmh float64) TravelTimeMatrix {
	n := len(coords)
	out := TravelTimeMatrix{
		Minutes: make([][]int, n),
		Km:      make([][]float64, n),
	}
	for i := 0; i < n; i++ {
		out.Minutes[i] = make([]int, n)
		out.Km[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			km := haversineKm(coords[i], coords[j])
			out.Km[i][j] = km
			out.Minutes[i][j] = int(math.Ceil(km / speedKmh * 60))
		}
	}
	return out
}

// haversineKm computes the great-circle distance between two points.
func haversineKm(a, b domain.Coordinates) float64 {
	const earthRadiusKm = 6371.0

	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Lat*math.Pi/180)*math.Cos(b.Lat*math.Pi/180)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}
