package services

import "trip-planner-service/internal/domain"

// Per-stop timing in minutes since midnight.
//
// Times are plain integers with no midnight wraparound; a stop past 24:00
// simply carries a value above 1440. Day splitting relies on that overflow
// staying well-ordered.
type ScheduledStop struct {
	Location              domain.VisitLocation
	MatrixIndex           int
	TravelFromPrevMinutes int
	DistanceFromPrevKm    float64
	ArrivalMinute         int
	DepartureMinute       int
}

// BuildSchedule walks the ordered locations accumulating elapsed time.
// The first stop arrives at startMinute with no inbound travel; every later
// stop arrives after the travel time from its predecessor and departs after
// its visit duration.
func BuildSchedule(locs []domain.VisitLocation, order []int, m TravelTimeMatrix, startMinute int) []ScheduledStop {
	stops := make([]ScheduledStop, 0, len(order))

	clock := startMinute
	for k, idx := range order {
		stop := ScheduledStop{
			Location:    locs[idx],
			MatrixIndex: idx,
		}

		if k > 0 {
			prev := order[k-1]
			stop.TravelFromPrevMinutes = m.Minutes[prev][idx]
			stop.DistanceFromPrevKm = m.Km[prev][idx]
			clock += stop.TravelFromPrevMinutes
		}

		stop.ArrivalMinute = clock
		clock += locs[idx].VisitDurationMinutes
		stop.DepartureMinute = clock

		stops = append(stops, stop)
	}

	return stops
}
