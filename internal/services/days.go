package services

import (
	"fmt"
	"time"

	"trip-planner-service/internal/domain"
)

// SplitDays partitions a linear schedule into day-sized plans bounded by the
// daily window.
//
// Each stop costs its inbound travel plus its visit duration. A stop that
// would push the running day past the window closes the day and opens the
// next one; a stop too long for even an empty day is still admitted and the
// resulting day is marked infeasible rather than dropped.
func SplitDays(stops []ScheduledStop, c domain.TripConstraints, dayStart, window int, startDate *time.Time) []domain.DayPlan {
	if len(stops) == 0 {
		return nil
	}

	days := make([]domain.DayPlan, 0, 1)
	var chunk []ScheduledStop
	dayTime := 0

	closeDay := func() {
		day := len(days) + 1
		days = append(days, buildDayPlan(chunk, day, dayTime, c, dayStart, window, startDate))
		chunk = nil
		dayTime = 0
	}

	for _, stop := range stops {
		cost := stop.TravelFromPrevMinutes + stop.Location.VisitDurationMinutes
		if len(chunk) > 0 && dayTime+cost > window {
			closeDay()
		}
		chunk = append(chunk, stop)
		dayTime += cost
	}
	closeDay()

	return days
}

// buildDayPlan retimes one day's stops against the daily start time and
// derives segments, totals, and feasibility.
//
// A day's first stop still pays its inbound travel (the leg carried over
// from the previous day's last stop); day one has none.
func buildDayPlan(chunk []ScheduledStop, day, dayTime int, c domain.TripConstraints, dayStart, window int, startDate *time.Time) domain.DayPlan {
	plan := domain.DayPlan{
		Day:       day,
		Locations: make([]domain.VisitLocation, 0, len(chunk)),
		Segments:  make([]domain.RouteSegment, 0, len(chunk)),
		Feasible:  dayTime <= window,
	}

	if startDate != nil {
		plan.Date = startDate.AddDate(0, 0, day-1).Format("2006-01-02")
	}

	clock := dayStart
	for i, stop := range chunk {
		arrival := clock + stop.TravelFromPrevMinutes
		departure := arrival + stop.Location.VisitDurationMinutes

		if i > 0 {
			plan.Segments = append(plan.Segments, domain.RouteSegment{
				FromName:          chunk[i-1].Location.Name,
				ToName:            stop.Location.Name,
				DistanceKm:        stop.DistanceFromPrevKm,
				TravelTimeMinutes: stop.TravelFromPrevMinutes,
				DepartureTime:     domain.FormatClock(clock),
				ArrivalTime:       domain.FormatClock(arrival),
			})
		}

		plan.Locations = append(plan.Locations, stop.Location)
		plan.TotalTravelMinutes += stop.TravelFromPrevMinutes
		plan.TotalVisitMinutes += stop.Location.VisitDurationMinutes
		plan.TotalDistanceKm += stop.DistanceFromPrevKm

		if i == 0 {
			plan.StartTime = domain.FormatClock(arrival)
		}
		plan.EndTime = domain.FormatClock(departure)
		clock = departure
	}

	if !plan.Feasible {
		overflow := dayTime - window
		plan.Issues = append(plan.Issues,
			fmt.Sprintf("day %d runs %d minutes over the %d-minute daily window", day, overflow, window))
		plan.Suggestions = append(plan.Suggestions,
			fmt.Sprintf("shorten visit durations on day %d or split its stops across more days", day))
	}

	if c.MaxTravelMinutesPerDay > 0 && plan.TotalTravelMinutes > c.MaxTravelMinutesPerDay {
		plan.Issues = append(plan.Issues,
			fmt.Sprintf("day %d travel time %d minutes exceeds the daily travel limit of %d minutes",
				day, plan.TotalTravelMinutes, c.MaxTravelMinutesPerDay))
	}
	if c.MaxDistanceKmPerDay > 0 && plan.TotalDistanceKm > c.MaxDistanceKmPerDay {
		plan.Issues = append(plan.Issues,
			fmt.Sprintf("day %d distance %.1f km exceeds the daily distance limit of %.1f km",
				day, plan.TotalDistanceKm, c.MaxDistanceKmPerDay))
	}

	return plan
}
