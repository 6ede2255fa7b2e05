package services

import (
	"strings"
	"testing"
	"time"

	"trip-planner-service/internal/domain"
)

func threeStopSchedule() []ScheduledStop {
	locs := []domain.VisitLocation{
		{Name: "North School", VisitDurationMinutes: 30},
		{Name: "Central School", VisitDurationMinutes: 30},
		{Name: "South School", VisitDurationMinutes: 30},
	}
	m := TravelTimeMatrix{
		Minutes: [][]int{
			{0, 10, 20},
			{10, 0, 12},
			{20, 12, 0},
		},
		Km: [][]float64{
			{0, 5, 10},
			{5, 0, 6},
			{10, 6, 0},
		},
	}
	return BuildSchedule(locs, []int{0, 1, 2}, m, 540)
}

func TestSplitDaysSingleFeasibleDay(t *testing.T) {
	c := domain.TripConstraints{StartTime: "09:00", EndTime: "17:00"}
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	days := SplitDays(threeStopSchedule(), c, 540, 480, &start)

	if len(days) != 1 {
		t.Fatalf("got %d days, want 1", len(days))
	}
	day := days[0]
	if !day.Feasible {
		t.Errorf("day marked infeasible: %v", day.Issues)
	}
	if day.Date != "2026-09-01" {
		t.Errorf("date = %q, want 2026-09-01", day.Date)
	}
	if day.TotalVisitMinutes != 90 {
		t.Errorf("visit minutes = %d, want 90", day.TotalVisitMinutes)
	}
	if day.TotalTravelMinutes != 22 {
		t.Errorf("travel minutes = %d, want 22", day.TotalTravelMinutes)
	}
	if len(day.Segments) != 2 {
		t.Errorf("got %d segments, want 2", len(day.Segments))
	}
	if day.StartTime != "09:00" || day.EndTime != "10:52" {
		t.Errorf("window = %s - %s, want 09:00 - 10:52", day.StartTime, day.EndTime)
	}
}

func TestSplitDaysNarrowWindowSplits(t *testing.T) {
	c := domain.TripConstraints{StartTime: "09:00", EndTime: "10:30"}
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	// Window is 90 minutes: stops cost 30, 40, 42, so the third overflows.
	days := SplitDays(threeStopSchedule(), c, 540, 90, &start)

	if len(days) != 2 {
		t.Fatalf("got %d days, want 2", len(days))
	}
	if !days[0].Feasible || !days[1].Feasible {
		t.Errorf("both days should be feasible: %v %v", days[0].Issues, days[1].Issues)
	}
	if len(days[0].Locations) != 2 || len(days[1].Locations) != 1 {
		t.Fatalf("day sizes = %d, %d, want 2, 1", len(days[0].Locations), len(days[1].Locations))
	}
	if days[1].Date != "2026-09-02" {
		t.Errorf("day 2 date = %q, want 2026-09-02", days[1].Date)
	}

	// Day 2 restarts at the daily start time and still pays the inbound leg.
	if days[1].StartTime != "09:12" || days[1].EndTime != "09:42" {
		t.Errorf("day 2 window = %s - %s, want 09:12 - 09:42", days[1].StartTime, days[1].EndTime)
	}
}

func TestSplitDaysPartitionsEveryStop(t *testing.T) {
	c := domain.TripConstraints{StartTime: "09:00", EndTime: "10:30"}
	stops := threeStopSchedule()

	days := SplitDays(stops, c, 540, 90, nil)

	var names []string
	for _, day := range days {
		for _, loc := range day.Locations {
			names = append(names, loc.Name)
		}
	}
	if len(names) != len(stops) {
		t.Fatalf("got %d scheduled locations across days, want %d", len(names), len(stops))
	}
	for i, stop := range stops {
		if names[i] != stop.Location.Name {
			t.Errorf("position %d = %q, want %q", i, names[i], stop.Location.Name)
		}
	}
}

func TestSplitDaysOversizedStopAdmittedInfeasible(t *testing.T) {
	locs := []domain.VisitLocation{
		{Name: "Museum Marathon", VisitDurationMinutes: 600},
	}
	m := TravelTimeMatrix{Minutes: [][]int{{0}}, Km: [][]float64{{0}}}
	stops := BuildSchedule(locs, []int{0}, m, 540)
	c := domain.TripConstraints{StartTime: "09:00", EndTime: "17:00"}

	days := SplitDays(stops, c, 540, 480, nil)

	if len(days) != 1 {
		t.Fatalf("got %d days, want 1", len(days))
	}
	day := days[0]
	if day.Feasible {
		t.Fatal("oversized day should be infeasible")
	}
	if len(day.Locations) != 1 {
		t.Fatalf("oversized stop must still be scheduled, got %d locations", len(day.Locations))
	}
	if len(day.Issues) == 0 || !strings.Contains(day.Issues[0], "120 minutes over") {
		t.Errorf("issues = %v, want overflow of 120 minutes reported", day.Issues)
	}
	if len(day.Suggestions) == 0 {
		t.Error("infeasible day should carry a suggestion")
	}
}

func TestSplitDaysAdvisoryLimits(t *testing.T) {
	c := domain.TripConstraints{
		StartTime:              "09:00",
		EndTime:                "17:00",
		MaxTravelMinutesPerDay: 15,
		MaxDistanceKmPerDay:    8,
	}

	days := SplitDays(threeStopSchedule(), c, 540, 480, nil)

	if len(days) != 1 {
		t.Fatalf("got %d days, want 1", len(days))
	}
	day := days[0]
	// Limits are advisory: the day stays feasible but reports both breaches.
	if !day.Feasible {
		t.Error("advisory limits must not flip feasibility")
	}
	if len(day.Issues) != 2 {
		t.Fatalf("issues = %v, want travel and distance breaches", day.Issues)
	}
	if !strings.Contains(day.Issues[0], "travel time") || !strings.Contains(day.Issues[1], "distance") {
		t.Errorf("issues = %v, want travel then distance", day.Issues)
	}
}
