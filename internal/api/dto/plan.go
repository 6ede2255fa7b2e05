package dto

import "time"

type LocationRequest struct {
	Name                 string   `json:"name"`
	Address              string   `json:"address,omitempty"`
	Lat                  *float64 `json:"lat,omitempty"`
	Lng                  *float64 `json:"lng,omitempty"`
	PlaceID              string   `json:"place_id,omitempty"`
	VisitDurationMinutes int      `json:"visit_duration_minutes"`
	PreferredTime        string   `json:"preferred_time,omitempty"`
	Priority             string   `json:"priority,omitempty"`
	Notes                string   `json:"notes,omitempty"`
}

type VehicleRequest struct {
	Mode                 string  `json:"mode"`
	AverageSpeedKmh      float64 `json:"average_speed_kmh,omitempty"`
	FuelEfficiencyKmPerL float64 `json:"fuel_efficiency_km_per_l,omitempty"`
	Capacity             int     `json:"capacity,omitempty"`
}

type ConstraintsRequest struct {
	StartTime              string  `json:"start_time"`
	EndTime                string  `json:"end_time"`
	StartLocation          string  `json:"start_location,omitempty"`
	EndLocation            string  `json:"end_location,omitempty"`
	MaxTravelMinutesPerDay int     `json:"max_travel_minutes_per_day,omitempty"`
	MaxDistanceKmPerDay    float64 `json:"max_distance_km_per_day,omitempty"`
	BreakDurationMinutes   int     `json:"break_duration_minutes,omitempty"`
	BreakAfterHours        float64 `json:"break_after_hours,omitempty"`
}

type PlanTripRequest struct {
	Locations   []LocationRequest  `json:"locations"`
	Vehicle     VehicleRequest     `json:"vehicle"`
	Constraints ConstraintsRequest `json:"constraints"`
	StartDate   string             `json:"start_date,omitempty"`
}

type LocationResponse struct {
	Name                 string  `json:"name"`
	Lat                  float64 `json:"lat"`
	Lng                  float64 `json:"lng"`
	VisitDurationMinutes int     `json:"visit_duration_minutes"`
	Priority             string  `json:"priority"`
	Notes                string  `json:"notes,omitempty"`
}

type SegmentResponse struct {
	From              string  `json:"from"`
	To                string  `json:"to"`
	DistanceKm        float64 `json:"distance_km"`
	TravelTimeMinutes int     `json:"travel_time_minutes"`
	DepartureTime     string  `json:"departure_time"`
	ArrivalTime       string  `json:"arrival_time"`
}

type DayPlanResponse struct {
	Day                int                `json:"day"`
	Date               string             `json:"date,omitempty"`
	Locations          []LocationResponse `json:"locations"`
	Segments           []SegmentResponse  `json:"segments"`
	TotalDistanceKm    float64            `json:"total_distance_km"`
	TotalTravelMinutes int                `json:"total_travel_minutes"`
	TotalVisitMinutes  int                `json:"total_visit_minutes"`
	StartTime          string             `json:"start_time"`
	EndTime            string             `json:"end_time"`
	Feasible           bool               `json:"feasible"`
	Issues             []string           `json:"issues,omitempty"`
	Suggestions        []string           `json:"suggestions,omitempty"`
}

type TripPlanResponse struct {
	FeasibleInSingleDay    bool               `json:"feasible_in_single_day"`
	RecommendedDays        int                `json:"recommended_days"`
	Days                   []DayPlanResponse  `json:"days"`
	TotalDistanceKm        float64            `json:"total_distance_km"`
	TotalTimeHours         float64            `json:"total_time_hours"`
	UnvisitedLocations     []LocationResponse `json:"unvisited_locations"`
	OptimizationNotes      []string           `json:"optimization_notes,omitempty"`
	AlternativeSuggestions []string           `json:"alternative_suggestions,omitempty"`
}

type PlanCreatedResponse struct {
	PlanID string           `json:"plan_id,omitempty"`
	Plan   TripPlanResponse `json:"plan"`
}

type StoredPlanResponse struct {
	PlanID    string           `json:"plan_id"`
	CreatedAt time.Time        `json:"created_at"`
	Plan      TripPlanResponse `json:"plan"`
}
