package domain

// Represents travel between two consecutive stops in a day plan.
// A RouteSegment is derived planning data and immutable once computed.
type RouteSegment struct {
	FromName          string
	ToName            string
	DistanceKm        float64
	TravelTimeMinutes int
	DepartureTime     string
	ArrivalTime       string
}

// One day's worth of the itinerary.
//
// A DayPlan with Feasible=false still carries a complete schedule; the
// violation is described in Issues rather than failing construction.
type DayPlan struct {
	Day                int
	Date               string
	Locations          []VisitLocation
	Segments           []RouteSegment
	TotalDistanceKm    float64
	TotalTravelMinutes int
	TotalVisitMinutes  int
	StartTime          string
	EndTime            string
	Feasible           bool
	Issues             []string
	Suggestions        []string
}

// The planner's top-level result.
type TripPlan struct {
	FeasibleInSingleDay    bool
	RecommendedDays        int
	Days                   []DayPlan
	TotalDistanceKm        float64
	TotalTimeHours         float64
	UnvisitedLocations     []VisitLocation
	OptimizationNotes      []string
	AlternativeSuggestions []string
}
