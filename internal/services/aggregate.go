package services

import (
	"fmt"
	"math"

	"trip-planner-service/internal/domain"
)

// Average daily travel time beyond which the aggregator suggests
// regrouping stops geographically.
const heavyTravelThresholdMinutes = 180

// AggregatePlan merges day plans into the top-level trip result.
// The advisory notes it generates are descriptive text only; they never
// influence the feasibility booleans.
func AggregatePlan(days []domain.DayPlan) *domain.TripPlan {
	plan := &domain.TripPlan{
		RecommendedDays:    len(days),
		Days:               days,
		UnvisitedLocations: []domain.VisitLocation{},
	}

	totalTravel := 0
	totalVisit := 0
	for _, d := range days {
		plan.TotalDistanceKm += d.TotalDistanceKm
		totalTravel += d.TotalTravelMinutes
		totalVisit += d.TotalVisitMinutes
		plan.AlternativeSuggestions = append(plan.AlternativeSuggestions, d.Suggestions...)
	}

	plan.TotalDistanceKm = math.Round(plan.TotalDistanceKm*100) / 100
	plan.TotalTimeHours = math.Round(float64(totalTravel+totalVisit)/60*100) / 100
	plan.FeasibleInSingleDay = len(days) == 1 && days[0].Feasible

	if len(days) > 1 {
		plan.OptimizationNotes = append(plan.OptimizationNotes,
			fmt.Sprintf("the trip does not fit in a single day; plan for %d days", len(days)))
	}
	if len(days) > 0 && totalTravel/len(days) > heavyTravelThresholdMinutes {
		plan.OptimizationNotes = append(plan.OptimizationNotes,
			fmt.Sprintf("average daily travel time is %d minutes; consider regrouping nearby locations into the same day",
				totalTravel/len(days)))
	}

	return plan
}
