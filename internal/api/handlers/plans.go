package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/obs"
	"trip-planner-service/internal/ports"
	"trip-planner-service/internal/services"

	"github.com/google/uuid"
)

const maxLocationsPerPlan = 50

type PlanHandler struct {
	Planner *services.Planner
	Repo    ports.TripPlanRepository
}

// Plan computes a trip plan for the posted locations, persists it, and
// returns the result with its storage id.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanTripRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if len(req.Locations) == 0 {
		writeError(w, r, http.StatusBadRequest, "at least one location is required")
		return
	}
	if len(req.Locations) > maxLocationsPerPlan {
		writeError(w, r, http.StatusBadRequest, "too many locations")
		return
	}

	plan, err := h.Planner.PlanTrip(r.Context(), toPlanRequest(req))
	if err != nil {
		obs.PlansComputed.WithLabelValues("error").Inc()

		var unresolvable *domain.UnresolvableLocationError
		if errors.As(err, &unresolvable) {
			writeError(w, r, http.StatusUnprocessableEntity, unresolvable.Error())
			return
		}
		var invalid *domain.InvalidConstraintsError
		if errors.As(err, &invalid) {
			writeError(w, r, http.StatusBadRequest, invalid.Error())
			return
		}

		log.Printf("plan trip failed: %v", err)
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	obs.PlansComputed.WithLabelValues("ok").Inc()

	res := dto.PlanCreatedResponse{Plan: toPlanResponse(plan)}

	if h.Repo != nil {
		id, err := h.Repo.SavePlan(r.Context(), plan)
		if err != nil {
			// The plan is still valid output; storage failure only costs the id.
			log.Printf("save trip plan failed: %v", err)
		} else {
			res.PlanID = id.String()
		}
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Get fetches a stored trip plan by id (path /plans/{id}).
func (h *PlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/plans/")
	id, err := uuid.Parse(idStr)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid plan id")
		return
	}

	if h.Repo == nil {
		writeError(w, r, http.StatusNotFound, "plan storage is not configured")
		return
	}

	stored, err := h.Repo.GetPlan(r.Context(), id)
	if errors.Is(err, ports.ErrPlanNotFound) {
		writeError(w, r, http.StatusNotFound, "plan not found")
		return
	}
	if err != nil {
		log.Printf("get trip plan failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.StoredPlanResponse{
		PlanID:    stored.ID.String(),
		CreatedAt: stored.CreatedAt,
		Plan:      toPlanResponse(stored.Plan),
	})
}

func toPlanRequest(req dto.PlanTripRequest) services.PlanRequest {
	locs := make([]domain.VisitLocation, 0, len(req.Locations))
	for _, l := range req.Locations {
		loc := domain.VisitLocation{
			Name:                 l.Name,
			Address:              l.Address,
			PlaceID:              l.PlaceID,
			VisitDurationMinutes: l.VisitDurationMinutes,
			PreferredTime:        l.PreferredTime,
			Priority:             domain.Priority(l.Priority),
			Notes:                l.Notes,
		}
		if l.Lat != nil && l.Lng != nil {
			loc.Coordinates = &domain.Coordinates{Lat: *l.Lat, Lng: *l.Lng}
		}
		locs = append(locs, loc)
	}

	return services.PlanRequest{
		Locations: locs,
		Vehicle: domain.Vehicle{
			Mode:                 domain.TravelMode(req.Vehicle.Mode),
			AverageSpeedKmh:      req.Vehicle.AverageSpeedKmh,
			FuelEfficiencyKmPerL: req.Vehicle.FuelEfficiencyKmPerL,
			Capacity:             req.Vehicle.Capacity,
		},
		Constraints: domain.TripConstraints{
			StartTime:              req.Constraints.StartTime,
			EndTime:                req.Constraints.EndTime,
			StartLocation:          req.Constraints.StartLocation,
			EndLocation:            req.Constraints.EndLocation,
			MaxTravelMinutesPerDay: req.Constraints.MaxTravelMinutesPerDay,
			MaxDistanceKmPerDay:    req.Constraints.MaxDistanceKmPerDay,
			BreakDurationMinutes:   req.Constraints.BreakDurationMinutes,
			BreakAfterHours:        req.Constraints.BreakAfterHours,
		},
		StartDate: req.StartDate,
	}
}

func toLocationResponses(locs []domain.VisitLocation) []dto.LocationResponse {
	out := make([]dto.LocationResponse, 0, len(locs))
	for _, l := range locs {
		lr := dto.LocationResponse{
			Name:                 l.Name,
			VisitDurationMinutes: l.VisitDurationMinutes,
			Priority:             string(l.Priority),
			Notes:                l.Notes,
		}
		if lr.Priority == "" {
			lr.Priority = string(domain.PriorityMedium)
		}
		if l.Coordinates != nil {
			lr.Lat = l.Coordinates.Lat
			lr.Lng = l.Coordinates.Lng
		}
		out = append(out, lr)
	}
	return out
}

func toPlanResponse(plan *domain.TripPlan) dto.TripPlanResponse {
	days := make([]dto.DayPlanResponse, 0, len(plan.Days))
	for _, d := range plan.Days {
		segments := make([]dto.SegmentResponse, 0, len(d.Segments))
		for _, s := range d.Segments {
			segments = append(segments, dto.SegmentResponse{
				From:              s.FromName,
				To:                s.ToName,
				DistanceKm:        s.DistanceKm,
				TravelTimeMinutes: s.TravelTimeMinutes,
				DepartureTime:     s.DepartureTime,
				ArrivalTime:       s.ArrivalTime,
			})
		}

		days = append(days, dto.DayPlanResponse{
			Day:                d.Day,
			Date:               d.Date,
			Locations:          toLocationResponses(d.Locations),
			Segments:           segments,
			TotalDistanceKm:    d.TotalDistanceKm,
			TotalTravelMinutes: d.TotalTravelMinutes,
			TotalVisitMinutes:  d.TotalVisitMinutes,
			StartTime:          d.StartTime,
			EndTime:            d.EndTime,
			Feasible:           d.Feasible,
			Issues:             d.Issues,
			Suggestions:        d.Suggestions,
		})
	}

	return dto.TripPlanResponse{
		FeasibleInSingleDay:    plan.FeasibleInSingleDay,
		RecommendedDays:        plan.RecommendedDays,
		Days:                   days,
		TotalDistanceKm:        plan.TotalDistanceKm,
		TotalTimeHours:         plan.TotalTimeHours,
		UnvisitedLocations:     toLocationResponses(plan.UnvisitedLocations),
		OptimizationNotes:      plan.OptimizationNotes,
		AlternativeSuggestions: plan.AlternativeSuggestions,
	}
}
