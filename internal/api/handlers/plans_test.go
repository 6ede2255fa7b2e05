package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"trip-planner-service/internal/adapters/geo"
	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
	"trip-planner-service/internal/services"

	"github.com/google/uuid"
)

type memPlanRepo struct {
	plans map[uuid.UUID]*ports.StoredTripPlan
}

func newMemPlanRepo() *memPlanRepo {
	return &memPlanRepo{plans: map[uuid.UUID]*ports.StoredTripPlan{}}
}

func (r *memPlanRepo) SavePlan(ctx context.Context, plan *domain.TripPlan) (uuid.UUID, error) {
	id := uuid.New()
	r.plans[id] = &ports.StoredTripPlan{ID: id, Plan: plan, CreatedAt: time.Now()}
	return id, nil
}

func (r *memPlanRepo) GetPlan(ctx context.Context, id uuid.UUID) (*ports.StoredTripPlan, error) {
	stored, ok := r.plans[id]
	if !ok {
		return nil, ports.ErrPlanNotFound
	}
	return stored, nil
}

func testHandler() (*PlanHandler, *memPlanRepo) {
	geocoder := &geo.MockGeocoder{
		Addresses: map[string]domain.Coordinates{
			"12 North Road": {Lat: 12.9716, Lng: 77.5946},
			"34 South Road": {Lat: 12.9141, Lng: 77.6101},
		},
	}
	provider := &geo.MockMatrixProvider{
		Matrix: ports.TravelMatrix{
			DurationsSeconds: [][]int{{0, 600}, {600, 0}},
			DistancesMeters:  [][]int{{0, 5000}, {5000, 0}},
		},
	}
	repo := newMemPlanRepo()
	return &PlanHandler{
		Planner: services.NewPlanner(geocoder, provider),
		Repo:    repo,
	}, repo
}

func planBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(dto.PlanTripRequest{
		Locations: []dto.LocationRequest{
			{Name: "North School", Address: "12 North Road", VisitDurationMinutes: 30},
			{Name: "South School", Address: "34 South Road", VisitDurationMinutes: 45},
		},
		Vehicle: dto.VehicleRequest{Mode: "car"},
		Constraints: dto.ConstraintsRequest{
			StartTime: "09:00",
			EndTime:   "17:00",
		},
	})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	return body
}

func TestPlanHandlerComputesAndStoresPlan(t *testing.T) {
	h, repo := testHandler()

	req := httptest.NewRequest(http.MethodPost, "/plans", bytes.NewReader(planBody(t)))
	rr := httptest.NewRecorder()
	h.Plan(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}

	var res dto.PlanCreatedResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.PlanID == "" {
		t.Fatal("response missing plan id")
	}
	if !res.Plan.FeasibleInSingleDay || res.Plan.RecommendedDays != 1 {
		t.Errorf("plan = feasible %v over %d days, want single feasible day",
			res.Plan.FeasibleInSingleDay, res.Plan.RecommendedDays)
	}
	if len(res.Plan.Days) != 1 || len(res.Plan.Days[0].Locations) != 2 {
		t.Fatalf("days = %+v, want one day with two locations", res.Plan.Days)
	}
	// Omitted priority is reported with its effective default.
	if res.Plan.Days[0].Locations[0].Priority != "medium" {
		t.Errorf("priority = %q, want medium", res.Plan.Days[0].Locations[0].Priority)
	}

	id, err := uuid.Parse(res.PlanID)
	if err != nil {
		t.Fatalf("plan id %q is not a uuid: %v", res.PlanID, err)
	}
	if _, ok := repo.plans[id]; !ok {
		t.Error("plan was not persisted under the returned id")
	}
}

func TestPlanHandlerRejectsBadRequests(t *testing.T) {
	h, _ := testHandler()

	cases := []struct {
		name string
		body string
		want int
	}{
		{"malformed json", `{"locations":`, http.StatusBadRequest},
		{"unknown field", `{"locations":[],"speed":3}`, http.StatusBadRequest},
		{"no locations", `{"locations":[],"vehicle":{"mode":"car"},"constraints":{"start_time":"09:00","end_time":"17:00"}}`, http.StatusBadRequest},
		{
			"inverted window",
			`{"locations":[{"name":"A","address":"12 North Road","visit_duration_minutes":30}],"vehicle":{"mode":"car"},"constraints":{"start_time":"17:00","end_time":"09:00"}}`,
			http.StatusBadRequest,
		},
		{
			"unresolvable location",
			`{"locations":[{"name":"Nowhere","address":"1 Missing Street","visit_duration_minutes":30}],"vehicle":{"mode":"car"},"constraints":{"start_time":"09:00","end_time":"17:00"}}`,
			http.StatusUnprocessableEntity,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/plans", bytes.NewBufferString(tc.body))
			rr := httptest.NewRecorder()
			h.Plan(rr, req)

			if rr.Code != tc.want {
				t.Errorf("status = %d, want %d (body %s)", rr.Code, tc.want, rr.Body.String())
			}
		})
	}
}

func TestPlanHandlerMethodNotAllowed(t *testing.T) {
	h, _ := testHandler()

	req := httptest.NewRequest(http.MethodGet, "/plans", nil)
	rr := httptest.NewRecorder()
	h.Plan(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rr.Code)
	}
	if allow := rr.Header().Get("Allow"); allow != http.MethodPost {
		t.Errorf("Allow = %q, want POST", allow)
	}
}

func TestGetHandlerRoundTrip(t *testing.T) {
	h, repo := testHandler()

	plan := &domain.TripPlan{RecommendedDays: 1, FeasibleInSingleDay: true}
	id, err := repo.SavePlan(context.Background(), plan)
	if err != nil {
		t.Fatalf("seed repo: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/plans/"+id.String(), nil)
	rr := httptest.NewRecorder()
	h.Get(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
	var res dto.StoredPlanResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.PlanID != id.String() {
		t.Errorf("plan id = %q, want %q", res.PlanID, id)
	}
	if !res.Plan.FeasibleInSingleDay {
		t.Error("stored plan lost its feasibility flag")
	}
}

func TestGetHandlerErrors(t *testing.T) {
	h, _ := testHandler()

	req := httptest.NewRequest(http.MethodGet, "/plans/not-a-uuid", nil)
	rr := httptest.NewRecorder()
	h.Get(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("invalid id status = %d, want 400", rr.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/plans/"+uuid.NewString(), nil)
	rr = httptest.NewRecorder()
	h.Get(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Errorf("missing plan status = %d, want 404", rr.Code)
	}
}
