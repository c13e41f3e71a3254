package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"trip-planner-service/internal/adapters/routing"
	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
	"trip-planner-service/internal/services"
)

type memPlanRepo struct {
	plans map[string]*domain.TripPlan
}

func (m *memPlanRepo) Save(ctx context.Context, plan *domain.TripPlan) error {
	m.plans[plan.ID] = plan
	return nil
}

func (m *memPlanRepo) Get(ctx context.Context, id string) (*domain.TripPlan, error) {
	plan, ok := m.plans[id]
	if !ok {
		return nil, ports.ErrPlanNotFound
	}
	return plan, nil
}

func newTestRouter() (http.Handler, *memPlanRepo) {
	mock := routing.NewMockProvider(map[string]domain.Location{
		"Berlin": {Latitude: 52.5200, Longitude: 13.4050, Address: "Berlin, Germany"},
		"Munich": {Latitude: 48.1374, Longitude: 11.5755, Address: "Munich, Germany"},
	})
	repo := &memPlanRepo{plans: map[string]*domain.TripPlan{}}
	planner := services.NewTripPlanner(mock, mock, nil)
	return NewRouter(planner, repo), repo
}

func postRoute(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/travel/route", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestPlanRouteEndToEnd(t *testing.T) {
	router, repo := newTestRouter()

	rec := postRoute(t, router, `{
		"origin": "Berlin",
		"destination": "Munich",
		"transportation_type": "car",
		"passengers": 2,
		"budget": {"min_amount": 0, "max_amount": 500, "currency": "USD"}
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var res dto.TravelResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	require.NotEmpty(t, res.PlanID)
	require.NotEmpty(t, res.Route.Segments)
	require.Greater(t, res.Route.TotalDistance, 400_000.0)
	require.Len(t, res.Route.PathPoints, len(res.Route.Segments)+1)
	require.Equal(t, "USD", res.Costs.Currency)
	require.Greater(t, res.Costs.TotalCost, 0.0)
	require.Greater(t, res.Costs.FuelConsumption, 0.0)
	require.True(t, strings.HasPrefix(res.ShareURL, "https://www.google.com/maps/dir/?api=1&origin="))
	require.Contains(t, res.ShareURL, "&travelmode=driving")
	require.Nil(t, res.Weather)

	refuels := 0
	for _, s := range res.Stops {
		if s.Type == "refueling" {
			refuels++
			require.NotNil(t, s.FuelLevelBefore)
			require.NotNil(t, s.FuelNeeded)
		}
	}
	require.Equal(t, res.Costs.RefuelingStops, refuels)

	// The plan must have been persisted under the returned id.
	_, ok := repo.plans[res.PlanID]
	require.True(t, ok)
}

func TestPlanRouteRejectsUnknownFields(t *testing.T) {
	router, _ := newTestRouter()

	rec := postRoute(t, router, `{"origin": "Berlin", "destination": "Munich", "transportation_type": "car", "frobnicate": true}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "invalid json body", body["detail"])
}

func TestPlanRouteValidationError(t *testing.T) {
	router, _ := newTestRouter()

	rec := postRoute(t, router, `{"origin": "Berlin", "destination": "Munich", "transportation_type": "teleport"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Contains(t, body["detail"], "transportation_type")
}

func TestPlanRouteInsufficientRange(t *testing.T) {
	router, _ := newTestRouter()

	// A 5 L tank cannot cover any ~125 km leg of the mock route.
	rec := postRoute(t, router, `{
		"origin": "Berlin",
		"destination": "Munich",
		"transportation_type": "car",
		"car_specifications": {"tank_capacity": 5.0, "initial_fuel": 5.0}
	}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body["detail"])
}

func TestPlanRouteGeocodeFailureIsBadGateway(t *testing.T) {
	router, _ := newTestRouter()

	rec := postRoute(t, router, `{"origin": "Atlantis", "destination": "Munich", "transportation_type": "car"}`)
	require.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestPlanRouteMethodNotAllowed(t *testing.T) {
	router, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/travel/route", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
}

func TestGetPlanAndShare(t *testing.T) {
	router, _ := newTestRouter()

	rec := postRoute(t, router, `{"origin": "Berlin", "destination": "Munich", "transportation_type": "bicycle"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var created dto.TravelResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/travel/plans/"+created.PlanID, nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched dto.TravelResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	require.Equal(t, created.PlanID, fetched.PlanID)
	require.Equal(t, created.ShareURL, fetched.ShareURL)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/travel/plans/"+created.PlanID+"/share", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var share dto.ShareResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &share))
	require.Equal(t, created.ShareURL, share.ShareURL)
	require.Contains(t, share.ShareURL, "&travelmode=bicycling")
}

func TestGetPlanNotFound(t *testing.T) {
	router, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/travel/plans/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "plan not found", body["detail"])
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}
