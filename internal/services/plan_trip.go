package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

// PlanTripRequest is the resolved input for one planning run. Budget bounds
// are validated but do not constrain the computation.
type PlanTripRequest struct {
	Origin            string
	Destination       string
	Transport         domain.TransportType
	Passengers        int
	OvernightRequired bool
	BudgetMin         float64
	BudgetMax         float64
	CarSpec           *domain.CarSpec
	MotorcycleSpec    *domain.MotorcycleSpec
}

// ProviderError marks a failure in an external collaborator (geocoding,
// routing). Domain errors wrapped inside remain visible to errors.As.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider: %s: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// TripPlanner orchestrates one planning request: geocode, route retrieval,
// fuel and stop planning, cost and health estimation, weather enrichment.
// It holds no per-request state and is safe for concurrent use.
type TripPlanner struct {
	Geocoder ports.Geocoder
	Routes   ports.RouteProvider
	Weather  ports.WeatherProvider // optional
	Pricing  PricingConfig
	Health   HealthConfig
}

func NewTripPlanner(geocoder ports.Geocoder, routes ports.RouteProvider, weather ports.WeatherProvider) *TripPlanner {
	return &TripPlanner{
		Geocoder: geocoder,
		Routes:   routes,
		Weather:  weather,
		Pricing:  DefaultPricingConfig(),
		Health:   DefaultHealthConfig(),
	}
}

func (p *TripPlanner) PlanTrip(ctx context.Context, req PlanTripRequest) (*domain.TripPlan, error) {
	if err := validatePlanRequest(req); err != nil {
		return nil, err
	}

	profile, err := domain.ResolveVehicleProfile(req.Transport, req.CarSpec, req.MotorcycleSpec)
	if err != nil {
		return nil, fmt.Errorf("plan trip: resolve vehicle profile: %w", err)
	}

	origin, err := p.Geocoder.Geocode(ctx, req.Origin)
	if err != nil {
		return nil, &ProviderError{Op: fmt.Sprintf("geocode origin %q", req.Origin), Err: err}
	}

	destination, err := p.Geocoder.Geocode(ctx, req.Destination)
	if err != nil {
		return nil, &ProviderError{Op: fmt.Sprintf("geocode destination %q", req.Destination), Err: err}
	}

	route, err := p.Routes.GetRoute(ctx, origin, destination, req.Transport)
	if err != nil {
		return nil, &ProviderError{Op: "get route", Err: err}
	}
	if err := route.Validate(); err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	refuelStops, err := PlanRefuelingStops(route, profile)
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	restStops := PlanRestStops(route, req.Transport, req.OvernightRequired)
	stops := MergeStops(refuelStops, restStops)

	costs := EstimateTripCosts(route, stops, profile, req.Passengers, p.Pricing)
	health := EstimateHealth(route, req.Transport, p.Health)

	plan := &domain.TripPlan{
		ID:          uuid.NewString(),
		CreatedAt:   time.Now().UTC(),
		Origin:      origin,
		Destination: destination,
		Transport:   req.Transport,
		Passengers:  req.Passengers,
		Route:       route,
		Stops:       stops,
		Costs:       costs,
		Health:      health,
		Weather:     p.fetchWeather(ctx, origin, destination),
	}

	return plan, nil
}

// fetchWeather gathers origin and destination conditions concurrently.
// Weather is optional enrichment: any failure degrades to a nil summary.
func (p *TripPlanner) fetchWeather(ctx context.Context, origin, destination domain.Location) *domain.WeatherSummary {
	if p.Weather == nil {
		return nil
	}

	var (
		wg      sync.WaitGroup
		reports [2]domain.WeatherReport
		errs    [2]error
		pts     = [2]domain.Location{origin, destination}
	)

	for i := range pts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			reports[i], errs[i] = p.Weather.Current(ctx, pts[i].Latitude, pts[i].Longitude)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			log.Printf("weather enrichment skipped: %v", err)
			return nil
		}
	}

	return &domain.WeatherSummary{
		Origin:          reports[0],
		Destination:     reports[1],
		Recommendations: weatherRecommendations(reports[0], reports[1]),
	}
}

func weatherRecommendations(origin, destination domain.WeatherReport) []string {
	recs := []string{}
	minTemp := origin.TemperatureC
	if destination.TemperatureC < minTemp {
		minTemp = destination.TemperatureC
	}

	if minTemp < 5 {
		recs = append(recs, "Pack warm clothing; temperatures below 5°C along the route.")
	}
	if origin.WindSpeedKmh > 40 || destination.WindSpeedKmh > 40 {
		recs = append(recs, "Strong winds expected; allow extra travel time.")
	}

	return recs
}

func validatePlanRequest(req PlanTripRequest) error {
	if strings.TrimSpace(req.Origin) == "" {
		return &domain.ValidationError{Field: "origin", Message: "must not be empty"}
	}
	if strings.TrimSpace(req.Destination) == "" {
		return &domain.ValidationError{Field: "destination", Message: "must not be empty"}
	}
	if req.Passengers < 1 {
		return &domain.ValidationError{Field: "passengers", Message: "must be at least 1"}
	}
	if req.Passengers > 10 {
		return &domain.ValidationError{Field: "passengers", Message: "must be at most 10"}
	}
	if _, err := domain.ParseTransportType(string(req.Transport)); err != nil {
		return err
	}
	if req.Transport == domain.TransportMotorcycle && req.Passengers > 2 {
		return &domain.ValidationError{Field: "passengers", Message: "motorcycle can carry at most 2 passengers"}
	}
	if req.BudgetMin < 0 || req.BudgetMax < 0 {
		return &domain.ValidationError{Field: "budget", Message: "amounts must not be negative"}
	}
	if req.BudgetMax > 0 && req.BudgetMax < req.BudgetMin {
		return &domain.ValidationError{Field: "budget", Message: "max_amount must be greater than min_amount"}
	}
	return nil
}
