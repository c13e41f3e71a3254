package services

import (
	"context"
	"errors"
	"testing"

	"trip-planner-service/internal/adapters/routing"
	"trip-planner-service/internal/domain"
)

type stubWeather struct {
	report domain.WeatherReport
	err    error
}

func (s *stubWeather) Current(ctx context.Context, lat, lon float64) (domain.WeatherReport, error) {
	return s.report, s.err
}

func plannerFixture(weather *stubWeather) *TripPlanner {
	mock := routing.NewMockProvider(map[string]domain.Location{
		"Berlin": {Latitude: 52.5200, Longitude: 13.4050, Address: "Berlin, Germany"},
		"Munich": {Latitude: 48.1374, Longitude: 11.5755, Address: "Munich, Germany"},
	})
	if weather == nil {
		return NewTripPlanner(mock, mock, nil)
	}
	return NewTripPlanner(mock, mock, weather)
}

func TestPlanTripAssemblesPlan(t *testing.T) {
	p := plannerFixture(&stubWeather{report: domain.WeatherReport{TemperatureC: 18, WindSpeedKmh: 10}})

	plan, err := p.PlanTrip(context.Background(), PlanTripRequest{
		Origin:      "Berlin",
		Destination: "Munich",
		Transport:   domain.TransportCar,
		Passengers:  2,
	})
	if err != nil {
		t.Fatalf("PlanTrip: %v", err)
	}

	if plan.ID == "" {
		t.Fatal("expected a generated plan id")
	}
	if plan.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}
	if plan.Origin.Address != "Berlin, Germany" || plan.Destination.Address != "Munich, Germany" {
		t.Fatalf("unexpected endpoints: %q -> %q", plan.Origin.Address, plan.Destination.Address)
	}
	if plan.Route == nil || len(plan.Route.Segments) == 0 {
		t.Fatal("expected a routed plan")
	}
	if plan.Costs.TotalCost <= 0 {
		t.Fatalf("expected positive total cost; got %v", plan.Costs.TotalCost)
	}
	if plan.Costs.Currency != "USD" {
		t.Fatalf("expected USD; got %q", plan.Costs.Currency)
	}
	if plan.Weather == nil {
		t.Fatal("expected weather summary when provider succeeds")
	}

	// Berlin-Munich by car exceeds the default initial fuel; at least one
	// refueling stop must appear.
	refuels := 0
	for _, s := range plan.Stops {
		if s.Type == domain.StopRefueling {
			refuels++
		}
	}
	if refuels == 0 {
		t.Fatal("expected at least one refueling stop")
	}
	if refuels != plan.Costs.RefuelingStops {
		t.Fatalf("stop list has %d refuels; costs report %d", refuels, plan.Costs.RefuelingStops)
	}
}

func TestPlanTripWeatherFailureDegrades(t *testing.T) {
	p := plannerFixture(&stubWeather{err: errors.New("upstream down")})

	plan, err := p.PlanTrip(context.Background(), PlanTripRequest{
		Origin:      "Berlin",
		Destination: "Munich",
		Transport:   domain.TransportTrain,
		Passengers:  1,
	})
	if err != nil {
		t.Fatalf("PlanTrip: %v", err)
	}
	if plan.Weather != nil {
		t.Fatal("expected nil weather summary when provider fails")
	}
}

func TestPlanTripNoWeatherProvider(t *testing.T) {
	p := plannerFixture(nil)

	plan, err := p.PlanTrip(context.Background(), PlanTripRequest{
		Origin:      "Berlin",
		Destination: "Munich",
		Transport:   domain.TransportBus,
		Passengers:  1,
	})
	if err != nil {
		t.Fatalf("PlanTrip: %v", err)
	}
	if plan.Weather != nil {
		t.Fatal("expected nil weather summary without a provider")
	}
}

func TestPlanTripValidation(t *testing.T) {
	p := plannerFixture(nil)

	cases := []struct {
		name  string
		req   PlanTripRequest
		field string
	}{
		{
			name:  "empty origin",
			req:   PlanTripRequest{Destination: "Munich", Transport: domain.TransportCar, Passengers: 1},
			field: "origin",
		},
		{
			name:  "empty destination",
			req:   PlanTripRequest{Origin: "Berlin", Transport: domain.TransportCar, Passengers: 1},
			field: "destination",
		},
		{
			name:  "zero passengers",
			req:   PlanTripRequest{Origin: "Berlin", Destination: "Munich", Transport: domain.TransportCar},
			field: "passengers",
		},
		{
			name:  "unknown transport",
			req:   PlanTripRequest{Origin: "Berlin", Destination: "Munich", Transport: "hovercraft", Passengers: 1},
			field: "transportation_type",
		},
		{
			name:  "negative budget",
			req:   PlanTripRequest{Origin: "Berlin", Destination: "Munich", Transport: domain.TransportCar, Passengers: 1, BudgetMin: -1},
			field: "budget",
		},
		{
			name:  "inverted budget",
			req:   PlanTripRequest{Origin: "Berlin", Destination: "Munich", Transport: domain.TransportCar, Passengers: 1, BudgetMin: 100, BudgetMax: 50},
			field: "budget",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := p.PlanTrip(context.Background(), tc.req)
			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *domain.ValidationError; got %v", err)
			}
			if ve.Field != tc.field {
				t.Fatalf("expected field %q; got %q", tc.field, ve.Field)
			}
		})
	}
}

func TestPlanTripInsufficientRange(t *testing.T) {
	p := plannerFixture(nil)
	mock := p.Geocoder.(*routing.MockProvider)
	mock.Segments = 1 // one ~500 km leg, beyond a full 50 L tank

	_, err := p.PlanTrip(context.Background(), PlanTripRequest{
		Origin:      "Berlin",
		Destination: "Munich",
		Transport:   domain.TransportCar,
		Passengers:  1,
	})

	var ire *domain.InsufficientRangeError
	if !errors.As(err, &ire) {
		t.Fatalf("expected *domain.InsufficientRangeError; got %v", err)
	}
	if ire.SegmentIndex != 0 {
		t.Fatalf("expected failure on segment 0; got %d", ire.SegmentIndex)
	}
}
