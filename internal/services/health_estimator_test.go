package services

import (
	"math"
	"testing"

	"trip-planner-service/internal/domain"
)

func TestEstimateHealthWalkingConfiguredRate(t *testing.T) {
	cfg := HealthConfig{RatesKcalPerMinute: map[string]float64{"walking": 5}}
	route := evenRoute(2, 5, 60, domain.TransportWalking)

	h := EstimateHealth(route, domain.TransportWalking, cfg)

	if math.Abs(h.TotalCalories-300) > 1e-9 {
		t.Fatalf("total calories = %v, want 300", h.TotalCalories)
	}
	if got := h.ByActivity["walking"]; math.Abs(got-300) > 1e-9 {
		t.Fatalf("walking calories = %v, want 300", got)
	}
}

func TestEstimateHealthDefaultRates(t *testing.T) {
	route := evenRoute(1, 30, 120, domain.TransportBicycle)

	h := EstimateHealth(route, domain.TransportBicycle, DefaultHealthConfig())

	// 120 min at 450 kcal/h
	if math.Abs(h.TotalCalories-900) > 1e-6 {
		t.Fatalf("total calories = %v, want 900", h.TotalCalories)
	}
	if _, ok := h.ByActivity["cycling"]; !ok {
		t.Fatal("expected cycling bucket")
	}
}

func TestEstimateHealthSittingBucketForTransit(t *testing.T) {
	route := evenRoute(1, 200, 180, domain.TransportTrain)

	h := EstimateHealth(route, domain.TransportTrain, DefaultHealthConfig())

	if _, ok := h.ByActivity["sitting"]; !ok {
		t.Fatalf("expected sitting bucket, got %v", h.ByActivity)
	}
}

func TestEstimateHealthUnknownActivitySkipped(t *testing.T) {
	cfg := HealthConfig{RatesKcalPerMinute: map[string]float64{}}
	route := evenRoute(1, 10, 60, domain.TransportWalking)

	h := EstimateHealth(route, domain.TransportWalking, cfg)
	if h.TotalCalories != 0 {
		t.Fatalf("total calories = %v, want 0 without a configured rate", h.TotalCalories)
	}
}
