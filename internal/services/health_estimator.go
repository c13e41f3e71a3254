package services

import (
	"math"

	"trip-planner-service/internal/domain"
)

// HealthConfig maps activity buckets to burn rates in kcal per minute.
// Rates are configuration constants, not physiologically derived.
type HealthConfig struct {
	RatesKcalPerMinute map[string]float64
}

// Default hourly rates: walking 280, cycling 450, driving 140, sitting 68.
func DefaultHealthConfig() HealthConfig {
	return HealthConfig{
		RatesKcalPerMinute: map[string]float64{
			"walking": 280.0 / 60,
			"cycling": 450.0 / 60,
			"driving": 140.0 / 60,
			"sitting": 68.0 / 60,
		},
	}
}

// EstimateHealth computes calories burned per activity bucket as
// duration x configured rate, walking segments individually so mixed-mode
// routes bucket correctly.
func EstimateHealth(route *domain.Route, transport domain.TransportType, cfg HealthConfig) domain.HealthBreakdown {
	byActivity := map[string]float64{}
	var total float64

	for _, seg := range route.Segments {
		mode := seg.Transport
		if mode == "" {
			mode = transport
		}

		activity := mode.Activity()
		rate := cfg.RatesKcalPerMinute[activity]
		if rate <= 0 {
			continue
		}

		calories := seg.DurationMinutes * rate
		byActivity[activity] += calories
		total += calories
	}

	for activity, v := range byActivity {
		byActivity[activity] = roundCalories(v)
	}

	return domain.HealthBreakdown{
		TotalCalories: roundCalories(total),
		ByActivity:    byActivity,
	}
}

func roundCalories(v float64) float64 {
	return math.Round(v*100) / 100
}
