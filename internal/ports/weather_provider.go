package ports

import (
	"context"
	"trip-planner-service/internal/domain"
)

// WeatherProvider returns current conditions at a location. Weather is
// optional enrichment: a failing provider degrades the plan to an absent
// weather field and must never abort planning.
type WeatherProvider interface {
	Current(ctx context.Context, latitude, longitude float64) (domain.WeatherReport, error)
}
