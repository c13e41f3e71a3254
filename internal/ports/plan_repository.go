package ports

import (
	"context"
	"errors"

	"trip-planner-service/internal/domain"
)

// ErrPlanNotFound is returned when a plan ID is unknown or expired.
var ErrPlanNotFound = errors.New("trip plan not found")

// TripPlanRepository stores computed trip plans for later retrieval.
// Persistence lives strictly outside the planning core.
type TripPlanRepository interface {
	Save(ctx context.Context, plan *domain.TripPlan) error
	Get(ctx context.Context, id string) (*domain.TripPlan, error)
}
