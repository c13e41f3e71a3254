package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

// SQLite-backed implementation of the TripPlanRepository port. Plans are
// stored as JSON documents with a few indexed columns for inspection.
type SqlitePlanRepository struct{ DB *sql.DB }

func NewSqlitePlanRepository(db *sql.DB) *SqlitePlanRepository {
	return &SqlitePlanRepository{DB: db}
}

func (s *SqlitePlanRepository) Save(ctx context.Context, plan *domain.TripPlan) error {
	if s.DB == nil {
		return errors.New("sqlite plan repository: DB is nil")
	}
	if plan == nil || plan.ID == "" {
		return errors.New("save plan: plan must have an id")
	}

	blob, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("save plan: marshal plan %s: %w", plan.ID, err)
	}

	query := `
	INSERT OR REPLACE INTO trip_plans (
		id,
		created_at,
		origin,
		destination,
		transport,
		plan_json
	)
	VALUES (?, ?, ?, ?, ?, ?);
	`
	_, err = s.DB.ExecContext(ctx, query,
		plan.ID,
		plan.CreatedAt.Format(time.RFC3339),
		plan.Origin.Address,
		plan.Destination.Address,
		string(plan.Transport),
		blob,
	)
	if err != nil {
		return fmt.Errorf("save plan: insert trip_plans id=%s: %w", plan.ID, err)
	}

	return nil
}

func (s *SqlitePlanRepository) Get(ctx context.Context, id string) (*domain.TripPlan, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite plan repository: DB is nil")
	}

	query := `
	SELECT
		plan_json
	FROM trip_plans
	WHERE id = ?;
	`

	var blob []byte
	err := s.DB.QueryRowContext(ctx, query, id).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrPlanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get plan: query trip_plans id=%s: %w", id, err)
	}

	var plan domain.TripPlan
	if err := json.Unmarshal(blob, &plan); err != nil {
		return nil, fmt.Errorf("get plan: unmarshal plan %s: %w", id, err)
	}

	return &plan, nil
}

var _ ports.TripPlanRepository = (*SqlitePlanRepository)(nil)
