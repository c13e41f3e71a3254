package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/obs"
	"trip-planner-service/internal/ports"
)

// PostgresPlanRepository is a Postgres-backed implementation of the
// TripPlanRepository port, used when plans must outlive a single host.
type PostgresPlanRepository struct {
	DB *sql.DB
}

func NewPostgresPlanRepository(db *sql.DB) *PostgresPlanRepository {
	return &PostgresPlanRepository{DB: db}
}

func (p *PostgresPlanRepository) Save(ctx context.Context, plan *domain.TripPlan) (err error) {
	defer obs.Time(ctx, "plans.repo.Save")(&err)

	if p.DB == nil {
		return errors.New("postgres plan repository: db is nil")
	}
	if plan == nil || plan.ID == "" {
		return errors.New("save plan: plan must have an id")
	}

	blob, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("save plan: marshal plan %s: %w", plan.ID, err)
	}

	q := `
	INSERT INTO trip_plans (id, created_at, origin, destination, transport, plan_json)
    VALUES ($1, $2, $3, $4, $5, $6)
    ON CONFLICT (id) DO UPDATE SET
        created_at = EXCLUDED.created_at,
        origin = EXCLUDED.origin,
        destination = EXCLUDED.destination,
        transport = EXCLUDED.transport,
        plan_json = EXCLUDED.plan_json;
	`

	_, err = p.DB.ExecContext(ctx, q,
		plan.ID,
		plan.CreatedAt,
		plan.Origin.Address,
		plan.Destination.Address,
		string(plan.Transport),
		blob,
	)
	if err != nil {
		return fmt.Errorf("save plan: upsert trip_plans id=%s: %w", plan.ID, err)
	}

	return nil
}

func (p *PostgresPlanRepository) Get(ctx context.Context, id string) (_ *domain.TripPlan, err error) {
	defer obs.Time(ctx, "plans.repo.Get")(&err)

	if p.DB == nil {
		return nil, errors.New("postgres plan repository: db is nil")
	}

	q := `
	SELECT plan_json
    FROM trip_plans
    WHERE id = $1;
	`

	var blob []byte
	err = p.DB.QueryRowContext(ctx, q, id).Scan(&blob)
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

var _ ports.TripPlanRepository = (*PostgresPlanRepository)(nil)
