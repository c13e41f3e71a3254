package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

type memPlanRepo struct {
	plans map[string]*domain.TripPlan
	gets  int
}

func (m *memPlanRepo) Save(ctx context.Context, plan *domain.TripPlan) error {
	m.plans[plan.ID] = plan
	return nil
}

func (m *memPlanRepo) Get(ctx context.Context, id string) (*domain.TripPlan, error) {
	m.gets++
	plan, ok := m.plans[id]
	if !ok {
		return nil, ports.ErrPlanNotFound
	}
	return plan, nil
}

func newCacheFixture(t *testing.T) (*RedisPlanCache, *memPlanRepo, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })

	inner := &memPlanRepo{plans: map[string]*domain.TripPlan{}}
	c, err := NewRedisPlanCache(client, inner)
	require.NoError(t, err)

	return c, inner, srv
}

func cachedPlan(id string) *domain.TripPlan {
	return &domain.TripPlan{
		ID:        id,
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Transport: domain.TransportCar,
		Costs:     domain.CostBreakdown{TotalCost: 42, Currency: "USD"},
	}
}

func TestRedisPlanCacheServesHitsWithoutRepository(t *testing.T) {
	c, inner, _ := newCacheFixture(t)
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, cachedPlan("plan-1")))

	got, err := c.Get(ctx, "plan-1")
	require.NoError(t, err)
	require.Equal(t, "plan-1", got.ID)
	require.Equal(t, 42.0, got.Costs.TotalCost)
	require.Zero(t, inner.gets, "cache hit must not reach the repository")
}

func TestRedisPlanCacheFallsBackOnMiss(t *testing.T) {
	c, inner, srv := newCacheFixture(t)
	ctx := context.Background()

	inner.plans["plan-2"] = cachedPlan("plan-2")

	got, err := c.Get(ctx, "plan-2")
	require.NoError(t, err)
	require.Equal(t, "plan-2", got.ID)
	require.Equal(t, 1, inner.gets)

	// The miss should have been backfilled.
	require.True(t, srv.Exists("trip_plan:plan-2"))
}

func TestRedisPlanCacheNotFound(t *testing.T) {
	c, _, _ := newCacheFixture(t)

	_, err := c.Get(context.Background(), "missing")
	require.ErrorIs(t, err, ports.ErrPlanNotFound)
}

func TestRedisPlanCacheCorruptEntryFallsThrough(t *testing.T) {
	c, inner, srv := newCacheFixture(t)
	ctx := context.Background()

	inner.plans["plan-3"] = cachedPlan("plan-3")
	require.NoError(t, srv.Set("trip_plan:plan-3", "not json"))

	got, err := c.Get(ctx, "plan-3")
	require.NoError(t, err)
	require.Equal(t, "plan-3", got.ID)
	require.Equal(t, 1, inner.gets)
}
