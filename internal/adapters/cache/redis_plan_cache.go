package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

const defaultPlanTTL = 24 * time.Hour

// RedisPlanCache is a read-through cache in front of a TripPlanRepository.
// Cache failures never fail the request; the inner repository stays
// authoritative.
type RedisPlanCache struct {
	client *redis.Client
	inner  ports.TripPlanRepository
	ttl    time.Duration
}

func NewRedisPlanCache(client *redis.Client, inner ports.TripPlanRepository) (*RedisPlanCache, error) {
	if client == nil {
		return nil, errors.New("plan cache: redis client is nil")
	}
	if inner == nil {
		return nil, errors.New("plan cache: inner repository is nil")
	}
	return &RedisPlanCache{client: client, inner: inner, ttl: defaultPlanTTL}, nil
}

func planKey(id string) string {
	return "trip_plan:" + id
}

func (c *RedisPlanCache) Save(ctx context.Context, plan *domain.TripPlan) error {
	if err := c.inner.Save(ctx, plan); err != nil {
		return err
	}
	c.store(ctx, plan)
	return nil
}

func (c *RedisPlanCache) Get(ctx context.Context, id string) (*domain.TripPlan, error) {
	blob, err := c.client.Get(ctx, planKey(id)).Bytes()
	if err == nil {
		var plan domain.TripPlan
		if err := json.Unmarshal(blob, &plan); err == nil {
			return &plan, nil
		}
		// A corrupt entry falls through to the repository and gets rewritten.
		log.Printf("plan cache: discarding corrupt entry for %s", id)
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("plan cache read failed: %v", err)
	}

	plan, err := c.inner.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, plan)
	return plan, nil
}

func (c *RedisPlanCache) store(ctx context.Context, plan *domain.TripPlan) {
	blob, err := json.Marshal(plan)
	if err != nil {
		log.Printf("plan cache: marshal plan %s: %v", plan.ID, err)
		return
	}
	if err := c.client.Set(ctx, planKey(plan.ID), blob, c.ttl).Err(); err != nil {
		log.Printf("plan cache write failed: %v", err)
	}
}

var _ ports.TripPlanRepository = (*RedisPlanCache)(nil)

// NewRedisClient builds a client and verifies connectivity.
func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", addr, err)
	}
	return client, nil
}
