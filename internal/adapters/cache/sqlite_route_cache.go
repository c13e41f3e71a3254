package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"trip-planner-service/internal/domain"
)

// SQLite backed cache for computed routes, keyed by origin and destination
// coordinates plus the routing profile. Routes are stored as JSON blobs; the
// cache does not interpret them.
type SqliteRouteCache struct {
	DB *sql.DB
}

func NewSqliteRouteCache(db *sql.DB) *SqliteRouteCache {
	return &SqliteRouteCache{DB: db}
}

// coordKey renders a location as a stable "lat,lon" string.
func coordKey(loc domain.Location) string {
	return strconv.FormatFloat(loc.Latitude, 'f', 6, 64) +
		"," +
		strconv.FormatFloat(loc.Longitude, 'f', 6, 64)
}

// Fetch a cached route. The second return value reports whether the
// origin/destination/profile triple was present.
func (s *SqliteRouteCache) Get(
	ctx context.Context,
	origin, destination domain.Location,
	profile string,
) (*domain.Route, bool, error) {
	if s.DB == nil {
		return nil, false, errors.New("route cache: db is nil")
	}
	if profile == "" {
		return nil, false, errors.New("get route cache: profile must not be empty")
	}

	q := `
	SELECT
        route_json
    FROM route_cache
    WHERE origin = ?
        AND destination = ?
        AND profile = ?;
	`

	var blob []byte
	err := s.DB.QueryRowContext(ctx, q, coordKey(origin), coordKey(destination), profile).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get route cache: query route_cache table: %w", err)
	}

	var route domain.Route
	if err := json.Unmarshal(blob, &route); err != nil {
		return nil, false, fmt.Errorf("get route cache: unmarshal route: %w", err)
	}

	return &route, true, nil
}

// Store a computed route for an origin/destination/profile triple.
func (s *SqliteRouteCache) Put(
	ctx context.Context,
	origin, destination domain.Location,
	profile string,
	route *domain.Route,
) error {
	if s.DB == nil {
		return errors.New("route cache: db is nil")
	}
	if profile == "" {
		return errors.New("insert route cache: profile must not be empty")
	}
	if route == nil {
		return errors.New("insert route cache: route is nil")
	}

	blob, err := json.Marshal(route)
	if err != nil {
		return fmt.Errorf("insert route cache: marshal route: %w", err)
	}

	q := `
	INSERT OR REPLACE INTO route_cache (
        origin,
        destination,
        profile,
        route_json
    )
    VALUES (?, ?, ?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, q, coordKey(origin), coordKey(destination), profile, blob); err != nil {
		return fmt.Errorf("insert route cache %s->%s: %w", coordKey(origin), coordKey(destination), err)
	}

	return nil
}
