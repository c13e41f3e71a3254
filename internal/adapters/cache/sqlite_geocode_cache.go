package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"trip-planner-service/internal/domain"
)

// SQLite backed cache mapping address strings to resolved locations.
// Address keys are expected to be consistent (e.g., normalized)
// by the caller.
type SqliteGeocodeCache struct {
	DB *sql.DB
}

func NewSqliteGeocodeCache(db *sql.DB) *SqliteGeocodeCache {
	return &SqliteGeocodeCache{DB: db}
}

// Fetch the cached location for the given address. The second return value
// reports whether the address was present.
func (s *SqliteGeocodeCache) Get(ctx context.Context, address string) (domain.Location, bool, error) {
	if s.DB == nil {
		return domain.Location{}, false, errors.New("geocode cache: db is nil")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return domain.Location{}, false, errors.New("get geocode cache: address must not be empty")
	}

	q := `
	SELECT
        lon,
        lat,
        label
    FROM geocode_cache
    WHERE address = ?;
	`

	var lon, lat float64
	var label string
	err := s.DB.QueryRowContext(ctx, q, address).Scan(&lon, &lat, &label)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Location{}, false, nil
	}
	if err != nil {
		return domain.Location{}, false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	return domain.Location{Latitude: lat, Longitude: lon, Address: label}, true, nil
}

// Store an address -> location mapping in the cache.
func (s *SqliteGeocodeCache) Put(ctx context.Context, address string, loc domain.Location) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return errors.New("insert geocode cache: address must not be empty")
	}

	q := `
	INSERT OR REPLACE INTO geocode_cache (
        address,
        lon,
        lat,
        label
    )
    VALUES (?, ?, ?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, q, address, loc.Longitude, loc.Latitude, loc.Address); err != nil {
		return fmt.Errorf("insert geocode cache addr=%q: %w", address, err)
	}

	return nil
}
