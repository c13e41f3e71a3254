package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createPlansQuery := `
	CREATE TABLE IF NOT EXISTS trip_plans (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		transport TEXT NOT NULL,
		plan_json TEXT NOT NULL
	);
	`

	createGeocodeCacheQuery := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
        address TEXT PRIMARY KEY,
        lon REAL NOT NULL,
        lat REAL NOT NULL,
        label TEXT NOT NULL DEFAULT ''
    );
	`

	createRouteCacheQuery := `
	CREATE TABLE IF NOT EXISTS route_cache (
        origin TEXT NOT NULL,
        destination TEXT NOT NULL,
        profile TEXT NOT NULL,
        route_json TEXT NOT NULL,
        PRIMARY KEY (origin, destination, profile)
    );
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_trip_plans_created_at
    ON trip_plans(created_at);
	`

	statements := []string{
		createPlansQuery,
		createGeocodeCacheQuery,
		createRouteCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
