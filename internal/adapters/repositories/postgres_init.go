package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres schema. Used by the dbtool command; the server
// assumes the schema already exists when DATABASE_URL is configured.
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS trip_plans (
		id TEXT PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		transport TEXT NOT NULL,
		plan_json JSONB NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_trip_plans_created_at
    ON trip_plans(created_at);
	`

	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("init postgres schema: %w", err)
	}

	return nil
}
