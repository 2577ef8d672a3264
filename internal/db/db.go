package db

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

func Connect(databaseURL string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, err
	}
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetMaxIdleConns(5)
	db.SetMaxOpenConns(30)
	db.SetConnMaxLifetime(30 * time.Minute)
	return db, nil
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		chat_id TEXT UNIQUE NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS movements (
		id TEXT PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users (id),
		kind TEXT NOT NULL,
		amount NUMERIC(18, 2) NOT NULL,
		category TEXT NOT NULL DEFAULT 'general',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS debts (
		id TEXT PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users (id),
		name TEXT NOT NULL,
		balance NUMERIC(18, 2) NOT NULL,
		annual_rate NUMERIC(9, 6) NOT NULL,
		closed_at DATE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_movements_user ON movements (user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_debts_user ON debts (user_id)`,
}

// EnsureSchema creates the three tables on first boot. Every statement
// is idempotent, so running it on each start is safe.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
