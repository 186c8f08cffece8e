package migrations

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/actrac/actrac-server/internal/logger"
)

// statements is the additive schema bootstrap. Every statement is safe
// to run against an existing database; nothing here drops or rewrites
// data. The uniqueness constraints on users are the authoritative guard
// against concurrent duplicate registrations.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username VARCHAR(100) NOT NULL UNIQUE,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS activities (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users (id),
		name VARCHAR(100) NOT NULL,
		points INTEGER NOT NULL,
		date VARCHAR(10) NOT NULL,
		host VARCHAR(100) NOT NULL DEFAULT '',
		description VARCHAR(200) NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_user_id ON activities (user_id)`,
}

// Up applies the schema bootstrap in order.
func Up(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			logger.Log.Errorw("migration statement failed", "error", err)
			return err
		}
	}
	logger.Log.Infow("schema bootstrap applied", "statements", len(statements))
	return nil
}
