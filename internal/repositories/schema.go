package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Migrations create the schema. Photos are removed with their date by the
// ON DELETE CASCADE constraint.
var Migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username VARCHAR(80) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		first_name VARCHAR(100) NOT NULL DEFAULT '',
		last_name VARCHAR(100) NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS dates (
		id BIGSERIAL PRIMARY KEY,
		activity_name VARCHAR(255) NOT NULL,
		location VARCHAR(255) NOT NULL,
		date_day DATE NOT NULL,
		rating SMALLINT CHECK (rating BETWEEN 1 AND 5),
		notes TEXT NOT NULL DEFAULT '',
		created_by BIGINT NOT NULL REFERENCES users(id),
		notes_edited_by BIGINT REFERENCES users(id),
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_dates_date_day ON dates (date_day DESC);`,
	`CREATE TABLE IF NOT EXISTS photos (
		id BIGSERIAL PRIMARY KEY,
		date_id BIGINT NOT NULL REFERENCES dates(id) ON DELETE CASCADE,
		filename VARCHAR(255) NOT NULL,
		filepath VARCHAR(512) NOT NULL,
		uploaded_by BIGINT NOT NULL REFERENCES users(id),
		uploaded_at TIMESTAMP NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_photos_date_id ON photos (date_id);`,
}

// Migrate applies Migrations in order. Every statement is idempotent.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range Migrations {
		_, err := db.ExecContext(ctx, stmt)
		logQuery(ctx, stmt, nil, nil, err)
		if err != nil {
			return err
		}
	}
	return nil
}
