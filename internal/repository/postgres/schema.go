package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		name TEXT NOT NULL,
		avatar_url TEXT NOT NULL DEFAULT '',
		created_on TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_on TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS outfits (
		id UUID PRIMARY KEY,
		owner_id UUID NOT NULL REFERENCES users(id),
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		image_urls JSONB NOT NULL DEFAULT '[]',
		daily_price_cents INTEGER NOT NULL,
		status TEXT NOT NULL,
		created_on TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_on TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS rentals (
		id UUID PRIMARY KEY,
		outfit_id UUID NOT NULL,
		owner_id UUID NOT NULL,
		renter_id UUID NOT NULL,
		outfit JSONB NOT NULL,
		owner JSONB NOT NULL,
		renter JSONB NOT NULL,
		start_date TIMESTAMPTZ NOT NULL,
		end_date TIMESTAMPTZ NOT NULL,
		total_days INTEGER NOT NULL,
		total_amount_cents INTEGER NOT NULL,
		payment_status TEXT NOT NULL,
		receipt_image TEXT,
		transaction_date TIMESTAMPTZ,
		status TEXT NOT NULL,
		extension JSONB,
		version INTEGER NOT NULL DEFAULT 1,
		created_on TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_on TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_rentals_owner ON rentals(owner_id)`,
	`CREATE INDEX IF NOT EXISTS idx_rentals_renter ON rentals(renter_id)`,
	`CREATE INDEX IF NOT EXISTS idx_rentals_outfit_status ON rentals(outfit_id, status)`,
	`CREATE TABLE IF NOT EXISTS rental_history (
		id UUID PRIMARY KEY,
		rental_id UUID NOT NULL,
		owner_id UUID NOT NULL,
		renter_id UUID NOT NULL,
		status TEXT NOT NULL,
		snapshot JSONB NOT NULL,
		action_by JSONB NOT NULL,
		action_date TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_rental_history_owner ON rental_history(owner_id, action_date DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_rental_history_renter ON rental_history(renter_id, action_date DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_rental_history_rental ON rental_history(rental_id, action_date DESC)`,
}

// EnsureSchema creates the tables and indexes if they are missing. Safe to run
// on every startup.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema setup failed: %w", err)
		}
	}
	return nil
}
