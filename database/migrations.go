package database

import (
	"context"
	"fmt"

	"github.com/MonkyMars/gecho"
)

// migrations are applied in order at startup. Every statement is
// idempotent so re-running the full list is safe.
var migrations = []string{
	`CREATE EXTENSION IF NOT EXISTS pgcrypto`,
	`CREATE EXTENSION IF NOT EXISTS pg_trgm`,

	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(255) NOT NULL,
		phone VARCHAR(20) NOT NULL UNIQUE,
		email VARCHAR(255) UNIQUE,
		password_hash TEXT NOT NULL,
		address TEXT NOT NULL DEFAULT '',
		gst_no VARCHAR(20) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS stores (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		owner VARCHAR(255) NOT NULL,
		phone VARCHAR(20) NOT NULL,
		tel_code VARCHAR(8) NOT NULL DEFAULT '+91',
		address TEXT NOT NULL DEFAULT '',
		email VARCHAR(255),
		gst_no VARCHAR(20) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_stores_user_id ON stores (user_id)`,

	`CREATE TABLE IF NOT EXISTS products (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		store_id UUID NOT NULL REFERENCES stores(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		quantity INTEGER NOT NULL DEFAULT 0,
		pack_size INTEGER,
		gst_percent DOUBLE PRECISION NOT NULL,
		expiry TIMESTAMPTZ,
		batch VARCHAR(12) NOT NULL DEFAULT '',
		mrp DOUBLE PRECISION NOT NULL,
		unit VARCHAR(32) NOT NULL DEFAULT 'units',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_products_store_id ON products (store_id)`,
	`CREATE INDEX IF NOT EXISTS idx_products_name_trgm ON products USING gin (name gin_trgm_ops)`,
	`CREATE INDEX IF NOT EXISTS idx_products_batch_trgm ON products USING gin (batch gin_trgm_ops)`,

	`CREATE TABLE IF NOT EXISTS bills (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		store_id UUID NOT NULL REFERENCES stores(id) ON DELETE CASCADE,
		bill_number VARCHAR(16) NOT NULL UNIQUE,
		customer_name VARCHAR(255) NOT NULL DEFAULT '',
		doctor_name VARCHAR(255) NOT NULL DEFAULT '',
		billing_date TIMESTAMPTZ NOT NULL DEFAULT now(),
		store_name VARCHAR(255) NOT NULL,
		owner_name VARCHAR(255) NOT NULL,
		store_gst_no VARCHAR(20) NOT NULL DEFAULT '',
		store_address TEXT NOT NULL DEFAULT '',
		store_phone VARCHAR(30) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bills_store_id ON bills (store_id)`,

	`CREATE TABLE IF NOT EXISTS bill_items (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		bill_id UUID NOT NULL REFERENCES bills(id) ON DELETE CASCADE,
		product_id UUID,
		product_name VARCHAR(255) NOT NULL,
		quantity INTEGER NOT NULL,
		discount_percent DOUBLE PRECISION NOT NULL DEFAULT 0,
		gst_percent DOUBLE PRECISION NOT NULL DEFAULT 0,
		total_price DOUBLE PRECISION NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bill_items_bill_id ON bill_items (bill_id)`,
}

// Migrate applies the schema migrations at startup.
func Migrate(ctx context.Context, db *DB, logger *gecho.Logger) error {
	for i, stmt := range migrations {
		if err := RawExec(db, ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	logger.Info("Database migrations applied", gecho.Field("count", len(migrations)))
	return nil
}
