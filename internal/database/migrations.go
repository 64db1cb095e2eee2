package database

import (
	"context"
	"fmt"
)

const archiveSchemaSQL = `
	CREATE TABLE IF NOT EXISTS archived_orders (
		order_id INTEGER PRIMARY KEY,
		customer_name VARCHAR(255) NOT NULL,
		food_name VARCHAR(255) NOT NULL,
		delivery_fee NUMERIC(10, 2) NOT NULL,
		total_amount NUMERIC(10, 2) NOT NULL,
		placed_at TIMESTAMPTZ NOT NULL,
		archived_at TIMESTAMPTZ DEFAULT NOW()
	)
`

// EnsureSchema creates the archive tables if they do not exist yet
func (db *DB) EnsureSchema(ctx context.Context) error {
	if err := db.Exec(ctx, archiveSchemaSQL); err != nil {
		return fmt.Errorf("failed to create archive schema: %w", err)
	}

	db.logger.Info("schema_ready", "Archive schema is up to date", "startup", nil)
	return nil
}
