// Package migrate applies the embedded database schema and seed data.
package migrate

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/timeclock/timeclock-backend/pkg/database"
)

//go:embed sql/schema.sql
var schemaSQL string

//go:embed sql/seed.sql
var seedSQL string

// Apply creates the tables and indexes. Statements are idempotent, so
// re-running against an existing database is safe.
func Apply(ctx context.Context, db *database.DB) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// Seed inserts the default configuration values. Existing keys are left
// untouched.
func Seed(ctx context.Context, db *database.DB) error {
	if _, err := db.ExecContext(ctx, seedSQL); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}
	return nil
}
