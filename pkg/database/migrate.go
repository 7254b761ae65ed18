package database

import (
	"context"
	_ "embed"
	"fmt"
)

//go:embed schema.sql
var schemaSQL string

// Migrate applies schema.sql. Every statement is idempotent, so it runs on
// each start. The script goes out as one simple-protocol Exec because the
// plpgsql body cannot be split on semicolons.
func Migrate(ctx context.Context, db PgxIface) error {
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
