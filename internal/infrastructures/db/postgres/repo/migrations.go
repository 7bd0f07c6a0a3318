package postgres

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS reservations (
		locator             TEXT PRIMARY KEY,
		status              TEXT NOT NULL DEFAULT '',
		start_date          DATE,
		end_date            DATE,
		currency            TEXT NOT NULL DEFAULT '',
		total_amount        NUMERIC(14, 2) NOT NULL DEFAULT 0,
		payload             JSONB NOT NULL DEFAULT '{}'::jsonb,
		cancelled_at        TIMESTAMPTZ,
		cancellation_amount NUMERIC(14, 2),
		created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at          TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS reservations_start_date_idx ON reservations (start_date)`,
}

func (r *Repository) Migrate(ctx context.Context) error {
	for i, stmt := range schema {
		if _, err := r.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}
	return nil
}
