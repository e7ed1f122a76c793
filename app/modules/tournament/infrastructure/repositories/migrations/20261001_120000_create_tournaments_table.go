package tournamentmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating tournaments table...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS tournaments (
					id UUID PRIMARY KEY,
					name VARCHAR(200) NOT NULL,
					status VARCHAR(16) NOT NULL DEFAULT 'upcoming'
						CHECK (status IN ('upcoming', 'active', 'ended', 'cancelled')),
					created_by UUID NOT NULL REFERENCES users(id),
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_tournaments_status ON tournaments(status);
			`); err != nil {
				return fmt.Errorf("failed to create tournaments table: %w", err)
			}
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping tournaments table...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS tournaments CASCADE;`); err != nil {
				return fmt.Errorf("failed to drop tournaments table: %w", err)
			}
			return nil
		})
	})
}
