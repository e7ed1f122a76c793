package submissionmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating submissions table...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS submissions (
					id UUID PRIMARY KEY,
					tournament_id UUID NOT NULL REFERENCES tournaments(id) ON DELETE CASCADE,
					user_id UUID NOT NULL REFERENCES users(id),
					title VARCHAR(200) NOT NULL,
					clip_url TEXT NOT NULL,
					description TEXT,
					status VARCHAR(16) NOT NULL DEFAULT 'pending'
						CHECK (status IN ('pending', 'approved', 'rejected')),
					score INTEGER NOT NULL DEFAULT 0 CHECK (score >= 0),
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					CONSTRAINT uq_submissions_user_tournament UNIQUE (user_id, tournament_id)
				);
				CREATE INDEX IF NOT EXISTS idx_submissions_ranking
					ON submissions(tournament_id, score DESC, created_at ASC) WHERE status = 'approved';
				CREATE INDEX IF NOT EXISTS idx_submissions_user_status ON submissions(user_id, status);
			`); err != nil {
				return fmt.Errorf("failed to create submissions table: %w", err)
			}
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping submissions table...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS submissions CASCADE;`); err != nil {
				return fmt.Errorf("failed to drop submissions table: %w", err)
			}
			return nil
		})
	})
}
