package votingmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating votes and likes tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS votes (
					id UUID PRIMARY KEY,
					submission_id UUID NOT NULL REFERENCES submissions(id) ON DELETE CASCADE,
					voter_id UUID NOT NULL REFERENCES users(id),
					rank SMALLINT NOT NULL CHECK (rank BETWEEN 1 AND 3),
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					CONSTRAINT uq_votes_voter_submission UNIQUE (voter_id, submission_id)
				);
				CREATE INDEX IF NOT EXISTS idx_votes_submission ON votes(submission_id);
			`); err != nil {
				return fmt.Errorf("failed to create votes table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS likes (
					id UUID PRIMARY KEY,
					submission_id UUID NOT NULL REFERENCES submissions(id) ON DELETE CASCADE,
					user_id UUID NOT NULL REFERENCES users(id),
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					CONSTRAINT uq_likes_submission_user UNIQUE (submission_id, user_id)
				);
			`); err != nil {
				return fmt.Errorf("failed to create likes table: %w", err)
			}
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping likes and votes tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				DROP TABLE IF EXISTS likes;
				DROP TABLE IF EXISTS votes;
			`); err != nil {
				return fmt.Errorf("failed to drop voting tables: %w", err)
			}
			return nil
		})
	})
}
