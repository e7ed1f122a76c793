package accesscodemigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating access_codes and user_referrals tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS access_codes (
					id UUID PRIMARY KEY,
					code VARCHAR(32) NOT NULL UNIQUE,
					created_by UUID NOT NULL REFERENCES users(id),
					issuer_role VARCHAR(16) NOT NULL CHECK (issuer_role IN ('user', 'admin')),
					expires_at TIMESTAMPTZ,
					used_by UUID REFERENCES users(id),
					used_at TIMESTAMPTZ,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					CHECK ((used_by IS NULL) = (used_at IS NULL))
				);
				CREATE INDEX IF NOT EXISTS idx_access_codes_created_by ON access_codes(created_by, created_at DESC);
			`); err != nil {
				return fmt.Errorf("failed to create access_codes table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS user_referrals (
					id UUID PRIMARY KEY,
					referrer_id UUID NOT NULL REFERENCES users(id),
					referred_user_id UUID NOT NULL UNIQUE REFERENCES users(id),
					access_code_id UUID NOT NULL REFERENCES access_codes(id),
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_user_referrals_referrer ON user_referrals(referrer_id);
			`); err != nil {
				return fmt.Errorf("failed to create user_referrals table: %w", err)
			}
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping user_referrals and access_codes tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				DROP TABLE IF EXISTS user_referrals;
				DROP TABLE IF EXISTS access_codes;
			`); err != nil {
				return fmt.Errorf("failed to drop access code tables: %w", err)
			}
			return nil
		})
	})
}
