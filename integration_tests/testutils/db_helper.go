package testutils

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"

	accesscodemigrations "github.com/Black-And-White-Club/clip-arena/app/modules/accesscode/infrastructure/repositories/migrations"
	submissionmigrations "github.com/Black-And-White-Club/clip-arena/app/modules/submission/infrastructure/repositories/migrations"
	tournamentmigrations "github.com/Black-And-White-Club/clip-arena/app/modules/tournament/infrastructure/repositories/migrations"
	usermigrations "github.com/Black-And-White-Club/clip-arena/app/modules/user/infrastructure/repositories/migrations"
	votingmigrations "github.com/Black-And-White-Club/clip-arena/app/modules/voting/infrastructure/repositories/migrations"
)

// runMigrations runs River's schema and then every module in foreign key order.
func runMigrations(ctx context.Context, db *bun.DB, dsn string) error {
	if err := migrate.NewMigrator(db, usermigrations.Migrations).Init(ctx); err != nil {
		return fmt.Errorf("failed to initialize migration tables: %w", err)
	}

	if err := runRiverMigrations(ctx, dsn); err != nil {
		return err
	}

	orderedModules := []struct {
		name       string
		migrations *migrate.Migrations
	}{
		{"user", usermigrations.Migrations},
		{"accesscode", accesscodemigrations.Migrations},
		{"tournament", tournamentmigrations.Migrations},
		{"submission", submissionmigrations.Migrations},
		{"voting", votingmigrations.Migrations},
	}
	for _, mod := range orderedModules {
		group, err := migrate.NewMigrator(db, mod.migrations).Migrate(ctx)
		if err != nil {
			return fmt.Errorf("failed to run %s migrations: %w", mod.name, err)
		}
		log.Printf("Ran %s migrations group #%d", mod.name, group.ID)
	}
	return nil
}

func runRiverMigrations(ctx context.Context, dsn string) error {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return fmt.Errorf("failed to create pgx pool for River migrations: %w", err)
	}
	defer pool.Close()

	migrator, err := rivermigrate.New(riverpgxv5.New(pool), nil)
	if err != nil {
		return fmt.Errorf("failed to create River migrator: %w", err)
	}
	if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{}); err != nil {
		return fmt.Errorf("failed to run River migrations: %w", err)
	}
	return nil
}

var appTables = []string{"likes", "votes", "submissions", "tournaments", "user_referrals", "access_codes", "users"}

// CleanupDatabase truncates every application table and the job queue.
func CleanupDatabase(ctx context.Context, db *bun.DB) error {
	query := fmt.Sprintf("TRUNCATE TABLE %s CASCADE", strings.Join(appTables, ", "))
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}
	if _, err := db.ExecContext(ctx, "DELETE FROM river_job"); err != nil {
		return fmt.Errorf("failed to cleanup river jobs: %w", err)
	}
	return nil
}
