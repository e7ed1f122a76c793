package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"github.com/Black-And-White-Club/clip-arena/integration_tests/containers"
)

// TestEnvironment is one migrated Postgres container shared by a test package.
type TestEnvironment struct {
	PgContainer *postgres.PostgresContainer
	DB          *bun.DB
	DSN         string
}

var (
	envOnce   sync.Once
	sharedEnv *TestEnvironment
	envErr    error
)

// GetEnvironment returns the package's shared environment, starting it on
// first use. The test is skipped under -short or when Docker is unavailable.
func GetEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	envOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		sharedEnv, envErr = newTestEnvironment(ctx)
	})
	if envErr != nil {
		t.Skipf("integration environment unavailable: %v", envErr)
	}

	if err := CleanupDatabase(context.Background(), sharedEnv.DB); err != nil {
		t.Fatalf("failed to clean database: %v", err)
	}
	return sharedEnv
}

func newTestEnvironment(ctx context.Context) (*TestEnvironment, error) {
	pgContainer, dsn, err := containers.SetupPostgresContainer(ctx)
	if err != nil {
		return nil, err
	}

	sqldb, err := sql.Open("pgx", dsn)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to open sql DB connection: %w", err)
	}
	sqldb.SetMaxOpenConns(50)
	db := bun.NewDB(sqldb, pgdialect.New())

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := runMigrations(ctx, db, dsn); err != nil {
		db.Close()
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &TestEnvironment{PgContainer: pgContainer, DB: db, DSN: dsn}, nil
}

// Shutdown tears down the shared environment. Call it from TestMain.
func Shutdown() {
	if sharedEnv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := sharedEnv.DB.Close(); err != nil {
		log.Printf("Warning: failed to close database: %v", err)
	}
	if err := sharedEnv.PgContainer.Terminate(ctx); err != nil {
		log.Printf("Warning: failed to terminate postgres container: %v", err)
	}
}
