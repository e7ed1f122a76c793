package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	authdomain "github.com/Black-And-White-Club/clip-arena/app/modules/auth/domain"
	authjwt "github.com/Black-And-White-Club/clip-arena/app/modules/auth/infrastructure/jwt"
	"github.com/Black-And-White-Club/clip-arena/config"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
	"github.com/urfave/cli/v2"

	accesscodemigrations "github.com/Black-And-White-Club/clip-arena/app/modules/accesscode/infrastructure/repositories/migrations"
	submissionmigrations "github.com/Black-And-White-Club/clip-arena/app/modules/submission/infrastructure/repositories/migrations"
	tournamentmigrations "github.com/Black-And-White-Club/clip-arena/app/modules/tournament/infrastructure/repositories/migrations"
	usermigrations "github.com/Black-And-White-Club/clip-arena/app/modules/user/infrastructure/repositories/migrations"
	votingmigrations "github.com/Black-And-White-Club/clip-arena/app/modules/voting/infrastructure/repositories/migrations"
)

// moduleMigrator pairs a module with its migrator. Order matters: later
// modules reference tables of earlier ones.
type moduleMigrator struct {
	name     string
	migrator *migrate.Migrator
}

func main() {
	var cfg *config.Config

	cliApp := &cli.App{
		Name: "bun",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "config.yaml", Usage: "Path to the configuration file"},
		},
		Before: func(c *cli.Context) error {
			loaded, err := config.LoadConfig(c.String("config"))
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cfg = loaded
			return nil
		},
		Commands: []*cli.Command{
			newDBCommand(func() *config.Config { return cfg }),
			newTokenCommand(func() *config.Config { return cfg }),
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func openDB(cfg *config.Config) *bun.DB {
	pgdb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Postgres.DSN)))
	return bun.NewDB(pgdb, pgdialect.New())
}

func newMigrators(db *bun.DB) []moduleMigrator {
	return []moduleMigrator{
		{"user", migrate.NewMigrator(db, usermigrations.Migrations)},
		{"accesscode", migrate.NewMigrator(db, accesscodemigrations.Migrations)},
		{"tournament", migrate.NewMigrator(db, tournamentmigrations.Migrations)},
		{"submission", migrate.NewMigrator(db, submissionmigrations.Migrations)},
		{"voting", migrate.NewMigrator(db, votingmigrations.Migrations)},
	}
}

func findMigrator(migrators []moduleMigrator, name string) (*migrate.Migrator, error) {
	for _, m := range migrators {
		if m.name == name {
			return m.migrator, nil
		}
	}
	return nil, fmt.Errorf("invalid module name: %s", name)
}

func newDBCommand(cfg func() *config.Config) *cli.Command {
	// withMigrators opens the database for the duration of one action.
	withMigrators := func(fn func(c *cli.Context, migrators []moduleMigrator) error) cli.ActionFunc {
		return func(c *cli.Context) error {
			db := openDB(cfg())
			defer db.Close()
			return fn(c, newMigrators(db))
		}
	}

	return &cli.Command{
		Name:  "migrate",
		Usage: "database migrations",
		Subcommands: []*cli.Command{
			{
				Name:  "init",
				Usage: "create migration tables",
				Action: withMigrators(func(c *cli.Context, migrators []moduleMigrator) error {
					for _, m := range migrators {
						fmt.Printf("Initializing migrations for module: %s\n", m.name)
						if err := m.migrator.Init(c.Context); err != nil {
							return fmt.Errorf("init %s: %w", m.name, err)
						}
					}
					return nil
				}),
			},
			{
				Name:  "migrate",
				Usage: "migrate database",
				Action: withMigrators(func(c *cli.Context, migrators []moduleMigrator) error {
					for _, m := range migrators {
						fmt.Printf("Running migrations for module: %s\n", m.name)
						group, err := m.migrator.Migrate(c.Context)
						if err != nil {
							return fmt.Errorf("migrate %s: %w", m.name, err)
						}
						if group.IsZero() {
							fmt.Printf("No new migrations to run for module: %s\n", m.name)
						} else {
							fmt.Printf("Migrated module: %s to %s\n", m.name, group)
						}
					}
					return migrateRiver(c, cfg(), rivermigrate.DirectionUp)
				}),
			},
			{
				Name:  "rollback",
				Usage: "rollback the last migration group",
				Action: withMigrators(func(c *cli.Context, migrators []moduleMigrator) error {
					// Reverse order so dependent tables go first.
					for i := len(migrators) - 1; i >= 0; i-- {
						m := migrators[i]
						fmt.Printf("Rolling back migrations for module: %s\n", m.name)
						group, err := m.migrator.Rollback(c.Context)
						if err != nil {
							return fmt.Errorf("rollback %s: %w", m.name, err)
						}
						if group.IsZero() {
							fmt.Printf("No groups to roll back for module: %s\n", m.name)
						} else {
							fmt.Printf("Rolled back module: %s to %s\n", m.name, group)
						}
					}
					return nil
				}),
			},
			{
				Name:  "create_go",
				Usage: "create Go migration",
				Action: withMigrators(func(c *cli.Context, migrators []moduleMigrator) error {
					moduleName := c.Args().First()
					migrator, err := findMigrator(migrators, moduleName)
					if err != nil {
						return err
					}

					name := strings.Join(c.Args().Tail(), "_")
					mf, err := migrator.CreateGoMigration(c.Context, name)
					if err != nil {
						return err
					}
					fmt.Printf("Created migration for module %s: %s (%s)\n", moduleName, mf.Name, mf.Path)
					return nil
				}),
			},
			{
				Name:  "status",
				Usage: "print migrations status",
				Action: withMigrators(func(c *cli.Context, migrators []moduleMigrator) error {
					for _, m := range migrators {
						ms, err := m.migrator.MigrationsWithStatus(c.Context)
						if err != nil {
							return err
						}
						fmt.Printf("Migrations for module: %s\n", m.name)
						fmt.Printf("  %s\n", ms)
						fmt.Printf("  Applied: %s\n", ms.Applied())
						fmt.Printf("  Unapplied: %s\n", ms.Unapplied())
					}
					return nil
				}),
			},
		},
	}
}

// migrateRiver applies the job queue's own schema through a pgx pool.
func migrateRiver(c *cli.Context, cfg *config.Config, direction rivermigrate.Direction) error {
	pool, err := pgxpool.New(c.Context, cfg.Postgres.DSN)
	if err != nil {
		return fmt.Errorf("failed to create pgx pool: %w", err)
	}
	defer pool.Close()

	migrator, err := rivermigrate.New(riverpgxv5.New(pool), nil)
	if err != nil {
		return fmt.Errorf("failed to create river migrator: %w", err)
	}
	if _, err := migrator.Migrate(c.Context, direction, &rivermigrate.MigrateOpts{}); err != nil {
		return fmt.Errorf("river migrate: %w", err)
	}
	fmt.Println("River migrations applied")
	return nil
}

func newTokenCommand(cfg func() *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "issue a signed bearer token for local testing",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "user", Usage: "user id (random when empty)"},
			&cli.StringFlag{Name: "role", Value: string(authdomain.RoleUser), Usage: "user or admin"},
			&cli.StringFlag{Name: "name", Value: "", Usage: "display name"},
			&cli.DurationFlag{Name: "ttl", Value: 0, Usage: "token lifetime (config default when zero)"},
		},
		Action: func(c *cli.Context) error {
			conf := cfg()
			if conf.JWT.Secret == "" {
				return fmt.Errorf("jwt.secret (JWT_SECRET) is required")
			}

			role := authdomain.Role(c.String("role"))
			if !role.IsValid() {
				return fmt.Errorf("invalid role %q", role)
			}

			userID := uuid.New()
			if raw := c.String("user"); raw != "" {
				parsed, err := uuid.Parse(raw)
				if err != nil {
					return fmt.Errorf("invalid user id: %w", err)
				}
				userID = parsed
			}

			ttl := c.Duration("ttl")
			if ttl <= 0 {
				ttl = conf.JWT.DefaultTTL
			}

			token, err := authjwt.NewProvider(conf.JWT.Secret, conf.JWT.Issuer).GenerateToken(&authdomain.Claims{
				UserID:      userID,
				Role:        role,
				DisplayName: c.String("name"),
				IssuedAt:    time.Now(),
			}, ttl)
			if err != nil {
				return err
			}
			fmt.Println(token)
			return nil
		},
	}
}
