package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Black-And-White-Club/clip-arena/app/modules/accesscode"
	"github.com/Black-And-White-Club/clip-arena/app/modules/auth"
	"github.com/Black-And-White-Club/clip-arena/app/modules/leaderboard"
	"github.com/Black-And-White-Club/clip-arena/app/modules/notification"
	"github.com/Black-And-White-Club/clip-arena/app/modules/submission"
	"github.com/Black-And-White-Club/clip-arena/app/modules/tournament"
	"github.com/Black-And-White-Club/clip-arena/app/modules/user"
	"github.com/Black-And-White-Club/clip-arena/app/modules/voting"
	"github.com/Black-And-White-Club/clip-arena/config"
	"github.com/Black-And-White-Club/clip-arena/pkg/attr"
	"github.com/Black-And-White-Club/clip-arena/pkg/eventbus"
	"github.com/Black-And-White-Club/clip-arena/pkg/observability"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// Modules holds every initialized module.
type Modules struct {
	User         *user.Module
	Auth         *auth.Module
	AccessCode   *accesscode.Module
	Tournament   *tournament.Module
	Submission   *submission.Module
	Voting       *voting.Module
	Leaderboard  *leaderboard.Module
	Notification *notification.Module
}

// App is the composition root.
type App struct {
	Config        *config.Config
	Observability observability.Observability
	DB            *bun.DB
	EventBus      eventbus.EventBus
	Modules       *Modules
}

// NewApp opens the database and event bus and initializes all modules.
func NewApp(ctx context.Context, cfg *config.Config, obs observability.Observability) (*App, error) {
	logger := obs.Provider.Logger

	pgdb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Postgres.DSN)))
	db := bun.NewDB(pgdb, pgdialect.New())
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	bus, err := newEventBus(cfg, obs)
	if err != nil {
		db.Close()
		return nil, err
	}

	app := &App{
		Config:        cfg,
		Observability: obs,
		DB:            db,
		EventBus:      bus,
	}
	if err := app.initializeModules(ctx); err != nil {
		app.Close()
		return nil, err
	}

	logger.InfoContext(ctx, "Application initialized",
		attr.String("http_addr", cfg.HTTP.Addr),
		attr.Bool("nats", cfg.NATS.URL != ""),
	)
	return app, nil
}

func newEventBus(cfg *config.Config, obs observability.Observability) (eventbus.EventBus, error) {
	logger := obs.Provider.Logger
	if cfg.NATS.URL == "" {
		logger.Warn("No NATS URL configured, events stay in process")
		return eventbus.NewInMemory(logger), nil
	}
	bus, err := eventbus.NewNATS(cfg.NATS.URL, cfg.NATS.QueueGroup, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return bus, nil
}

func (app *App) initializeModules(ctx context.Context) error {
	obs := app.Observability

	userModule := user.NewUserModule(ctx, obs, app.EventBus, app.DB)
	authModule := auth.NewModule(ctx, app.Config, obs, userModule.Service)
	tournamentModule := tournament.NewTournamentModule(ctx, obs, app.DB)
	submissionModule := submission.NewSubmissionModule(ctx, obs, app.EventBus, app.DB, tournamentModule.Repo)

	votingModule, err := voting.NewVotingModule(ctx, app.Config, obs, app.EventBus, app.DB, submissionModule.Repo)
	if err != nil {
		return fmt.Errorf("failed to initialize voting module: %w", err)
	}

	accessCodeModule := accesscode.NewAccessCodeModule(ctx, app.Config, obs, app.EventBus, app.DB, userModule.Repo)
	leaderboardModule := leaderboard.NewLeaderboardModule(ctx, obs, app.DB)

	notificationModule, err := notification.NewNotificationModule(ctx, obs, app.EventBus, nil)
	if err != nil {
		return fmt.Errorf("failed to initialize notification module: %w", err)
	}

	app.Modules = &Modules{
		User:         userModule,
		Auth:         authModule,
		AccessCode:   accessCodeModule,
		Tournament:   tournamentModule,
		Submission:   submissionModule,
		Voting:       votingModule,
		Leaderboard:  leaderboardModule,
		Notification: notificationModule,
	}
	return nil
}

// Close releases the event bus and database. It is safe on a partially
// initialized app.
func (app *App) Close() error {
	var errs []error
	if app.Modules != nil && app.Modules.Notification != nil {
		errs = append(errs, app.Modules.Notification.Close())
	}
	if app.EventBus != nil {
		errs = append(errs, app.EventBus.Close())
	}
	if app.DB != nil {
		errs = append(errs, app.DB.Close())
	}
	return errors.Join(errs...)
}
