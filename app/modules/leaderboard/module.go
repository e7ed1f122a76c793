package leaderboard

import (
	"context"

	"github.com/Black-And-White-Club/clip-arena/app/modules/auth"
	leaderboardservice "github.com/Black-And-White-Club/clip-arena/app/modules/leaderboard/application"
	leaderboardhandlers "github.com/Black-And-White-Club/clip-arena/app/modules/leaderboard/infrastructure/handlers"
	leaderboarddb "github.com/Black-And-White-Club/clip-arena/app/modules/leaderboard/infrastructure/repositories"
	"github.com/Black-And-White-Club/clip-arena/pkg/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the global leaderboard.
type Module struct {
	Service  *leaderboardservice.LeaderboardService
	handlers leaderboardhandlers.Handlers
}

// NewLeaderboardModule creates and initializes the leaderboard module.
func NewLeaderboardModule(ctx context.Context, obs observability.Observability, db *bun.DB) *Module {
	logger := obs.Provider.Logger
	tracer := obs.Registry.Tracer

	logger.InfoContext(ctx, "leaderboard.NewLeaderboardModule initializing")

	metrics := observability.NewOperationMetrics(obs.Registry.Prometheus, "leaderboard")
	service := leaderboardservice.NewLeaderboardService(leaderboarddb.NewRepository(db), logger, metrics, tracer)

	return &Module{
		Service:  service,
		handlers: leaderboardhandlers.NewLeaderboardHandlers(service, logger, tracer),
	}
}

// RegisterRoutes mounts the leaderboard endpoints behind the auth gate.
func (m *Module) RegisterRoutes(r chi.Router, gate auth.Gate) {
	r.Group(func(r chi.Router) {
		r.Use(gate.Authenticate())
		r.Get("/api/leaderboard", m.handlers.HandleGetLeaderboard)
		r.Get("/api/leaderboard/chart.png", m.handlers.HandleGetLeaderboardChart)
	})
}
