package tournament

import (
	"context"

	"github.com/Black-And-White-Club/clip-arena/app/modules/auth"
	tournamentservice "github.com/Black-And-White-Club/clip-arena/app/modules/tournament/application"
	tournamenthandlers "github.com/Black-And-White-Club/clip-arena/app/modules/tournament/infrastructure/handlers"
	tournamentdb "github.com/Black-And-White-Club/clip-arena/app/modules/tournament/infrastructure/repositories"
	"github.com/Black-And-White-Club/clip-arena/pkg/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the tournament module.
type Module struct {
	Service  *tournamentservice.TournamentService
	Repo     tournamentdb.Repository
	handlers tournamenthandlers.Handlers
}

// NewTournamentModule creates and initializes a new tournament module.
func NewTournamentModule(ctx context.Context, obs observability.Observability, db *bun.DB) *Module {
	logger := obs.Provider.Logger
	tracer := obs.Registry.Tracer

	logger.InfoContext(ctx, "tournament.NewTournamentModule initializing")

	repo := tournamentdb.NewRepository(db)
	metrics := observability.NewOperationMetrics(obs.Registry.Prometheus, "tournament")
	service := tournamentservice.NewTournamentService(repo, logger, metrics, tracer, db)

	return &Module{
		Service:  service,
		Repo:     repo,
		handlers: tournamenthandlers.NewTournamentHandlers(service, logger, tracer),
	}
}

// RegisterRoutes mounts the tournament endpoints behind the auth gate.
func (m *Module) RegisterRoutes(r chi.Router, gate auth.Gate) {
	r.Group(func(r chi.Router) {
		r.Use(gate.Authenticate())
		r.Get("/api/tournaments", m.handlers.HandleListTournaments)
		r.Get("/api/tournaments/{tournamentID}", m.handlers.HandleGetTournament)

		r.Group(func(r chi.Router) {
			r.Use(gate.RequireAdmin())
			r.Post("/api/admin/tournaments", m.handlers.HandleCreateTournament)
			r.Patch("/api/admin/tournaments/{tournamentID}", m.handlers.HandleUpdateStatus)
		})
	})
}
