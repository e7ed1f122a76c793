package submission

import (
	"context"

	"github.com/Black-And-White-Club/clip-arena/app/modules/auth"
	submissionservice "github.com/Black-And-White-Club/clip-arena/app/modules/submission/application"
	submissionhandlers "github.com/Black-And-White-Club/clip-arena/app/modules/submission/infrastructure/handlers"
	submissiondb "github.com/Black-And-White-Club/clip-arena/app/modules/submission/infrastructure/repositories"
	"github.com/Black-And-White-Club/clip-arena/pkg/eventbus"
	"github.com/Black-And-White-Club/clip-arena/pkg/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the submission lifecycle module.
type Module struct {
	Service  *submissionservice.SubmissionService
	Repo     submissiondb.Repository
	handlers submissionhandlers.Handlers
}

// NewSubmissionModule creates and initializes a new submission module.
func NewSubmissionModule(
	ctx context.Context,
	obs observability.Observability,
	eventBus eventbus.EventBus,
	db *bun.DB,
	tournaments submissionservice.TournamentReader,
) *Module {
	logger := obs.Provider.Logger
	tracer := obs.Registry.Tracer

	logger.InfoContext(ctx, "submission.NewSubmissionModule initializing")

	repo := submissiondb.NewRepository(db)
	metrics := observability.NewOperationMetrics(obs.Registry.Prometheus, "submission")
	service := submissionservice.NewSubmissionService(repo, tournaments, eventBus, logger, metrics, tracer, db)

	return &Module{
		Service:  service,
		Repo:     repo,
		handlers: submissionhandlers.NewSubmissionHandlers(service, logger, tracer),
	}
}

// RegisterRoutes mounts the submission endpoints behind the auth gate.
func (m *Module) RegisterRoutes(r chi.Router, gate auth.Gate) {
	r.Group(func(r chi.Router) {
		r.Use(gate.Authenticate())
		r.Get("/api/tournaments/{tournamentID}/submissions", m.handlers.HandleListSubmissions)
		r.Get("/api/submissions/{submissionID}", m.handlers.HandleGetSubmission)

		r.Group(func(r chi.Router) {
			r.Use(gate.RequireApproved())
			r.Post("/api/tournaments/{tournamentID}/submissions", m.handlers.HandleSubmitClip)
		})

		r.Group(func(r chi.Router) {
			r.Use(gate.RequireAdmin())
			r.Patch("/api/admin/submissions/{submissionID}", m.handlers.HandleModerateSubmission)
		})
	})
}
