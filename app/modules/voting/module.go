package voting

import (
	"context"
	"fmt"

	"github.com/Black-And-White-Club/clip-arena/app/modules/auth"
	votingservice "github.com/Black-And-White-Club/clip-arena/app/modules/voting/application"
	votingdomain "github.com/Black-And-White-Club/clip-arena/app/modules/voting/domain"
	votinghandlers "github.com/Black-And-White-Club/clip-arena/app/modules/voting/infrastructure/handlers"
	votingqueue "github.com/Black-And-White-Club/clip-arena/app/modules/voting/infrastructure/queue"
	votingdb "github.com/Black-And-White-Club/clip-arena/app/modules/voting/infrastructure/repositories"
	"github.com/Black-And-White-Club/clip-arena/config"
	"github.com/Black-And-White-Club/clip-arena/pkg/eventbus"
	"github.com/Black-And-White-Club/clip-arena/pkg/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the ranked voting module.
type Module struct {
	Service  *votingservice.VotingService
	Queue    votingqueue.QueueService
	handlers votinghandlers.Handlers
}

// NewVotingModule creates the voting module and its reconciliation queue.
func NewVotingModule(
	ctx context.Context,
	cfg *config.Config,
	obs observability.Observability,
	eventBus eventbus.EventBus,
	db *bun.DB,
	submissions votingservice.SubmissionStore,
) (*Module, error) {
	logger := obs.Provider.Logger
	tracer := obs.Registry.Tracer

	logger.InfoContext(ctx, "voting.NewVotingModule initializing")

	metrics := observability.NewOperationMetrics(obs.Registry.Prometheus, "voting")
	rules := votingdomain.Rules{
		PreventSelfVote: cfg.Voting.PreventSelfVote,
		ExclusiveRanks:  cfg.Voting.ExclusiveRanks,
	}
	service := votingservice.NewVotingService(votingdb.NewRepository(db), submissions, eventBus, rules, logger, metrics, tracer, db)

	queue, err := votingqueue.NewService(ctx, logger, cfg.Postgres.DSN, metrics, service, cfg.Voting.ReconcileInterval)
	if err != nil {
		return nil, fmt.Errorf("failed to create voting queue: %w", err)
	}

	return &Module{
		Service:  service,
		Queue:    queue,
		handlers: votinghandlers.NewVotingHandlers(service, logger, tracer),
	}, nil
}

// RegisterRoutes mounts the voting endpoints behind the auth gate.
func (m *Module) RegisterRoutes(r chi.Router, gate auth.Gate) {
	r.Group(func(r chi.Router) {
		r.Use(gate.Authenticate())
		r.Get("/api/tournaments/{tournamentID}/ranking", m.handlers.HandleGetRanking)

		r.Group(func(r chi.Router) {
			r.Use(gate.RequireApproved())
			r.Put("/api/submissions/{submissionID}/vote", m.handlers.HandleCastVote)
			r.Delete("/api/submissions/{submissionID}/vote", m.handlers.HandleRetractVote)
			r.Post("/api/submissions/{submissionID}/like", m.handlers.HandleToggleLike)
		})
	})
}
