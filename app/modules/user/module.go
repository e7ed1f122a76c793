package user

import (
	"context"

	"github.com/Black-And-White-Club/clip-arena/app/modules/auth"
	userservice "github.com/Black-And-White-Club/clip-arena/app/modules/user/application"
	userhandlers "github.com/Black-And-White-Club/clip-arena/app/modules/user/infrastructure/handlers"
	userdb "github.com/Black-And-White-Club/clip-arena/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/clip-arena/pkg/eventbus"
	"github.com/Black-And-White-Club/clip-arena/pkg/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the user module.
type Module struct {
	Service  *userservice.UserService
	Repo     userdb.Repository
	handlers userhandlers.Handlers
}

// NewUserModule creates and initializes a new user module.
func NewUserModule(
	ctx context.Context,
	obs observability.Observability,
	eventBus eventbus.EventBus,
	db *bun.DB,
) *Module {
	logger := obs.Provider.Logger
	tracer := obs.Registry.Tracer

	logger.InfoContext(ctx, "user.NewUserModule initializing")

	repo := userdb.NewRepository(db)
	metrics := observability.NewOperationMetrics(obs.Registry.Prometheus, "user")
	service := userservice.NewUserService(repo, eventBus, logger, metrics, tracer, db)

	return &Module{
		Service:  service,
		Repo:     repo,
		handlers: userhandlers.NewUserHandlers(service, logger, tracer),
	}
}

// RegisterRoutes mounts the user endpoints behind the auth gate.
func (m *Module) RegisterRoutes(r chi.Router, gate auth.Gate) {
	r.Group(func(r chi.Router) {
		r.Use(gate.Authenticate())
		r.Get("/api/users/me", m.handlers.HandleGetMe)

		r.Group(func(r chi.Router) {
			r.Use(gate.RequireAdmin())
			r.Get("/api/admin/waitlist", m.handlers.HandleListWaitlist)
			r.Post("/api/admin/users/{userID}/approve", m.handlers.HandleApproveUser)
		})
	})
}
