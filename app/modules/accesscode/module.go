package accesscode

import (
	"context"

	accesscodeservice "github.com/Black-And-White-Club/clip-arena/app/modules/accesscode/application"
	accesscodehandlers "github.com/Black-And-White-Club/clip-arena/app/modules/accesscode/infrastructure/handlers"
	accesscodedb "github.com/Black-And-White-Club/clip-arena/app/modules/accesscode/infrastructure/repositories"
	"github.com/Black-And-White-Club/clip-arena/app/modules/auth"
	"github.com/Black-And-White-Club/clip-arena/config"
	"github.com/Black-And-White-Club/clip-arena/pkg/eventbus"
	"github.com/Black-And-White-Club/clip-arena/pkg/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the access code ledger.
type Module struct {
	Service  *accesscodeservice.AccessCodeService
	handlers accesscodehandlers.Handlers
}

// NewAccessCodeModule creates and initializes the access code module.
func NewAccessCodeModule(
	ctx context.Context,
	cfg *config.Config,
	obs observability.Observability,
	eventBus eventbus.EventBus,
	db *bun.DB,
	users accesscodeservice.UserStore,
) *Module {
	logger := obs.Provider.Logger
	tracer := obs.Registry.Tracer

	logger.InfoContext(ctx, "accesscode.NewAccessCodeModule initializing")

	metrics := observability.NewOperationMetrics(obs.Registry.Prometheus, "accesscode")
	service := accesscodeservice.NewAccessCodeService(
		accesscodedb.NewRepository(db),
		users,
		eventBus,
		accesscodeservice.Options{
			CodeLength:  cfg.AccessCodes.Length,
			MaxQuantity: cfg.AccessCodes.MaxQuantity,
		},
		logger,
		metrics,
		tracer,
		db,
	)

	return &Module{
		Service:  service,
		handlers: accesscodehandlers.NewAccessCodeHandlers(service, logger, tracer),
	}
}

// RegisterRoutes mounts the access code endpoints behind the auth gate.
// Validate and redeem are throttled before authentication so rejected
// attempts never reach the user store.
func (m *Module) RegisterRoutes(r chi.Router, gate auth.Gate) {
	r.Group(func(r chi.Router) {
		r.Use(gate.RedeemRateLimit())
		r.Use(gate.Authenticate())
		r.Post("/api/access-codes/validate", m.handlers.HandleValidateCode)
		r.Post("/api/access-codes/redeem", m.handlers.HandleRedeemCode)
	})

	r.Group(func(r chi.Router) {
		r.Use(gate.Authenticate())
		r.Get("/api/access-codes", m.handlers.HandleListCodes)
		r.Get("/api/access-codes/export", m.handlers.HandleExportCodes)
		r.Get("/api/users/me/referrals", m.handlers.HandleGetReferrals)

		r.Group(func(r chi.Router) {
			r.Use(gate.RequireApproved())
			r.Post("/api/access-codes", m.handlers.HandleGenerateCodes)
		})
	})
}
