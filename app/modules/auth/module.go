package auth

import (
	"context"
	"log/slog"
	"net/http"

	authservice "github.com/Black-And-White-Club/clip-arena/app/modules/auth/application"
	authhandlers "github.com/Black-And-White-Club/clip-arena/app/modules/auth/infrastructure/handlers"
	authjwt "github.com/Black-And-White-Club/clip-arena/app/modules/auth/infrastructure/jwt"
	"github.com/Black-And-White-Club/clip-arena/config"
	"github.com/Black-And-White-Club/clip-arena/pkg/observability"
	"golang.org/x/time/rate"
)

// Module is the identity gate: it turns bearer tokens into actors and guards
// routes by role and approval.
type Module struct {
	service       authservice.Service
	handlers      authhandlers.Handlers
	redeemLimiter *authhandlers.ClientLimiter
	logger        *slog.Logger
}

// NewModule creates a new auth module.
func NewModule(
	ctx context.Context,
	cfg *config.Config,
	obs observability.Observability,
	users authservice.UserDirectory,
) *Module {
	logger := obs.Provider.Logger
	tracer := obs.Registry.Tracer

	logger.InfoContext(ctx, "Initializing auth module")

	jwtProvider := authjwt.NewProvider(cfg.JWT.Secret, cfg.JWT.Issuer)
	service := authservice.NewService(jwtProvider, users, logger, tracer)
	handlers := authhandlers.NewAuthHandlers(service, logger, tracer)

	return &Module{
		service:       service,
		handlers:      handlers,
		redeemLimiter: authhandlers.NewClientLimiter(rate.Limit(cfg.HTTP.RedeemRatePerSecond), cfg.HTTP.RedeemBurst),
		logger:        logger,
	}
}

// Service returns the auth service for use by other modules.
func (m *Module) Service() authservice.Service {
	return m.service
}

// Authenticate is the bearer token middleware.
func (m *Module) Authenticate() func(next http.Handler) http.Handler {
	return m.handlers.Authenticate
}

// RequireApproved is the waitlist gate middleware.
func (m *Module) RequireApproved() func(next http.Handler) http.Handler {
	return m.handlers.RequireApproved
}

// RequireAdmin is the admin role gate middleware.
func (m *Module) RequireAdmin() func(next http.Handler) http.Handler {
	return authhandlers.RequireAdmin
}

// RedeemRateLimit throttles code validation and redemption per client IP.
func (m *Module) RedeemRateLimit() func(next http.Handler) http.Handler {
	return authhandlers.RateLimit(m.redeemLimiter, m.logger)
}

// CORS applies the configured origin allow-list.
func CORS(cfg *config.Config) func(next http.Handler) http.Handler {
	return authhandlers.AllowOrigins(cfg.HTTP.AllowedOrigins)
}

// Gate is the set of route guards other modules mount their routes behind.
type Gate interface {
	Authenticate() func(next http.Handler) http.Handler
	RequireApproved() func(next http.Handler) http.Handler
	RequireAdmin() func(next http.Handler) http.Handler
	RedeemRateLimit() func(next http.Handler) http.Handler
}

var _ Gate = (*Module)(nil)
