package authhandlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	authservice "github.com/Black-And-White-Club/clip-arena/app/modules/auth/application"
	authdomain "github.com/Black-And-White-Club/clip-arena/app/modules/auth/domain"
	"github.com/Black-And-White-Club/clip-arena/pkg/attr"
	"github.com/Black-And-White-Club/clip-arena/pkg/domainerr"
	"github.com/Black-And-White-Club/clip-arena/pkg/httpx"
	"go.opentelemetry.io/otel/trace"
)

// AuthHandlers implements the Handlers interface.
type AuthHandlers struct {
	service authservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewAuthHandlers creates a new AuthHandlers instance.
func NewAuthHandlers(
	service authservice.Service,
	logger *slog.Logger,
	tracer trace.Tracer,
) Handlers {
	return &AuthHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

var (
	errForbiddenAdmin = domainerr.Forbidden("forbidden", "admin role required")
	errNotApproved    = domainerr.Forbidden("not_approved", "account is pending approval")
)

// Authenticate validates the Authorization bearer token on every request.
func (h *AuthHandlers) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, ok := bearerToken(r)
		if !ok {
			unauthorized(w, authservice.ErrMissingToken)
			return
		}

		actor, err := h.service.Authenticate(ctx, token)
		if err != nil {
			switch {
			case errors.Is(err, authservice.ErrMissingToken),
				errors.Is(err, authservice.ErrInvalidToken),
				errors.Is(err, authservice.ErrExpiredToken):
				unauthorized(w, err)
			default:
				httpx.Error(ctx, w, h.logger, err)
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(authdomain.ContextWithActor(ctx, actor)))
	})
}

// RequireApproved re-reads approval from the store; admins always pass.
func (h *AuthHandlers) RequireApproved(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		actor, ok := authdomain.ActorFromContext(ctx)
		if !ok {
			unauthorized(w, authservice.ErrMissingToken)
			return
		}
		if actor.IsAdmin() {
			next.ServeHTTP(w, r)
			return
		}

		approved, err := h.service.IsApproved(ctx, actor.UserID)
		if err != nil {
			httpx.Error(ctx, w, h.logger, err)
			return
		}
		if !approved {
			h.logger.InfoContext(ctx, "Rejected unapproved user",
				attr.ExtractCorrelationID(ctx),
				attr.UUID("user_id", actor.UserID),
				attr.String("path", r.URL.Path),
			)
			httpx.Error(ctx, w, h.logger, errNotApproved)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects callers without the admin role claim.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := authdomain.ActorFromContext(r.Context())
		if !ok {
			unauthorized(w, authservice.ErrMissingToken)
			return
		}
		if !actor.IsAdmin() {
			httpx.Error(r.Context(), w, nil, errForbiddenAdmin)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}

func unauthorized(w http.ResponseWriter, err error) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="clip-arena"`)
	httpx.JSON(w, http.StatusUnauthorized, map[string]any{
		"error": map[string]string{
			"kind":    "unauthorized",
			"code":    "unauthorized",
			"message": err.Error(),
		},
	})
}

// ActorOrUnauthorized returns the request's actor, writing a 401 when the
// request did not pass through Authenticate.
func ActorOrUnauthorized(w http.ResponseWriter, r *http.Request) (authdomain.Actor, bool) {
	actor, ok := authdomain.ActorFromContext(r.Context())
	if !ok {
		unauthorized(w, authservice.ErrMissingToken)
		return authdomain.Actor{}, false
	}
	return actor, true
}
