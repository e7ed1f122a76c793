package userhandlers

import (
	"log/slog"
	"net/http"
	"strconv"

	authhandlers "github.com/Black-And-White-Club/clip-arena/app/modules/auth/infrastructure/handlers"
	userservice "github.com/Black-And-White-Club/clip-arena/app/modules/user/application"
	"github.com/Black-And-White-Club/clip-arena/pkg/httpx"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

// UserHandlers implements the Handlers interface.
type UserHandlers struct {
	service userservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewUserHandlers creates a new UserHandlers.
func NewUserHandlers(service userservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &UserHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

// HandleGetMe returns the caller's account.
func (h *UserHandlers) HandleGetMe(w http.ResponseWriter, r *http.Request) {
	actor, ok := authhandlers.ActorOrUnauthorized(w, r)
	if !ok {
		return
	}

	user, err := h.service.GetUser(r.Context(), actor.UserID)
	if err != nil {
		httpx.Error(r.Context(), w, h.logger, err)
		return
	}
	httpx.OK(w, http.StatusOK, user)
}

// HandleListWaitlist returns waitlisted users for moderators.
func (h *UserHandlers) HandleListWaitlist(w http.ResponseWriter, r *http.Request) {
	actor, ok := authhandlers.ActorOrUnauthorized(w, r)
	if !ok {
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			httpx.BadRequest(w, "limit must be a positive integer")
			return
		}
		limit = n
	}

	users, err := h.service.ListWaitlist(r.Context(), actor, limit)
	if err != nil {
		httpx.Error(r.Context(), w, h.logger, err)
		return
	}
	httpx.OK(w, http.StatusOK, users)
}

// HandleApproveUser approves a waitlisted user.
func (h *UserHandlers) HandleApproveUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := authhandlers.ActorOrUnauthorized(w, r)
	if !ok {
		return
	}

	userID, err := httpx.ParseUUID(chi.URLParam(r, "userID"), "user id")
	if err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	user, err := h.service.ApproveUser(r.Context(), actor, userID)
	if err != nil {
		httpx.Error(r.Context(), w, h.logger, err)
		return
	}
	httpx.OK(w, http.StatusOK, user)
}
