package tournamenthandlers

import (
	"log/slog"
	"net/http"

	authhandlers "github.com/Black-And-White-Club/clip-arena/app/modules/auth/infrastructure/handlers"
	tournamentservice "github.com/Black-And-White-Club/clip-arena/app/modules/tournament/application"
	tournamentdomain "github.com/Black-And-White-Club/clip-arena/app/modules/tournament/domain"
	"github.com/Black-And-White-Club/clip-arena/pkg/httpx"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

// TournamentHandlers implements the Handlers interface.
type TournamentHandlers struct {
	service tournamentservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewTournamentHandlers creates a new TournamentHandlers.
func NewTournamentHandlers(service tournamentservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &TournamentHandlers{service: service, logger: logger, tracer: tracer}
}

type createRequest struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *TournamentHandlers) HandleCreateTournament(w http.ResponseWriter, r *http.Request) {
	actor, ok := authhandlers.ActorOrUnauthorized(w, r)
	if !ok {
		return
	}

	var req createRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	t, err := h.service.CreateTournament(r.Context(), actor, req.Name, tournamentdomain.Status(req.Status))
	if err != nil {
		httpx.Error(r.Context(), w, h.logger, err)
		return
	}
	httpx.OK(w, http.StatusCreated, t)
}

func (h *TournamentHandlers) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := authhandlers.ActorOrUnauthorized(w, r)
	if !ok {
		return
	}

	id, err := httpx.ParseUUID(chi.URLParam(r, "tournamentID"), "tournament id")
	if err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	var req statusRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	t, err := h.service.UpdateStatus(r.Context(), actor, id, tournamentdomain.Status(req.Status))
	if err != nil {
		httpx.Error(r.Context(), w, h.logger, err)
		return
	}
	httpx.OK(w, http.StatusOK, t)
}

func (h *TournamentHandlers) HandleGetTournament(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseUUID(chi.URLParam(r, "tournamentID"), "tournament id")
	if err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	t, err := h.service.GetTournament(r.Context(), id)
	if err != nil {
		httpx.Error(r.Context(), w, h.logger, err)
		return
	}
	httpx.OK(w, http.StatusOK, t)
}

func (h *TournamentHandlers) HandleListTournaments(w http.ResponseWriter, r *http.Request) {
	status := tournamentdomain.Status(r.URL.Query().Get("status"))

	list, err := h.service.ListTournaments(r.Context(), status)
	if err != nil {
		httpx.Error(r.Context(), w, h.logger, err)
		return
	}
	httpx.OK(w, http.StatusOK, list)
}
