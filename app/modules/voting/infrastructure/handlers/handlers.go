package votinghandlers

import (
	"log/slog"
	"net/http"

	authhandlers "github.com/Black-And-White-Club/clip-arena/app/modules/auth/infrastructure/handlers"
	votingservice "github.com/Black-And-White-Club/clip-arena/app/modules/voting/application"
	"github.com/Black-And-White-Club/clip-arena/pkg/httpx"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

// VotingHandlers implements the Handlers interface.
type VotingHandlers struct {
	service votingservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewVotingHandlers creates a new VotingHandlers.
func NewVotingHandlers(service votingservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &VotingHandlers{service: service, logger: logger, tracer: tracer}
}

type voteRequest struct {
	Rank int `json:"rank"`
}

func (h *VotingHandlers) HandleCastVote(w http.ResponseWriter, r *http.Request) {
	actor, ok := authhandlers.ActorOrUnauthorized(w, r)
	if !ok {
		return
	}

	submissionID, err := httpx.ParseUUID(chi.URLParam(r, "submissionID"), "submission id")
	if err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	var req voteRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	result, err := h.service.CastVote(r.Context(), actor, submissionID, req.Rank)
	if err != nil {
		httpx.Error(r.Context(), w, h.logger, err)
		return
	}
	httpx.OK(w, http.StatusOK, result)
}

func (h *VotingHandlers) HandleRetractVote(w http.ResponseWriter, r *http.Request) {
	actor, ok := authhandlers.ActorOrUnauthorized(w, r)
	if !ok {
		return
	}

	submissionID, err := httpx.ParseUUID(chi.URLParam(r, "submissionID"), "submission id")
	if err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	result, err := h.service.RetractVote(r.Context(), actor, submissionID)
	if err != nil {
		httpx.Error(r.Context(), w, h.logger, err)
		return
	}
	httpx.OK(w, http.StatusOK, result)
}

func (h *VotingHandlers) HandleToggleLike(w http.ResponseWriter, r *http.Request) {
	actor, ok := authhandlers.ActorOrUnauthorized(w, r)
	if !ok {
		return
	}

	submissionID, err := httpx.ParseUUID(chi.URLParam(r, "submissionID"), "submission id")
	if err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	result, err := h.service.ToggleLike(r.Context(), actor, submissionID)
	if err != nil {
		httpx.Error(r.Context(), w, h.logger, err)
		return
	}
	httpx.OK(w, http.StatusOK, result)
}

func (h *VotingHandlers) HandleGetRanking(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := httpx.ParseUUID(chi.URLParam(r, "tournamentID"), "tournament id")
	if err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	ranking, err := h.service.GetTournamentRanking(r.Context(), tournamentID)
	if err != nil {
		httpx.Error(r.Context(), w, h.logger, err)
		return
	}
	httpx.OK(w, http.StatusOK, ranking)
}
