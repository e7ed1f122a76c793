package submissionhandlers

import (
	"log/slog"
	"net/http"

	authhandlers "github.com/Black-And-White-Club/clip-arena/app/modules/auth/infrastructure/handlers"
	submissionservice "github.com/Black-And-White-Club/clip-arena/app/modules/submission/application"
	submissiondomain "github.com/Black-And-White-Club/clip-arena/app/modules/submission/domain"
	"github.com/Black-And-White-Club/clip-arena/pkg/httpx"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

// SubmissionHandlers implements the Handlers interface.
type SubmissionHandlers struct {
	service submissionservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewSubmissionHandlers creates a new SubmissionHandlers.
func NewSubmissionHandlers(service submissionservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &SubmissionHandlers{service: service, logger: logger, tracer: tracer}
}

type moderateRequest struct {
	Status string `json:"status"`
}

func (h *SubmissionHandlers) HandleSubmitClip(w http.ResponseWriter, r *http.Request) {
	actor, ok := authhandlers.ActorOrUnauthorized(w, r)
	if !ok {
		return
	}

	tournamentID, err := httpx.ParseUUID(chi.URLParam(r, "tournamentID"), "tournament id")
	if err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	var draft submissiondomain.Draft
	if err := httpx.DecodeJSON(r, &draft); err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	sub, err := h.service.SubmitClip(r.Context(), actor, tournamentID, draft)
	if err != nil {
		httpx.Error(r.Context(), w, h.logger, err)
		return
	}
	httpx.OK(w, http.StatusCreated, sub)
}

func (h *SubmissionHandlers) HandleListSubmissions(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := httpx.ParseUUID(chi.URLParam(r, "tournamentID"), "tournament id")
	if err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	status := submissiondomain.Status(r.URL.Query().Get("status"))
	subs, err := h.service.ListSubmissions(r.Context(), tournamentID, status)
	if err != nil {
		httpx.Error(r.Context(), w, h.logger, err)
		return
	}
	httpx.OK(w, http.StatusOK, subs)
}

func (h *SubmissionHandlers) HandleGetSubmission(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseUUID(chi.URLParam(r, "submissionID"), "submission id")
	if err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	sub, err := h.service.GetSubmission(r.Context(), id)
	if err != nil {
		httpx.Error(r.Context(), w, h.logger, err)
		return
	}
	httpx.OK(w, http.StatusOK, sub)
}

func (h *SubmissionHandlers) HandleModerateSubmission(w http.ResponseWriter, r *http.Request) {
	actor, ok := authhandlers.ActorOrUnauthorized(w, r)
	if !ok {
		return
	}

	id, err := httpx.ParseUUID(chi.URLParam(r, "submissionID"), "submission id")
	if err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	var req moderateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	sub, err := h.service.ModerateSubmission(r.Context(), actor, id, submissiondomain.Status(req.Status))
	if err != nil {
		httpx.Error(r.Context(), w, h.logger, err)
		return
	}
	httpx.OK(w, http.StatusOK, sub)
}
