package leaderboardhandlers

import (
	"log/slog"
	"net/http"
	"strconv"

	leaderboardservice "github.com/Black-And-White-Club/clip-arena/app/modules/leaderboard/application"
	"github.com/Black-And-White-Club/clip-arena/pkg/attr"
	"github.com/Black-And-White-Club/clip-arena/pkg/httpx"
	"go.opentelemetry.io/otel/trace"
)

// LeaderboardHandlers implements the Handlers interface.
type LeaderboardHandlers struct {
	service leaderboardservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewLeaderboardHandlers creates a new LeaderboardHandlers.
func NewLeaderboardHandlers(service leaderboardservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &LeaderboardHandlers{service: service, logger: logger, tracer: tracer}
}

func (h *LeaderboardHandlers) HandleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.ComputeLeaderboard(r.Context())
	if err != nil {
		httpx.Error(r.Context(), w, h.logger, err)
		return
	}
	httpx.OK(w, http.StatusOK, entries)
}

func (h *LeaderboardHandlers) HandleGetLeaderboardChart(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			httpx.BadRequest(w, "limit must be a positive integer")
			return
		}
		limit = n
	}

	data, err := h.service.RenderLeaderboardChart(r.Context(), limit)
	if err != nil {
		httpx.Error(r.Context(), w, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to write leaderboard chart", attr.Error(err))
	}
}
