package app

import (
	"context"
	"net/http"
	"time"

	"github.com/Black-And-White-Club/clip-arena/app/modules/auth"
	"github.com/Black-And-White-Club/clip-arena/pkg/attr"
	"github.com/Black-And-White-Club/clip-arena/pkg/httpx"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// routeRegistrar is implemented by every module that exposes HTTP routes.
type routeRegistrar interface {
	RegisterRoutes(r chi.Router, gate auth.Gate)
}

// Router builds the HTTP handler for all modules.
func (app *App) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RealIP,
		httpx.CorrelationMiddleware,
		middleware.Recoverer,
		auth.CORS(app.Config),
	)

	r.Get("/healthz", app.handleHealth)
	if app.Config.Observability.MetricsAddress == "" {
		r.Handle("/metrics", app.metricsHandler())
	}

	gate := app.Modules.Auth
	for _, m := range []routeRegistrar{
		app.Modules.User,
		app.Modules.AccessCode,
		app.Modules.Tournament,
		app.Modules.Submission,
		app.Modules.Voting,
		app.Modules.Leaderboard,
	} {
		m.RegisterRoutes(r, gate)
	}
	return r
}

func (app *App) metricsHandler() http.Handler {
	return promhttp.HandlerFor(app.Observability.Registry.Prometheus, promhttp.HandlerOpts{})
}

func (app *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := app.DB.PingContext(ctx); err != nil {
		app.Observability.Provider.Logger.WarnContext(ctx, "Health check failed", attr.Error(err))
		httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
