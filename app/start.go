package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Black-And-White-Club/clip-arena/pkg/attr"
	"golang.org/x/sync/errgroup"
)

// Run starts the background workers and the HTTP server and blocks until ctx
// is cancelled or one of them fails. Shutdown is bounded by the configured
// timeout.
func (app *App) Run(ctx context.Context) error {
	logger := app.Observability.Provider.Logger

	if err := app.Modules.Voting.Queue.Start(ctx); err != nil {
		return fmt.Errorf("failed to start voting queue: %w", err)
	}

	servers := []*http.Server{{Addr: app.Config.HTTP.Addr, Handler: app.Router()}}
	if addr := app.Config.Observability.MetricsAddress; addr != "" {
		servers = append(servers, &http.Server{Addr: addr, Handler: app.metricsHandler()})
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return app.Modules.Notification.Run(gctx)
	})

	for _, srv := range servers {
		g.Go(func() error {
			logger.InfoContext(ctx, "HTTP server listening", attr.String("addr", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("http server %s: %w", srv.Addr, err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), app.Config.HTTP.ShutdownTimeout)
		defer cancel()

		var errs []error
		for _, srv := range servers {
			errs = append(errs, srv.Shutdown(shutdownCtx))
		}
		errs = append(errs, app.Modules.Voting.Queue.Stop(shutdownCtx))
		errs = append(errs, app.Modules.Notification.Close())
		return errors.Join(errs...)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
