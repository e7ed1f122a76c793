package notification

import (
	"context"
	"fmt"

	notificationservice "github.com/Black-And-White-Club/clip-arena/app/modules/notification/application"
	notificationhandlers "github.com/Black-And-White-Club/clip-arena/app/modules/notification/infrastructure/handlers"
	notificationrouter "github.com/Black-And-White-Club/clip-arena/app/modules/notification/infrastructure/router"
	"github.com/Black-And-White-Club/clip-arena/pkg/eventbus"
	"github.com/Black-And-White-Club/clip-arena/pkg/observability"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// Module represents the notification module.
type Module struct {
	Service *notificationservice.NotificationService
	router  *notificationrouter.NotificationRouter
}

// NewNotificationModule builds the event router. The notifier defaults to
// the log notifier when nil.
func NewNotificationModule(
	ctx context.Context,
	obs observability.Observability,
	eventBus eventbus.EventBus,
	notifier notificationservice.Notifier,
) (*Module, error) {
	logger := obs.Provider.Logger
	tracer := obs.Registry.Tracer

	logger.InfoContext(ctx, "notification.NewNotificationModule initializing")

	if notifier == nil {
		notifier = notificationservice.NewLogNotifier(logger)
	}
	metrics := observability.NewOperationMetrics(obs.Registry.Prometheus, "notification")
	service := notificationservice.NewNotificationService(notifier, logger, metrics)

	router, err := message.NewRouter(message.RouterConfig{}, watermill.NewSlogLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create notification router: %w", err)
	}

	nr := notificationrouter.NewNotificationRouter(logger, router, eventBus, obs.Registry.Prometheus)
	if err := nr.Configure(ctx, notificationhandlers.NewNotificationHandlers(service, logger, tracer)); err != nil {
		return nil, fmt.Errorf("failed to configure notification router: %w", err)
	}

	return &Module{Service: service, router: nr}, nil
}

// Run blocks until ctx is cancelled or the router stops.
func (m *Module) Run(ctx context.Context) error {
	if err := m.router.Router.Run(ctx); err != nil {
		return fmt.Errorf("notification router stopped: %w", err)
	}
	return nil
}

// Running is closed once every consumer has subscribed.
func (m *Module) Running() chan struct{} {
	return m.router.Router.Running()
}

// Close stops the router.
func (m *Module) Close() error {
	return m.router.Close()
}
