package notificationrouter

import (
	"context"
	"log/slog"

	accesscodedomain "github.com/Black-And-White-Club/clip-arena/app/modules/accesscode/domain"
	notificationhandlers "github.com/Black-And-White-Club/clip-arena/app/modules/notification/infrastructure/handlers"
	submissiondomain "github.com/Black-And-White-Club/clip-arena/app/modules/submission/domain"
	userdomain "github.com/Black-And-White-Club/clip-arena/app/modules/user/domain"
	"github.com/Black-And-White-Club/clip-arena/pkg/eventbus"
	"github.com/ThreeDotsLabs/watermill/components/metrics"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// NotificationRouter wires notification handlers onto a watermill router.
type NotificationRouter struct {
	logger         *slog.Logger
	Router         *message.Router
	subscriber     eventbus.EventBus
	metricsBuilder *metrics.PrometheusMetricsBuilder
}

// NewNotificationRouter creates a new NotificationRouter. A nil registry
// disables router metrics.
func NewNotificationRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber eventbus.EventBus,
	registry *prometheus.Registry,
) *NotificationRouter {
	var metricsBuilder *metrics.PrometheusMetricsBuilder
	if registry != nil {
		b := metrics.NewPrometheusMetricsBuilder(registry, "notification", "")
		metricsBuilder = &b
	}

	return &NotificationRouter{
		logger:         logger,
		Router:         router,
		subscriber:     subscriber,
		metricsBuilder: metricsBuilder,
	}
}

// Configure adds middleware and registers the consumers.
func (r *NotificationRouter) Configure(_ context.Context, handlers notificationhandlers.Handlers) error {
	if r.metricsBuilder != nil {
		r.metricsBuilder.AddPrometheusRouterMetrics(r.Router)
	}

	r.Router.AddMiddleware(
		middleware.CorrelationID,
		middleware.Recoverer,
	)

	r.Router.AddConsumerHandler("notification."+accesscodedomain.CodeRedeemedTopic, accesscodedomain.CodeRedeemedTopic, r.subscriber, handlers.HandleCodeRedeemed)
	r.Router.AddConsumerHandler("notification."+submissiondomain.SubmissionModeratedTopic, submissiondomain.SubmissionModeratedTopic, r.subscriber, handlers.HandleSubmissionModerated)
	r.Router.AddConsumerHandler("notification."+userdomain.UserApprovedTopic, userdomain.UserApprovedTopic, r.subscriber, handlers.HandleUserApproved)
	return nil
}

// Close stops the router.
func (r *NotificationRouter) Close() error {
	return r.Router.Close()
}
