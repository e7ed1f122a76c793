package notificationhandlers

import (
	"context"
	"log/slog"

	accesscodedomain "github.com/Black-And-White-Club/clip-arena/app/modules/accesscode/domain"
	notificationservice "github.com/Black-And-White-Club/clip-arena/app/modules/notification/application"
	submissiondomain "github.com/Black-And-White-Club/clip-arena/app/modules/submission/domain"
	userdomain "github.com/Black-And-White-Club/clip-arena/app/modules/user/domain"
	"github.com/Black-And-White-Club/clip-arena/pkg/attr"
	"github.com/Black-And-White-Club/clip-arena/pkg/eventbus"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"
)

// Handlers consumes the events that produce notifications.
type Handlers interface {
	HandleCodeRedeemed(msg *message.Message) error
	HandleSubmissionModerated(msg *message.Message) error
	HandleUserApproved(msg *message.Message) error
}

// NotificationHandlers implements the Handlers interface.
type NotificationHandlers struct {
	service notificationservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewNotificationHandlers creates a new NotificationHandlers.
func NewNotificationHandlers(service notificationservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &NotificationHandlers{service: service, logger: logger, tracer: tracer}
}

func (h *NotificationHandlers) HandleCodeRedeemed(msg *message.Message) error {
	return handle(h, msg, accesscodedomain.CodeRedeemedTopic, h.service.NotifyCodeRedeemed)
}

func (h *NotificationHandlers) HandleSubmissionModerated(msg *message.Message) error {
	return handle(h, msg, submissiondomain.SubmissionModeratedTopic, h.service.NotifySubmissionModerated)
}

func (h *NotificationHandlers) HandleUserApproved(msg *message.Message) error {
	return handle(h, msg, userdomain.UserApprovedTopic, h.service.NotifyUserApproved)
}

// handle decodes and dispatches msg. Undecodable messages are logged and
// acked; retrying them cannot succeed.
func handle[T any](h *NotificationHandlers, msg *message.Message, topic string, fn func(context.Context, T)) error {
	ctx := eventbus.ContextFromMessage(msg)
	if h.tracer != nil {
		var span trace.Span
		ctx, span = h.tracer.Start(ctx, "notification."+topic)
		defer span.End()
	}

	payload, err := eventbus.Decode[T](msg)
	if err != nil {
		h.logger.ErrorContext(ctx, "Dropping undecodable event",
			attr.ExtractCorrelationID(ctx),
			attr.String("topic", topic),
			attr.String("message_id", msg.UUID),
			attr.Error(err),
		)
		return nil
	}

	fn(ctx, payload)
	return nil
}
