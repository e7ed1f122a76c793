package notificationservice

import (
	"context"
	"log/slog"

	notificationdomain "github.com/Black-And-White-Club/clip-arena/app/modules/notification/domain"
	"github.com/Black-And-White-Club/clip-arena/pkg/attr"
)

// LogNotifier writes notifications to the log. It stands in for the mail
// relay, which lives outside this service.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, msg notificationdomain.Notification) error {
	n.logger.InfoContext(ctx, "Outbound notification",
		attr.ExtractCorrelationID(ctx),
		attr.UUID("recipient_id", msg.RecipientID),
		attr.String("kind", string(msg.Kind)),
		attr.String("subject", msg.Subject),
	)
	return nil
}
