package notificationservice

import (
	"context"
	"fmt"
	"log/slog"

	accesscodedomain "github.com/Black-And-White-Club/clip-arena/app/modules/accesscode/domain"
	notificationdomain "github.com/Black-And-White-Club/clip-arena/app/modules/notification/domain"
	submissiondomain "github.com/Black-And-White-Club/clip-arena/app/modules/submission/domain"
	userdomain "github.com/Black-And-White-Club/clip-arena/app/modules/user/domain"
	"github.com/Black-And-White-Club/clip-arena/pkg/attr"
	"github.com/Black-And-White-Club/clip-arena/pkg/observability"
)

const serviceName = "NotificationService"

// NotificationService implements the Service interface.
type NotificationService struct {
	notifier Notifier
	logger   *slog.Logger
	metrics  observability.OperationMetrics
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(notifier Notifier, logger *slog.Logger, metrics observability.OperationMetrics) *NotificationService {
	if metrics == nil {
		metrics = observability.NewNoopMetrics()
	}
	return &NotificationService{notifier: notifier, logger: logger, metrics: metrics}
}

// NotifyCodeRedeemed tells the referrer that someone joined with their code.
// Redemptions of admin-issued codes have no referrer and are skipped.
func (s *NotificationService) NotifyCodeRedeemed(ctx context.Context, p accesscodedomain.CodeRedeemedPayload) {
	if p.ReferrerID == nil {
		return
	}
	s.send(ctx, "NotifyCodeRedeemed", notificationdomain.Notification{
		RecipientID: *p.ReferrerID,
		Kind:        notificationdomain.KindReferralJoined,
		Subject:     "Someone joined with your invite",
		Body:        "A new player redeemed one of your access codes and can now compete.",
	})
}

// NotifySubmissionModerated tells the author about an approve or reject
// decision. Resets to pending are internal and not announced.
func (s *NotificationService) NotifySubmissionModerated(ctx context.Context, p submissiondomain.SubmissionModeratedPayload) {
	if p.NewStatus == p.PreviousStatus || p.NewStatus == submissiondomain.StatusPending {
		return
	}
	s.send(ctx, "NotifySubmissionModerated", notificationdomain.Notification{
		RecipientID: p.AuthorID,
		Kind:        notificationdomain.KindSubmissionModerated,
		Subject:     fmt.Sprintf("Your clip %q was %s", p.Title, p.NewStatus),
		Body:        moderationBody(p.NewStatus),
	})
}

func (s *NotificationService) NotifyUserApproved(ctx context.Context, p userdomain.UserApprovedPayload) {
	s.send(ctx, "NotifyUserApproved", notificationdomain.Notification{
		RecipientID: p.UserID,
		Kind:        notificationdomain.KindAccountApproved,
		Subject:     "You're off the waitlist",
		Body:        "Your account was approved. You can now submit clips and vote.",
	})
}

func (s *NotificationService) send(ctx context.Context, operation string, n notificationdomain.Notification) {
	s.metrics.RecordOperationAttempt(ctx, operation, serviceName)
	if err := s.notifier.Notify(ctx, n); err != nil {
		s.metrics.RecordOperationFailure(ctx, operation, serviceName)
		s.logger.WarnContext(ctx, "Failed to deliver notification",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operation),
			attr.UUID("recipient_id", n.RecipientID),
			attr.Error(err),
		)
		return
	}
	s.metrics.RecordOperationSuccess(ctx, operation, serviceName)
}

func moderationBody(status submissiondomain.Status) string {
	if status == submissiondomain.StatusApproved {
		return "Your clip is live and open for votes."
	}
	return "Your clip did not pass moderation and will not be ranked."
}
