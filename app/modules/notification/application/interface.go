package notificationservice

import (
	"context"

	accesscodedomain "github.com/Black-And-White-Club/clip-arena/app/modules/accesscode/domain"
	notificationdomain "github.com/Black-And-White-Club/clip-arena/app/modules/notification/domain"
	submissiondomain "github.com/Black-And-White-Club/clip-arena/app/modules/submission/domain"
	userdomain "github.com/Black-And-White-Club/clip-arena/app/modules/user/domain"
)

// Service turns domain events into user notifications. Delivery is best
// effort: failures are logged, never returned.
type Service interface {
	NotifyCodeRedeemed(ctx context.Context, payload accesscodedomain.CodeRedeemedPayload)
	NotifySubmissionModerated(ctx context.Context, payload submissiondomain.SubmissionModeratedPayload)
	NotifyUserApproved(ctx context.Context, payload userdomain.UserApprovedPayload)
}

// Notifier delivers a notification over some outbound channel.
type Notifier interface {
	Notify(ctx context.Context, n notificationdomain.Notification) error
}
