package notificationdomain

import "github.com/google/uuid"

// Kind names what a notification is about.
type Kind string

const (
	KindReferralJoined      Kind = "referral_joined"
	KindSubmissionModerated Kind = "submission_moderated"
	KindAccountApproved     Kind = "account_approved"
)

// Notification is one outbound message to a single user.
type Notification struct {
	RecipientID uuid.UUID
	Kind        Kind
	Subject     string
	Body        string
}
