package userdomain

import (
	"time"

	"github.com/google/uuid"
)

// UserApprovedTopic is published when a moderator approves a waitlisted user.
const UserApprovedTopic = "user.approved.v1"

// UserApprovedPayload is the body of UserApprovedTopic.
type UserApprovedPayload struct {
	UserID      uuid.UUID `json:"user_id"`
	DisplayName string    `json:"display_name"`
	ApprovedBy  uuid.UUID `json:"approved_by"`
	ApprovedAt  time.Time `json:"approved_at"`
}
