package accesscodedomain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// CodesGeneratedTopic is published after a batch of codes is issued.
	CodesGeneratedTopic = "accesscode.generated.v1"
	// CodeRedeemedTopic is published after a successful redemption.
	CodeRedeemedTopic = "accesscode.redeemed.v1"
)

// CodesGeneratedPayload is the body of CodesGeneratedTopic.
type CodesGeneratedPayload struct {
	IssuerID   uuid.UUID  `json:"issuer_id"`
	IssuerRole string     `json:"issuer_role"`
	Count      int        `json:"count"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
}

// CodeRedeemedPayload is the body of CodeRedeemedTopic.
type CodeRedeemedPayload struct {
	AccessCodeID uuid.UUID  `json:"access_code_id"`
	RedeemerID   uuid.UUID  `json:"redeemer_id"`
	IssuerID     uuid.UUID  `json:"issuer_id"`
	ReferrerID   *uuid.UUID `json:"referrer_id,omitempty"`
	RedeemedAt   time.Time  `json:"redeemed_at"`
}
