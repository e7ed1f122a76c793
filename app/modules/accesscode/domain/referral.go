package accesscodedomain

import (
	"time"

	"github.com/google/uuid"
)

// Referral attributes a redeemer to the ordinary user whose code they used.
type Referral struct {
	ReferrerID     uuid.UUID `json:"referrer_id"`
	ReferredUserID uuid.UUID `json:"referred_user_id"`
	AccessCodeID   uuid.UUID `json:"access_code_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// ReferredUser is one row of a referrer's stats.
type ReferredUser struct {
	UserID      uuid.UUID `json:"user_id"`
	DisplayName string    `json:"display_name"`
	JoinedAt    time.Time `json:"joined_at"`
}

// ReferralStats is the read-side view of a user's referrals.
type ReferralStats struct {
	ReferrerID    uuid.UUID      `json:"referrer_id"`
	ReferredCount int            `json:"referred_count"`
	Referred      []ReferredUser `json:"referred"`
}

// Validation is the outcome of a successful validate call.
type Validation struct {
	OK        bool       `json:"ok"`
	Code      string     `json:"code"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// Redemption is the outcome of a successful redeem call.
type Redemption struct {
	AccessCodeID uuid.UUID  `json:"access_code_id"`
	Code         string     `json:"code"`
	RedeemedAt   time.Time  `json:"redeemed_at"`
	ReferrerID   *uuid.UUID `json:"referrer_id,omitempty"`
}
