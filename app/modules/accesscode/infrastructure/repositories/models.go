package accesscodedb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// AccessCode is the persisted form of a single-use invitation.
type AccessCode struct {
	bun.BaseModel `bun:"table:access_codes,alias:ac"`
	ID            uuid.UUID  `bun:"id,pk,type:uuid" json:"id"`
	Code          string     `bun:"code,notnull,unique" json:"code"`
	CreatedBy     uuid.UUID  `bun:"created_by,type:uuid,notnull" json:"created_by"`
	IssuerRole    string     `bun:"issuer_role,notnull" json:"issuer_role"`
	ExpiresAt     *time.Time `bun:"expires_at,nullzero" json:"expires_at,omitempty"`
	UsedBy        *uuid.UUID `bun:"used_by,type:uuid,nullzero" json:"used_by,omitempty"`
	UsedAt        *time.Time `bun:"used_at,nullzero" json:"used_at,omitempty"`
	CreatedAt     time.Time  `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}

// Referral links a redeemer to the ordinary user who issued their code.
type Referral struct {
	bun.BaseModel  `bun:"table:user_referrals,alias:ur"`
	ID             uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	ReferrerID     uuid.UUID `bun:"referrer_id,type:uuid,notnull" json:"referrer_id"`
	ReferredUserID uuid.UUID `bun:"referred_user_id,type:uuid,notnull,unique" json:"referred_user_id"`
	AccessCodeID   uuid.UUID `bun:"access_code_id,type:uuid,notnull" json:"access_code_id"`
	CreatedAt      time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}

// ReferredUserRow is the scan target for the referral stats join.
type ReferredUserRow struct {
	UserID      uuid.UUID `bun:"user_id"`
	DisplayName string    `bun:"display_name"`
	JoinedAt    time.Time `bun:"joined_at"`
}
