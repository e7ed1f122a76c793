package accesscodedb

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines the contract for access code persistence.
type Repository interface {
	// InsertCode stores a new code. It returns false without error when the
	// code string collides with an existing one.
	InsertCode(ctx context.Context, db bun.IDB, code *AccessCode) (bool, error)

	// GetByCode looks up a normalized code string.
	GetByCode(ctx context.Context, db bun.IDB, code string) (*AccessCode, error)

	// MarkRedeemed records the redeemer only if the code is still unused and
	// unexpired at the given instant. It returns false when another redeemer
	// won or the code lapsed.
	MarkRedeemed(ctx context.Context, db bun.IDB, id, redeemerID uuid.UUID, at time.Time) (bool, error)

	// ListByCreator returns codes issued by a user, newest first.
	ListByCreator(ctx context.Context, db bun.IDB, creatorID uuid.UUID, limit int) ([]AccessCode, error)

	// CreateReferral records a referral. A user is referred at most once;
	// false means the user already had a referrer and nothing was written.
	CreateReferral(ctx context.Context, db bun.IDB, referral *Referral) (bool, error)

	// ListReferrals returns users referred by referrerID, oldest first.
	ListReferrals(ctx context.Context, db bun.IDB, referrerID uuid.UUID) ([]ReferredUserRow, error)
}
