package accesscodeservice

import (
	"context"
	"time"

	accesscodedomain "github.com/Black-And-White-Club/clip-arena/app/modules/accesscode/domain"
	authdomain "github.com/Black-And-White-Club/clip-arena/app/modules/auth/domain"
	userdb "github.com/Black-And-White-Club/clip-arena/app/modules/user/infrastructure/repositories"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Service defines the access code ledger operations.
type Service interface {
	// GenerateCodes issues quantity codes. Admin codes expire after
	// expiryDays; codes from approved users never expire.
	GenerateCodes(ctx context.Context, actor authdomain.Actor, quantity, expiryDays int) ([]accesscodedomain.AccessCode, error)

	// ValidateCode checks a code without consuming it.
	ValidateCode(ctx context.Context, code string) (*accesscodedomain.Validation, error)

	// RedeemCode consumes a code for redeemer, approves them and records the
	// referral when the issuer is an ordinary user.
	RedeemCode(ctx context.Context, code string, redeemer authdomain.Actor) (*accesscodedomain.Redemption, error)

	// ListCodes returns the actor's own codes, newest first.
	ListCodes(ctx context.Context, actor authdomain.Actor) ([]accesscodedomain.AccessCode, error)

	// ExportCodesXLSX renders the actor's codes as a spreadsheet.
	ExportCodesXLSX(ctx context.Context, actor authdomain.Actor) ([]byte, error)

	// GetReferralStats lists the users referred by userID.
	GetReferralStats(ctx context.Context, userID uuid.UUID) (*accesscodedomain.ReferralStats, error)
}

// UserStore is the slice of the user repository the ledger writes through.
type UserStore interface {
	GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*userdb.User, error)
	MarkApproved(ctx context.Context, db bun.IDB, id uuid.UUID, at time.Time) error
}
