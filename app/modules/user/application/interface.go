package userservice

import (
	"context"

	authdomain "github.com/Black-And-White-Club/clip-arena/app/modules/auth/domain"
	userdomain "github.com/Black-And-White-Club/clip-arena/app/modules/user/domain"
	"github.com/google/uuid"
)

// Service defines the user account operations.
type Service interface {
	// EnsureUser creates the account on first authentication and refreshes the
	// role and display name afterwards.
	EnsureUser(ctx context.Context, actor authdomain.Actor) error

	// IsApproved reports whether the user has left the waitlist.
	IsApproved(ctx context.Context, userID uuid.UUID) (bool, error)

	// GetUser returns a single account.
	GetUser(ctx context.Context, userID uuid.UUID) (*userdomain.User, error)

	// ListWaitlist returns unapproved users, oldest first. Admin only.
	ListWaitlist(ctx context.Context, actor authdomain.Actor, limit int) ([]userdomain.User, error)

	// ApproveUser manually approves a waitlisted user. Admin only.
	ApproveUser(ctx context.Context, actor authdomain.Actor, userID uuid.UUID) (*userdomain.User, error)
}
