package authservice

import (
	"context"
	"time"

	authdomain "github.com/Black-And-White-Club/clip-arena/app/modules/auth/domain"
	"github.com/google/uuid"
)

// Service resolves bearer tokens into actors.
type Service interface {
	// Authenticate validates a bearer token, provisions the user on first
	// sight and returns the calling actor.
	Authenticate(ctx context.Context, token string) (authdomain.Actor, error)

	// IsApproved re-reads the approval flag of the user.
	IsApproved(ctx context.Context, userID uuid.UUID) (bool, error)

	// IssueToken signs a token for local tooling and tests.
	IssueToken(ctx context.Context, claims authdomain.Claims, ttl time.Duration) (string, error)
}

// UserDirectory is the slice of the user module the auth gate depends on.
type UserDirectory interface {
	EnsureUser(ctx context.Context, actor authdomain.Actor) error
	IsApproved(ctx context.Context, userID uuid.UUID) (bool, error)
}
