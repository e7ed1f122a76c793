package authdomain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Claims represents the domain model for authentication claims issued by the
// identity service.
type Claims struct {
	UserID      uuid.UUID
	Role        Role
	DisplayName string
	ExpiresAt   time.Time
	IssuedAt    time.Time
}

// IsExpired checks if the claims have expired.
func (c *Claims) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}

// Actor is the caller of a core operation. It is resolved from the token on
// every request and passed explicitly into services.
type Actor struct {
	UserID      uuid.UUID
	Role        Role
	DisplayName string
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

type actorKey struct{}

// ContextWithActor attaches the authenticated actor to ctx.
func ContextWithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the authenticated actor, if any.
func ActorFromContext(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(Actor)
	return actor, ok
}
