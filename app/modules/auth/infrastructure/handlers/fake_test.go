package authhandlers

import (
	"context"
	"time"

	authservice "github.com/Black-And-White-Club/clip-arena/app/modules/auth/application"
	authdomain "github.com/Black-And-White-Club/clip-arena/app/modules/auth/domain"
	"github.com/google/uuid"
)

// ------------------------
// Fake Service
// ------------------------

type FakeService struct {
	AuthenticateFunc func(ctx context.Context, token string) (authdomain.Actor, error)
	IsApprovedFunc   func(ctx context.Context, userID uuid.UUID) (bool, error)
	IssueTokenFunc   func(ctx context.Context, claims authdomain.Claims, ttl time.Duration) (string, error)
}

func (f *FakeService) Authenticate(ctx context.Context, token string) (authdomain.Actor, error) {
	if f.AuthenticateFunc != nil {
		return f.AuthenticateFunc(ctx, token)
	}
	return authdomain.Actor{}, authservice.ErrInvalidToken
}

func (f *FakeService) IsApproved(ctx context.Context, userID uuid.UUID) (bool, error) {
	if f.IsApprovedFunc != nil {
		return f.IsApprovedFunc(ctx, userID)
	}
	return false, nil
}

func (f *FakeService) IssueToken(ctx context.Context, claims authdomain.Claims, ttl time.Duration) (string, error) {
	if f.IssueTokenFunc != nil {
		return f.IssueTokenFunc(ctx, claims, ttl)
	}
	return "", nil
}

var _ authservice.Service = (*FakeService)(nil)
