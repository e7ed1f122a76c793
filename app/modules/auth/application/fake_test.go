package authservice

import (
	"context"
	"time"

	authdomain "github.com/Black-And-White-Club/clip-arena/app/modules/auth/domain"
	authjwt "github.com/Black-And-White-Club/clip-arena/app/modules/auth/infrastructure/jwt"
	"github.com/google/uuid"
)

// ------------------------
// Fake JWT Provider
// ------------------------

type FakeJWTProvider struct {
	trace []string

	GenerateTokenFunc func(claims *authdomain.Claims, ttl time.Duration) (string, error)
	ValidateTokenFunc func(tokenString string) (*authdomain.Claims, error)
}

func (f *FakeJWTProvider) Trace() []string {
	return f.trace
}

func (f *FakeJWTProvider) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeJWTProvider) GenerateToken(claims *authdomain.Claims, ttl time.Duration) (string, error) {
	f.record("GenerateToken")
	if f.GenerateTokenFunc != nil {
		return f.GenerateTokenFunc(claims, ttl)
	}
	return "fake-token", nil
}

func (f *FakeJWTProvider) ValidateToken(tokenString string) (*authdomain.Claims, error) {
	f.record("ValidateToken")
	if f.ValidateTokenFunc != nil {
		return f.ValidateTokenFunc(tokenString)
	}
	return &authdomain.Claims{
		UserID: uuid.New(),
		Role:   authdomain.RoleUser,
	}, nil
}

var _ authjwt.Provider = (*FakeJWTProvider)(nil)

// ------------------------
// Fake User Directory
// ------------------------

type FakeUserDirectory struct {
	trace []string

	EnsureUserFunc func(ctx context.Context, actor authdomain.Actor) error
	IsApprovedFunc func(ctx context.Context, userID uuid.UUID) (bool, error)
}

func (f *FakeUserDirectory) Trace() []string {
	return f.trace
}

func (f *FakeUserDirectory) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeUserDirectory) EnsureUser(ctx context.Context, actor authdomain.Actor) error {
	f.record("EnsureUser")
	if f.EnsureUserFunc != nil {
		return f.EnsureUserFunc(ctx, actor)
	}
	return nil
}

func (f *FakeUserDirectory) IsApproved(ctx context.Context, userID uuid.UUID) (bool, error) {
	f.record("IsApproved")
	if f.IsApprovedFunc != nil {
		return f.IsApprovedFunc(ctx, userID)
	}
	return false, nil
}

var _ UserDirectory = (*FakeUserDirectory)(nil)
