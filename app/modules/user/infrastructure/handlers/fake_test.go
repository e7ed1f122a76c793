package userhandlers

import (
	"context"

	authdomain "github.com/Black-And-White-Club/clip-arena/app/modules/auth/domain"
	userservice "github.com/Black-And-White-Club/clip-arena/app/modules/user/application"
	userdomain "github.com/Black-And-White-Club/clip-arena/app/modules/user/domain"
	"github.com/google/uuid"
)

type FakeService struct {
	EnsureUserFunc   func(ctx context.Context, actor authdomain.Actor) error
	IsApprovedFunc   func(ctx context.Context, userID uuid.UUID) (bool, error)
	GetUserFunc      func(ctx context.Context, userID uuid.UUID) (*userdomain.User, error)
	ListWaitlistFunc func(ctx context.Context, actor authdomain.Actor, limit int) ([]userdomain.User, error)
	ApproveUserFunc  func(ctx context.Context, actor authdomain.Actor, userID uuid.UUID) (*userdomain.User, error)
}

func (f *FakeService) EnsureUser(ctx context.Context, actor authdomain.Actor) error {
	if f.EnsureUserFunc != nil {
		return f.EnsureUserFunc(ctx, actor)
	}
	return nil
}

func (f *FakeService) IsApproved(ctx context.Context, userID uuid.UUID) (bool, error) {
	if f.IsApprovedFunc != nil {
		return f.IsApprovedFunc(ctx, userID)
	}
	return false, nil
}

func (f *FakeService) GetUser(ctx context.Context, userID uuid.UUID) (*userdomain.User, error) {
	if f.GetUserFunc != nil {
		return f.GetUserFunc(ctx, userID)
	}
	return nil, userdomain.ErrUserNotFound
}

func (f *FakeService) ListWaitlist(ctx context.Context, actor authdomain.Actor, limit int) ([]userdomain.User, error) {
	if f.ListWaitlistFunc != nil {
		return f.ListWaitlistFunc(ctx, actor, limit)
	}
	return nil, nil
}

func (f *FakeService) ApproveUser(ctx context.Context, actor authdomain.Actor, userID uuid.UUID) (*userdomain.User, error) {
	if f.ApproveUserFunc != nil {
		return f.ApproveUserFunc(ctx, actor, userID)
	}
	return nil, userdomain.ErrUserNotFound
}

var _ userservice.Service = (*FakeService)(nil)
