package accesscodehandlers

import (
	"context"

	accesscodeservice "github.com/Black-And-White-Club/clip-arena/app/modules/accesscode/application"
	accesscodedomain "github.com/Black-And-White-Club/clip-arena/app/modules/accesscode/domain"
	authdomain "github.com/Black-And-White-Club/clip-arena/app/modules/auth/domain"
	"github.com/google/uuid"
)

type FakeService struct {
	GenerateCodesFunc    func(ctx context.Context, actor authdomain.Actor, quantity, expiryDays int) ([]accesscodedomain.AccessCode, error)
	ValidateCodeFunc     func(ctx context.Context, code string) (*accesscodedomain.Validation, error)
	RedeemCodeFunc       func(ctx context.Context, code string, redeemer authdomain.Actor) (*accesscodedomain.Redemption, error)
	ListCodesFunc        func(ctx context.Context, actor authdomain.Actor) ([]accesscodedomain.AccessCode, error)
	ExportCodesXLSXFunc  func(ctx context.Context, actor authdomain.Actor) ([]byte, error)
	GetReferralStatsFunc func(ctx context.Context, userID uuid.UUID) (*accesscodedomain.ReferralStats, error)
}

func (f *FakeService) GenerateCodes(ctx context.Context, actor authdomain.Actor, quantity, expiryDays int) ([]accesscodedomain.AccessCode, error) {
	if f.GenerateCodesFunc != nil {
		return f.GenerateCodesFunc(ctx, actor, quantity, expiryDays)
	}
	return nil, nil
}

func (f *FakeService) ValidateCode(ctx context.Context, code string) (*accesscodedomain.Validation, error) {
	if f.ValidateCodeFunc != nil {
		return f.ValidateCodeFunc(ctx, code)
	}
	return nil, accesscodedomain.ErrCodeNotFound
}

func (f *FakeService) RedeemCode(ctx context.Context, code string, redeemer authdomain.Actor) (*accesscodedomain.Redemption, error) {
	if f.RedeemCodeFunc != nil {
		return f.RedeemCodeFunc(ctx, code, redeemer)
	}
	return nil, accesscodedomain.ErrCodeNotFound
}

func (f *FakeService) ListCodes(ctx context.Context, actor authdomain.Actor) ([]accesscodedomain.AccessCode, error) {
	if f.ListCodesFunc != nil {
		return f.ListCodesFunc(ctx, actor)
	}
	return nil, nil
}

func (f *FakeService) ExportCodesXLSX(ctx context.Context, actor authdomain.Actor) ([]byte, error) {
	if f.ExportCodesXLSXFunc != nil {
		return f.ExportCodesXLSXFunc(ctx, actor)
	}
	return nil, nil
}

func (f *FakeService) GetReferralStats(ctx context.Context, userID uuid.UUID) (*accesscodedomain.ReferralStats, error) {
	if f.GetReferralStatsFunc != nil {
		return f.GetReferralStatsFunc(ctx, userID)
	}
	return &accesscodedomain.ReferralStats{ReferrerID: userID}, nil
}

var _ accesscodeservice.Service = (*FakeService)(nil)
