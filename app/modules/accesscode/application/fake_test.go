package accesscodeservice

import (
	"context"
	"time"

	accesscodedb "github.com/Black-And-White-Club/clip-arena/app/modules/accesscode/infrastructure/repositories"
	userdb "github.com/Black-And-White-Club/clip-arena/app/modules/user/infrastructure/repositories"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Access Code Repo
// ------------------------

type FakeAccessCodeRepo struct {
	trace []string

	InsertCodeFunc     func(ctx context.Context, db bun.IDB, code *accesscodedb.AccessCode) (bool, error)
	GetByCodeFunc      func(ctx context.Context, db bun.IDB, code string) (*accesscodedb.AccessCode, error)
	MarkRedeemedFunc   func(ctx context.Context, db bun.IDB, id, redeemerID uuid.UUID, at time.Time) (bool, error)
	ListByCreatorFunc  func(ctx context.Context, db bun.IDB, creatorID uuid.UUID, limit int) ([]accesscodedb.AccessCode, error)
	CreateReferralFunc func(ctx context.Context, db bun.IDB, referral *accesscodedb.Referral) (bool, error)
	ListReferralsFunc  func(ctx context.Context, db bun.IDB, referrerID uuid.UUID) ([]accesscodedb.ReferredUserRow, error)
}

func NewFakeAccessCodeRepo() *FakeAccessCodeRepo {
	return &FakeAccessCodeRepo{trace: []string{}}
}

func (f *FakeAccessCodeRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeAccessCodeRepo) InsertCode(ctx context.Context, db bun.IDB, code *accesscodedb.AccessCode) (bool, error) {
	f.record("InsertCode")
	if f.InsertCodeFunc != nil {
		return f.InsertCodeFunc(ctx, db, code)
	}
	return true, nil
}

func (f *FakeAccessCodeRepo) GetByCode(ctx context.Context, db bun.IDB, code string) (*accesscodedb.AccessCode, error) {
	f.record("GetByCode")
	if f.GetByCodeFunc != nil {
		return f.GetByCodeFunc(ctx, db, code)
	}
	return nil, accesscodedb.ErrNotFound
}

func (f *FakeAccessCodeRepo) MarkRedeemed(ctx context.Context, db bun.IDB, id, redeemerID uuid.UUID, at time.Time) (bool, error) {
	f.record("MarkRedeemed")
	if f.MarkRedeemedFunc != nil {
		return f.MarkRedeemedFunc(ctx, db, id, redeemerID, at)
	}
	return true, nil
}

func (f *FakeAccessCodeRepo) ListByCreator(ctx context.Context, db bun.IDB, creatorID uuid.UUID, limit int) ([]accesscodedb.AccessCode, error) {
	f.record("ListByCreator")
	if f.ListByCreatorFunc != nil {
		return f.ListByCreatorFunc(ctx, db, creatorID, limit)
	}
	return nil, nil
}

func (f *FakeAccessCodeRepo) CreateReferral(ctx context.Context, db bun.IDB, referral *accesscodedb.Referral) (bool, error) {
	f.record("CreateReferral")
	if f.CreateReferralFunc != nil {
		return f.CreateReferralFunc(ctx, db, referral)
	}
	return true, nil
}

func (f *FakeAccessCodeRepo) ListReferrals(ctx context.Context, db bun.IDB, referrerID uuid.UUID) ([]accesscodedb.ReferredUserRow, error) {
	f.record("ListReferrals")
	if f.ListReferralsFunc != nil {
		return f.ListReferralsFunc(ctx, db, referrerID)
	}
	return nil, nil
}

func (f *FakeAccessCodeRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ accesscodedb.Repository = (*FakeAccessCodeRepo)(nil)

// ------------------------
// Fake User Store
// ------------------------

type FakeUserStore struct {
	GetByIDFunc      func(ctx context.Context, db bun.IDB, id uuid.UUID) (*userdb.User, error)
	MarkApprovedFunc func(ctx context.Context, db bun.IDB, id uuid.UUID, at time.Time) error
	Approved         []uuid.UUID
}

func (f *FakeUserStore) GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*userdb.User, error) {
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, id)
	}
	return nil, userdb.ErrNotFound
}

func (f *FakeUserStore) MarkApproved(ctx context.Context, db bun.IDB, id uuid.UUID, at time.Time) error {
	f.Approved = append(f.Approved, id)
	if f.MarkApprovedFunc != nil {
		return f.MarkApprovedFunc(ctx, db, id, at)
	}
	return nil
}

var _ UserStore = (*FakeUserStore)(nil)

// ------------------------
// Fake Publisher
// ------------------------

type FakePublisher struct {
	Topics     []string
	PublishErr error
}

func (p *FakePublisher) Publish(topic string, messages ...*message.Message) error {
	p.Topics = append(p.Topics, topic)
	return p.PublishErr
}

func (p *FakePublisher) Close() error { return nil }

var _ message.Publisher = (*FakePublisher)(nil)
