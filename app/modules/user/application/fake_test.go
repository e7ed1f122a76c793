package userservice

import (
	"context"
	"time"

	userdb "github.com/Black-And-White-Club/clip-arena/app/modules/user/infrastructure/repositories"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake User Repo
// ------------------------

type FakeUserRepo struct {
	trace []string

	UpsertFunc         func(ctx context.Context, db bun.IDB, user *userdb.User) error
	GetByIDFunc        func(ctx context.Context, db bun.IDB, id uuid.UUID) (*userdb.User, error)
	MarkApprovedFunc   func(ctx context.Context, db bun.IDB, id uuid.UUID, at time.Time) error
	ListUnapprovedFunc func(ctx context.Context, db bun.IDB, limit int) ([]userdb.User, error)
}

func NewFakeUserRepo() *FakeUserRepo {
	return &FakeUserRepo{trace: []string{}}
}

func (f *FakeUserRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeUserRepo) Upsert(ctx context.Context, db bun.IDB, user *userdb.User) error {
	f.record("Upsert")
	if f.UpsertFunc != nil {
		return f.UpsertFunc(ctx, db, user)
	}
	return nil
}

func (f *FakeUserRepo) GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*userdb.User, error) {
	f.record("GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, id)
	}
	return nil, userdb.ErrNotFound
}

func (f *FakeUserRepo) MarkApproved(ctx context.Context, db bun.IDB, id uuid.UUID, at time.Time) error {
	f.record("MarkApproved")
	if f.MarkApprovedFunc != nil {
		return f.MarkApprovedFunc(ctx, db, id, at)
	}
	return nil
}

func (f *FakeUserRepo) ListUnapproved(ctx context.Context, db bun.IDB, limit int) ([]userdb.User, error) {
	f.record("ListUnapproved")
	if f.ListUnapprovedFunc != nil {
		return f.ListUnapprovedFunc(ctx, db, limit)
	}
	return nil, nil
}

func (f *FakeUserRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ userdb.Repository = (*FakeUserRepo)(nil)

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
