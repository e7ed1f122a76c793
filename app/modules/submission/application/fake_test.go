package submissionservice

import (
	"context"

	submissiondb "github.com/Black-And-White-Club/clip-arena/app/modules/submission/infrastructure/repositories"
	tournamentdb "github.com/Black-And-White-Club/clip-arena/app/modules/tournament/infrastructure/repositories"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Submission Repo
// ------------------------

type FakeSubmissionRepo struct {
	trace []string

	InsertFunc       func(ctx context.Context, db bun.IDB, s *submissiondb.Submission) (bool, error)
	GetByIDFunc      func(ctx context.Context, db bun.IDB, id uuid.UUID) (*submissiondb.Submission, error)
	LockByIDFunc     func(ctx context.Context, db bun.IDB, id uuid.UUID) (*submissiondb.Submission, error)
	UpdateStatusFunc func(ctx context.Context, db bun.IDB, id uuid.UUID, status string) (*submissiondb.Submission, error)
	SetScoreFunc     func(ctx context.Context, db bun.IDB, id uuid.UUID, score int) error
	ListFunc         func(ctx context.Context, db bun.IDB, tournamentID uuid.UUID, status string) ([]submissiondb.Submission, error)
	ListRankedFunc   func(ctx context.Context, db bun.IDB, tournamentID uuid.UUID) ([]submissiondb.Submission, error)
	ListIDsFunc      func(ctx context.Context, db bun.IDB) ([]uuid.UUID, error)
}

func NewFakeSubmissionRepo() *FakeSubmissionRepo {
	return &FakeSubmissionRepo{trace: []string{}}
}

func (f *FakeSubmissionRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeSubmissionRepo) Insert(ctx context.Context, db bun.IDB, s *submissiondb.Submission) (bool, error) {
	f.record("Insert")
	if f.InsertFunc != nil {
		return f.InsertFunc(ctx, db, s)
	}
	return true, nil
}

func (f *FakeSubmissionRepo) GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*submissiondb.Submission, error) {
	f.record("GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, id)
	}
	return nil, submissiondb.ErrNotFound
}

func (f *FakeSubmissionRepo) LockByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*submissiondb.Submission, error) {
	f.record("LockByID")
	if f.LockByIDFunc != nil {
		return f.LockByIDFunc(ctx, db, id)
	}
	return nil, submissiondb.ErrNotFound
}

func (f *FakeSubmissionRepo) UpdateStatus(ctx context.Context, db bun.IDB, id uuid.UUID, status string) (*submissiondb.Submission, error) {
	f.record("UpdateStatus")
	if f.UpdateStatusFunc != nil {
		return f.UpdateStatusFunc(ctx, db, id, status)
	}
	return &submissiondb.Submission{ID: id, Status: status}, nil
}

func (f *FakeSubmissionRepo) SetScore(ctx context.Context, db bun.IDB, id uuid.UUID, score int) error {
	f.record("SetScore")
	if f.SetScoreFunc != nil {
		return f.SetScoreFunc(ctx, db, id, score)
	}
	return nil
}

func (f *FakeSubmissionRepo) List(ctx context.Context, db bun.IDB, tournamentID uuid.UUID, status string) ([]submissiondb.Submission, error) {
	f.record("List")
	if f.ListFunc != nil {
		return f.ListFunc(ctx, db, tournamentID, status)
	}
	return nil, nil
}

func (f *FakeSubmissionRepo) ListRanked(ctx context.Context, db bun.IDB, tournamentID uuid.UUID) ([]submissiondb.Submission, error) {
	f.record("ListRanked")
	if f.ListRankedFunc != nil {
		return f.ListRankedFunc(ctx, db, tournamentID)
	}
	return nil, nil
}

func (f *FakeSubmissionRepo) ListIDs(ctx context.Context, db bun.IDB) ([]uuid.UUID, error) {
	f.record("ListIDs")
	if f.ListIDsFunc != nil {
		return f.ListIDsFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakeSubmissionRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ submissiondb.Repository = (*FakeSubmissionRepo)(nil)

// ------------------------
// Fake Tournament Reader
// ------------------------

type FakeTournamentReader struct {
	GetByIDFunc func(ctx context.Context, db bun.IDB, id uuid.UUID) (*tournamentdb.Tournament, error)
}

func (f *FakeTournamentReader) GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*tournamentdb.Tournament, error) {
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, id)
	}
	return nil, tournamentdb.ErrNotFound
}

var _ TournamentReader = (*FakeTournamentReader)(nil)

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
