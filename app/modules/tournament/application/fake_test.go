package tournamentservice

import (
	"context"

	tournamentdb "github.com/Black-And-White-Club/clip-arena/app/modules/tournament/infrastructure/repositories"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type FakeTournamentRepo struct {
	trace []string

	CreateFunc       func(ctx context.Context, db bun.IDB, t *tournamentdb.Tournament) error
	GetByIDFunc      func(ctx context.Context, db bun.IDB, id uuid.UUID) (*tournamentdb.Tournament, error)
	UpdateStatusFunc func(ctx context.Context, db bun.IDB, id uuid.UUID, status string) (*tournamentdb.Tournament, error)
	ListFunc         func(ctx context.Context, db bun.IDB, status string) ([]tournamentdb.Tournament, error)
}

func NewFakeTournamentRepo() *FakeTournamentRepo {
	return &FakeTournamentRepo{trace: []string{}}
}

func (f *FakeTournamentRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeTournamentRepo) Create(ctx context.Context, db bun.IDB, t *tournamentdb.Tournament) error {
	f.record("Create")
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, db, t)
	}
	return nil
}

func (f *FakeTournamentRepo) GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*tournamentdb.Tournament, error) {
	f.record("GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, id)
	}
	return nil, tournamentdb.ErrNotFound
}

func (f *FakeTournamentRepo) UpdateStatus(ctx context.Context, db bun.IDB, id uuid.UUID, status string) (*tournamentdb.Tournament, error) {
	f.record("UpdateStatus")
	if f.UpdateStatusFunc != nil {
		return f.UpdateStatusFunc(ctx, db, id, status)
	}
	return &tournamentdb.Tournament{ID: id, Status: status}, nil
}

func (f *FakeTournamentRepo) List(ctx context.Context, db bun.IDB, status string) ([]tournamentdb.Tournament, error) {
	f.record("List")
	if f.ListFunc != nil {
		return f.ListFunc(ctx, db, status)
	}
	return nil, nil
}

func (f *FakeTournamentRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ tournamentdb.Repository = (*FakeTournamentRepo)(nil)
