package tournamenthandlers

import (
	"context"

	authdomain "github.com/Black-And-White-Club/clip-arena/app/modules/auth/domain"
	tournamentservice "github.com/Black-And-White-Club/clip-arena/app/modules/tournament/application"
	tournamentdomain "github.com/Black-And-White-Club/clip-arena/app/modules/tournament/domain"
	"github.com/google/uuid"
)

type FakeService struct {
	CreateTournamentFunc func(ctx context.Context, actor authdomain.Actor, name string, status tournamentdomain.Status) (*tournamentdomain.Tournament, error)
	UpdateStatusFunc     func(ctx context.Context, actor authdomain.Actor, id uuid.UUID, status tournamentdomain.Status) (*tournamentdomain.Tournament, error)
	GetTournamentFunc    func(ctx context.Context, id uuid.UUID) (*tournamentdomain.Tournament, error)
	ListTournamentsFunc  func(ctx context.Context, status tournamentdomain.Status) ([]tournamentdomain.Tournament, error)
}

func (f *FakeService) CreateTournament(ctx context.Context, actor authdomain.Actor, name string, status tournamentdomain.Status) (*tournamentdomain.Tournament, error) {
	if f.CreateTournamentFunc != nil {
		return f.CreateTournamentFunc(ctx, actor, name, status)
	}
	return &tournamentdomain.Tournament{ID: uuid.New(), Name: name, Status: status}, nil
}

func (f *FakeService) UpdateStatus(ctx context.Context, actor authdomain.Actor, id uuid.UUID, status tournamentdomain.Status) (*tournamentdomain.Tournament, error) {
	if f.UpdateStatusFunc != nil {
		return f.UpdateStatusFunc(ctx, actor, id, status)
	}
	return &tournamentdomain.Tournament{ID: id, Status: status}, nil
}

func (f *FakeService) GetTournament(ctx context.Context, id uuid.UUID) (*tournamentdomain.Tournament, error) {
	if f.GetTournamentFunc != nil {
		return f.GetTournamentFunc(ctx, id)
	}
	return nil, tournamentdomain.ErrTournamentNotFound
}

func (f *FakeService) ListTournaments(ctx context.Context, status tournamentdomain.Status) ([]tournamentdomain.Tournament, error) {
	if f.ListTournamentsFunc != nil {
		return f.ListTournamentsFunc(ctx, status)
	}
	return nil, nil
}

var _ tournamentservice.Service = (*FakeService)(nil)
