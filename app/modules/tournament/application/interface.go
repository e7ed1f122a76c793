package tournamentservice

import (
	"context"

	authdomain "github.com/Black-And-White-Club/clip-arena/app/modules/auth/domain"
	tournamentdomain "github.com/Black-And-White-Club/clip-arena/app/modules/tournament/domain"
	"github.com/google/uuid"
)

// Service defines the tournament operations.
type Service interface {
	// CreateTournament is admin only. An empty status defaults to upcoming.
	CreateTournament(ctx context.Context, actor authdomain.Actor, name string, status tournamentdomain.Status) (*tournamentdomain.Tournament, error)
	// UpdateStatus is admin only.
	UpdateStatus(ctx context.Context, actor authdomain.Actor, id uuid.UUID, status tournamentdomain.Status) (*tournamentdomain.Tournament, error)
	GetTournament(ctx context.Context, id uuid.UUID) (*tournamentdomain.Tournament, error)
	ListTournaments(ctx context.Context, status tournamentdomain.Status) ([]tournamentdomain.Tournament, error)
}
