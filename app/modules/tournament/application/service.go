package tournamentservice

import (
	"context"
	"errors"
	"log/slog"

	authdomain "github.com/Black-And-White-Club/clip-arena/app/modules/auth/domain"
	tournamentdomain "github.com/Black-And-White-Club/clip-arena/app/modules/tournament/domain"
	tournamentdb "github.com/Black-And-White-Club/clip-arena/app/modules/tournament/infrastructure/repositories"
	"github.com/Black-And-White-Club/clip-arena/pkg/observability"
	"github.com/Black-And-White-Club/clip-arena/pkg/operations"
	"github.com/Black-And-White-Club/clip-arena/pkg/results"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// TournamentService implements the Service interface.
type TournamentService struct {
	repo   tournamentdb.Repository
	logger *slog.Logger
	runner *operations.Runner
}

// NewTournamentService creates a new TournamentService.
func NewTournamentService(
	repo tournamentdb.Repository,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *TournamentService {
	runner := operations.NewRunner("TournamentService", logger, metrics, tracer, db)
	return &TournamentService{
		repo:   repo,
		logger: runner.Logger,
		runner: runner,
	}
}

func (s *TournamentService) CreateTournament(ctx context.Context, actor authdomain.Actor, name string, status tournamentdomain.Status) (*tournamentdomain.Tournament, error) {
	if status == "" {
		status = tournamentdomain.StatusUpcoming
	}
	if !status.IsValid() {
		return nil, tournamentdomain.ErrInvalidStatus
	}
	name, err := tournamentdomain.NormalizeName(name)
	if err != nil {
		return nil, err
	}

	return operations.Execute(s.runner, ctx, "CreateTournament", actor.UserID.String(), func(ctx context.Context, db bun.IDB) (results.OperationResult[*tournamentdomain.Tournament, error], error) {
		if !actor.IsAdmin() {
			return results.FailureResult[*tournamentdomain.Tournament, error](tournamentdomain.ErrForbidden), nil
		}
		row := &tournamentdb.Tournament{
			ID:        uuid.New(),
			Name:      name,
			Status:    string(status),
			CreatedBy: actor.UserID,
		}
		if err := s.repo.Create(ctx, db, row); err != nil {
			return results.OperationResult[*tournamentdomain.Tournament, error]{}, err
		}
		return results.SuccessResult[*tournamentdomain.Tournament, error](toDomain(row)), nil
	})
}

func (s *TournamentService) UpdateStatus(ctx context.Context, actor authdomain.Actor, id uuid.UUID, status tournamentdomain.Status) (*tournamentdomain.Tournament, error) {
	if !status.IsValid() {
		return nil, tournamentdomain.ErrInvalidStatus
	}

	return operations.Execute(s.runner, ctx, "UpdateTournamentStatus", id.String(), func(ctx context.Context, db bun.IDB) (results.OperationResult[*tournamentdomain.Tournament, error], error) {
		if !actor.IsAdmin() {
			return results.FailureResult[*tournamentdomain.Tournament, error](tournamentdomain.ErrForbidden), nil
		}
		row, err := s.repo.UpdateStatus(ctx, db, id, string(status))
		if err != nil {
			if errors.Is(err, tournamentdb.ErrNotFound) {
				return results.FailureResult[*tournamentdomain.Tournament, error](tournamentdomain.ErrTournamentNotFound), nil
			}
			return results.OperationResult[*tournamentdomain.Tournament, error]{}, err
		}
		return results.SuccessResult[*tournamentdomain.Tournament, error](toDomain(row)), nil
	})
}

func (s *TournamentService) GetTournament(ctx context.Context, id uuid.UUID) (*tournamentdomain.Tournament, error) {
	return operations.Execute(s.runner, ctx, "GetTournament", id.String(), func(ctx context.Context, db bun.IDB) (results.OperationResult[*tournamentdomain.Tournament, error], error) {
		row, err := s.repo.GetByID(ctx, db, id)
		if err != nil {
			if errors.Is(err, tournamentdb.ErrNotFound) {
				return results.FailureResult[*tournamentdomain.Tournament, error](tournamentdomain.ErrTournamentNotFound), nil
			}
			return results.OperationResult[*tournamentdomain.Tournament, error]{}, err
		}
		return results.SuccessResult[*tournamentdomain.Tournament, error](toDomain(row)), nil
	})
}

func (s *TournamentService) ListTournaments(ctx context.Context, status tournamentdomain.Status) ([]tournamentdomain.Tournament, error) {
	if status != "" && !status.IsValid() {
		return nil, tournamentdomain.ErrInvalidStatus
	}

	return operations.Execute(s.runner, ctx, "ListTournaments", string(status), func(ctx context.Context, db bun.IDB) (results.OperationResult[[]tournamentdomain.Tournament, error], error) {
		rows, err := s.repo.List(ctx, db, string(status))
		if err != nil {
			return results.OperationResult[[]tournamentdomain.Tournament, error]{}, err
		}
		out := make([]tournamentdomain.Tournament, 0, len(rows))
		for i := range rows {
			out = append(out, *toDomain(&rows[i]))
		}
		return results.SuccessResult[[]tournamentdomain.Tournament, error](out), nil
	})
}

func toDomain(row *tournamentdb.Tournament) *tournamentdomain.Tournament {
	return &tournamentdomain.Tournament{
		ID:        row.ID,
		Name:      row.Name,
		Status:    tournamentdomain.Status(row.Status),
		CreatedBy: row.CreatedBy,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
