package submissionservice

import (
	"context"

	authdomain "github.com/Black-And-White-Club/clip-arena/app/modules/auth/domain"
	submissiondomain "github.com/Black-And-White-Club/clip-arena/app/modules/submission/domain"
	tournamentdb "github.com/Black-And-White-Club/clip-arena/app/modules/tournament/infrastructure/repositories"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Service defines the submission lifecycle operations.
type Service interface {
	// SubmitClip enters the actor's clip into an active tournament.
	SubmitClip(ctx context.Context, actor authdomain.Actor, tournamentID uuid.UUID, draft submissiondomain.Draft) (*submissiondomain.Submission, error)

	// ModerateSubmission overwrites the status. Admin only.
	ModerateSubmission(ctx context.Context, actor authdomain.Actor, submissionID uuid.UUID, status submissiondomain.Status) (*submissiondomain.Submission, error)

	GetSubmission(ctx context.Context, submissionID uuid.UUID) (*submissiondomain.Submission, error)

	// ListSubmissions returns a tournament's entries, optionally by status.
	ListSubmissions(ctx context.Context, tournamentID uuid.UUID, status submissiondomain.Status) ([]submissiondomain.Submission, error)
}

// TournamentReader is the slice of the tournament repository used to gate
// submissions.
type TournamentReader interface {
	GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*tournamentdb.Tournament, error)
}
