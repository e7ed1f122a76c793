package votingservice

import (
	"context"

	authdomain "github.com/Black-And-White-Club/clip-arena/app/modules/auth/domain"
	submissiondomain "github.com/Black-And-White-Club/clip-arena/app/modules/submission/domain"
	submissiondb "github.com/Black-And-White-Club/clip-arena/app/modules/submission/infrastructure/repositories"
	votingdomain "github.com/Black-And-White-Club/clip-arena/app/modules/voting/domain"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Service defines the ranked voting operations.
type Service interface {
	// CastVote inserts or replaces the actor's vote and returns the new score.
	CastVote(ctx context.Context, actor authdomain.Actor, submissionID uuid.UUID, rank int) (*votingdomain.VoteResult, error)

	// RetractVote deletes the actor's vote and returns the new score.
	RetractVote(ctx context.Context, actor authdomain.Actor, submissionID uuid.UUID) (*votingdomain.VoteResult, error)

	// ToggleLike flips the actor's like on a submission.
	ToggleLike(ctx context.Context, actor authdomain.Actor, submissionID uuid.UUID) (*votingdomain.LikeResult, error)

	// GetTournamentRanking lists approved submissions by score desc, then
	// earliest submission first.
	GetTournamentRanking(ctx context.Context, tournamentID uuid.UUID) ([]submissiondomain.RankedSubmission, error)

	// ReconcileScores recomputes every cached score from its votes.
	ReconcileScores(ctx context.Context) (*votingdomain.ReconcileReport, error)
}

// SubmissionStore is the slice of the submission repository the engine
// locks and writes scores through.
type SubmissionStore interface {
	GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*submissiondb.Submission, error)
	LockByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*submissiondb.Submission, error)
	SetScore(ctx context.Context, db bun.IDB, id uuid.UUID, score int) error
	ListRanked(ctx context.Context, db bun.IDB, tournamentID uuid.UUID) ([]submissiondb.Submission, error)
	ListIDs(ctx context.Context, db bun.IDB) ([]uuid.UUID, error)
}
