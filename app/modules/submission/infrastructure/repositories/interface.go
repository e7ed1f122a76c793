package submissiondb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines the contract for submission persistence.
type Repository interface {
	// Insert stores a new submission. It returns false without error when the
	// (user_id, tournament_id) pair already has one.
	Insert(ctx context.Context, db bun.IDB, s *Submission) (bool, error)

	GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*Submission, error)

	// LockByID reads the row with SELECT ... FOR UPDATE. It must run inside a
	// transaction to serialize writers on the submission.
	LockByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*Submission, error)

	// UpdateStatus overwrites the moderation status.
	UpdateStatus(ctx context.Context, db bun.IDB, id uuid.UUID, status string) (*Submission, error)

	// SetScore writes the cached vote total.
	SetScore(ctx context.Context, db bun.IDB, id uuid.UUID, score int) error

	// List returns a tournament's submissions, oldest first, optionally
	// filtered by status.
	List(ctx context.Context, db bun.IDB, tournamentID uuid.UUID, status string) ([]Submission, error)

	// ListRanked returns a tournament's approved submissions ordered by score
	// desc, created_at asc, id asc.
	ListRanked(ctx context.Context, db bun.IDB, tournamentID uuid.UUID) ([]Submission, error)

	// ListIDs returns every submission id in a stable order, for reconciliation.
	ListIDs(ctx context.Context, db bun.IDB) ([]uuid.UUID, error)
}
