package votingdb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines the contract for vote and like persistence.
type Repository interface {
	// UpsertVote inserts the vote or replaces the rank of the voter's existing
	// vote on the same submission.
	UpsertVote(ctx context.Context, db bun.IDB, vote *Vote) error

	// DeleteVote removes the voter's vote. It returns false when none existed.
	DeleteVote(ctx context.Context, db bun.IDB, voterID, submissionID uuid.UUID) (bool, error)

	// ListRanks returns the ranks of every vote currently stored for a submission.
	ListRanks(ctx context.Context, db bun.IDB, submissionID uuid.UUID) ([]int, error)

	// RankHeldElsewhere reports whether the voter already gave rank to a
	// different approved submission in the tournament.
	RankHeldElsewhere(ctx context.Context, db bun.IDB, voterID, tournamentID, submissionID uuid.UUID, rank int) (bool, error)

	// LockVoterTournament takes a transaction-scoped advisory lock on the
	// (voter, tournament) pair.
	LockVoterTournament(ctx context.Context, db bun.IDB, voterID, tournamentID uuid.UUID) error

	// InsertLike returns false when the like already existed.
	InsertLike(ctx context.Context, db bun.IDB, like *Like) (bool, error)

	// DeleteLike returns false when there was nothing to delete.
	DeleteLike(ctx context.Context, db bun.IDB, userID, submissionID uuid.UUID) (bool, error)

	CountLikes(ctx context.Context, db bun.IDB, submissionID uuid.UUID) (int, error)
}
