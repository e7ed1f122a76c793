package leaderboarddb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository reads the vote aggregates the leaderboard is built from.
type Repository interface {
	// AggregateUserStats returns one row per user with at least one approved
	// submission. Votes on non-approved submissions are not counted.
	AggregateUserStats(ctx context.Context, db bun.IDB) ([]UserStats, error)
}
