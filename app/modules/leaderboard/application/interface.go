package leaderboardservice

import (
	"context"

	leaderboarddomain "github.com/Black-And-White-Club/clip-arena/app/modules/leaderboard/domain"
)

// Service defines the global leaderboard operations.
type Service interface {
	// ComputeLeaderboard aggregates votes on approved submissions per user and
	// returns them ranked. It never serves cached data.
	ComputeLeaderboard(ctx context.Context) ([]leaderboarddomain.Entry, error)

	// RenderLeaderboardChart draws the top limit users' vote totals as a PNG.
	RenderLeaderboardChart(ctx context.Context, limit int) ([]byte, error)
}
