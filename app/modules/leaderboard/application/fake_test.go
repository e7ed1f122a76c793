package leaderboardservice

import (
	"context"

	leaderboarddb "github.com/Black-And-White-Club/clip-arena/app/modules/leaderboard/infrastructure/repositories"
	"github.com/uptrace/bun"
)

type FakeLeaderboardRepo struct {
	calls int

	AggregateUserStatsFunc func(ctx context.Context, db bun.IDB) ([]leaderboarddb.UserStats, error)
}

func (f *FakeLeaderboardRepo) AggregateUserStats(ctx context.Context, db bun.IDB) ([]leaderboarddb.UserStats, error) {
	f.calls++
	if f.AggregateUserStatsFunc != nil {
		return f.AggregateUserStatsFunc(ctx, db)
	}
	return nil, nil
}

var _ leaderboarddb.Repository = (*FakeLeaderboardRepo)(nil)
