package leaderboardhandlers

import (
	"context"

	leaderboardservice "github.com/Black-And-White-Club/clip-arena/app/modules/leaderboard/application"
	leaderboarddomain "github.com/Black-And-White-Club/clip-arena/app/modules/leaderboard/domain"
)

type FakeService struct {
	ComputeLeaderboardFunc     func(ctx context.Context) ([]leaderboarddomain.Entry, error)
	RenderLeaderboardChartFunc func(ctx context.Context, limit int) ([]byte, error)
}

func (f *FakeService) ComputeLeaderboard(ctx context.Context) ([]leaderboarddomain.Entry, error) {
	if f.ComputeLeaderboardFunc != nil {
		return f.ComputeLeaderboardFunc(ctx)
	}
	return []leaderboarddomain.Entry{}, nil
}

func (f *FakeService) RenderLeaderboardChart(ctx context.Context, limit int) ([]byte, error) {
	if f.RenderLeaderboardChartFunc != nil {
		return f.RenderLeaderboardChartFunc(ctx, limit)
	}
	return []byte("\x89PNG"), nil
}

var _ leaderboardservice.Service = (*FakeService)(nil)
