package leaderboardservice

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"io"
	"log/slog"
	"testing"

	leaderboarddomain "github.com/Black-And-White-Club/clip-arena/app/modules/leaderboard/domain"
	leaderboarddb "github.com/Black-And-White-Club/clip-arena/app/modules/leaderboard/infrastructure/repositories"
	"github.com/Black-And-White-Club/clip-arena/pkg/domainerr"
	"github.com/Black-And-White-Club/clip-arena/pkg/observability"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"
)

func newTestService(repo *FakeLeaderboardRepo) *LeaderboardService {
	return NewLeaderboardService(
		repo,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		observability.NewNoopMetrics(),
		noop.NewTracerProvider().Tracer("test"),
	)
}

func statsRepo(rows ...leaderboarddb.UserStats) *FakeLeaderboardRepo {
	return &FakeLeaderboardRepo{
		AggregateUserStatsFunc: func(context.Context, bun.IDB) ([]leaderboarddb.UserStats, error) {
			return rows, nil
		},
	}
}

func TestComputeLeaderboard(t *testing.T) {
	a := uuid.MustParse("00000000-0000-0000-0000-0000000000a1")
	b := uuid.MustParse("00000000-0000-0000-0000-0000000000b2")
	c := uuid.MustParse("00000000-0000-0000-0000-0000000000c3")

	repo := statsRepo(
		leaderboarddb.UserStats{UserID: c, DisplayName: "cara", TotalVotes: 4, ApprovedCount: 1},
		leaderboarddb.UserStats{UserID: b, DisplayName: "bo", TotalVotes: 4, ApprovedCount: 1},
		leaderboarddb.UserStats{UserID: a, DisplayName: "ada", TotalVotes: 4, ApprovedCount: 2},
	)

	got, err := newTestService(repo).ComputeLeaderboard(context.Background())
	require.NoError(t, err)

	want := []leaderboarddomain.Entry{
		{UserID: a, DisplayName: "ada", TotalVotesReceived: 4, ApprovedSubmissionCount: 2, Rank: 1},
		{UserID: b, DisplayName: "bo", TotalVotesReceived: 4, ApprovedSubmissionCount: 1, Rank: 2},
		{UserID: c, DisplayName: "cara", TotalVotesReceived: 4, ApprovedSubmissionCount: 1, Rank: 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ComputeLeaderboard() mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeLeaderboard_RepeatableAcrossCalls(t *testing.T) {
	faker := gofakeit.New(42)
	rows := make([]leaderboarddb.UserStats, 40)
	for i := range rows {
		rows[i] = leaderboarddb.UserStats{
			UserID:        uuid.MustParse(faker.UUID()),
			DisplayName:   faker.Username(),
			TotalVotes:    faker.IntRange(0, 5),
			ApprovedCount: faker.IntRange(1, 3),
		}
	}
	reversed := make([]leaderboarddb.UserStats, len(rows))
	for i, r := range rows {
		reversed[len(rows)-1-i] = r
	}

	first, err := newTestService(statsRepo(rows...)).ComputeLeaderboard(context.Background())
	require.NoError(t, err)
	second, err := newTestService(statsRepo(reversed...)).ComputeLeaderboard(context.Background())
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(first, second))
	for i, e := range first {
		assert.Equal(t, i+1, e.Rank)
	}
}

func TestComputeLeaderboard_AggregateFailure(t *testing.T) {
	repo := &FakeLeaderboardRepo{
		AggregateUserStatsFunc: func(context.Context, bun.IDB) ([]leaderboarddb.UserStats, error) {
			return nil, errors.New("connection refused")
		},
	}

	got, err := newTestService(repo).ComputeLeaderboard(context.Background())
	assert.Nil(t, got)
	require.ErrorIs(t, err, leaderboarddomain.ErrAggregationUnavailable)
	assert.Equal(t, domainerr.KindUnavailable, domainerr.KindOf(err))
}

func TestComputeLeaderboard_NoCacheBetweenCalls(t *testing.T) {
	repo := statsRepo()
	svc := newTestService(repo)
	_, err := svc.ComputeLeaderboard(context.Background())
	require.NoError(t, err)
	_, err = svc.ComputeLeaderboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}

func TestRenderLeaderboardChart(t *testing.T) {
	tests := []struct {
		name string
		rows []leaderboarddb.UserStats
	}{
		{name: "empty board renders placeholder"},
		{
			name: "all zero votes",
			rows: []leaderboarddb.UserStats{{UserID: uuid.New(), DisplayName: "zero", ApprovedCount: 1}},
		},
		{
			name: "several users",
			rows: []leaderboarddb.UserStats{
				{UserID: uuid.New(), DisplayName: "an-unusually-long-display-name", TotalVotes: 7, ApprovedCount: 2},
				{UserID: uuid.New(), TotalVotes: 3, ApprovedCount: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := newTestService(statsRepo(tt.rows...)).RenderLeaderboardChart(context.Background(), 10)
			require.NoError(t, err)
			_, err = png.Decode(bytes.NewReader(data))
			require.NoError(t, err)
		})
	}
}

func TestRenderLeaderboardChart_AggregateFailure(t *testing.T) {
	repo := &FakeLeaderboardRepo{
		AggregateUserStatsFunc: func(context.Context, bun.IDB) ([]leaderboarddb.UserStats, error) {
			return nil, errors.New("timeout")
		},
	}
	_, err := newTestService(repo).RenderLeaderboardChart(context.Background(), 5)
	assert.ErrorIs(t, err, leaderboarddomain.ErrAggregationUnavailable)
}

func TestBarLabel(t *testing.T) {
	id := uuid.MustParse("12345678-0000-0000-0000-000000000000")
	assert.Equal(t, "#1 ada", barLabel(leaderboarddomain.Entry{UserID: id, DisplayName: "ada", Rank: 1}))
	assert.Equal(t, "#2 12345678", barLabel(leaderboarddomain.Entry{UserID: id, Rank: 2}))
	assert.Equal(t, "#3 abcdefghi...", barLabel(leaderboarddomain.Entry{UserID: id, DisplayName: "abcdefghijklmnop", Rank: 3}))
}
