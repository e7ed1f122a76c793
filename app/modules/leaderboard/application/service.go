package leaderboardservice

import (
	"context"
	"log/slog"

	leaderboarddomain "github.com/Black-And-White-Club/clip-arena/app/modules/leaderboard/domain"
	leaderboarddb "github.com/Black-And-White-Club/clip-arena/app/modules/leaderboard/infrastructure/repositories"
	"github.com/Black-And-White-Club/clip-arena/pkg/attr"
	"github.com/Black-And-White-Club/clip-arena/pkg/observability"
	"github.com/Black-And-White-Club/clip-arena/pkg/operations"
	"github.com/Black-And-White-Club/clip-arena/pkg/results"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultChartLimit = 10
	maxChartLimit     = 50
)

// LeaderboardService implements the Service interface.
type LeaderboardService struct {
	repo    leaderboarddb.Repository
	logger  *slog.Logger
	runner  *operations.Runner
	palette ChartPalette
}

// NewLeaderboardService creates a new LeaderboardService.
func NewLeaderboardService(
	repo leaderboarddb.Repository,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
) *LeaderboardService {
	runner := operations.NewRunner("LeaderboardService", logger, metrics, tracer, nil)
	return &LeaderboardService{
		repo:    repo,
		logger:  runner.Logger,
		runner:  runner,
		palette: DefaultPalette,
	}
}

func (s *LeaderboardService) ComputeLeaderboard(ctx context.Context) ([]leaderboarddomain.Entry, error) {
	result, err := operations.WithTelemetry(s.runner, ctx, "ComputeLeaderboard", "global", func(ctx context.Context) (results.OperationResult[[]leaderboarddomain.Entry, error], error) {
		return s.computeLogic(ctx)
	})
	if err != nil {
		return nil, err
	}
	if result.IsFailure() {
		return nil, *result.Failure
	}
	return *result.Success, nil
}

func (s *LeaderboardService) computeLogic(ctx context.Context) (results.OperationResult[[]leaderboarddomain.Entry, error], error) {
	rows, err := s.repo.AggregateUserStats(ctx, nil)
	if err != nil {
		s.logger.ErrorContext(ctx, "Leaderboard aggregate failed",
			attr.ExtractCorrelationID(ctx),
			attr.Error(err),
		)
		return results.FailureResult[[]leaderboarddomain.Entry, error](leaderboarddomain.ErrAggregationUnavailable), nil
	}

	entries := make([]leaderboarddomain.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, leaderboarddomain.Entry{
			UserID:                  row.UserID,
			DisplayName:             row.DisplayName,
			TotalVotesReceived:      row.TotalVotes,
			ApprovedSubmissionCount: row.ApprovedCount,
		})
	}
	return results.SuccessResult[[]leaderboarddomain.Entry, error](leaderboarddomain.Rank(entries)), nil
}

func (s *LeaderboardService) RenderLeaderboardChart(ctx context.Context, limit int) ([]byte, error) {
	if limit <= 0 {
		limit = defaultChartLimit
	}
	limit = min(limit, maxChartLimit)

	entries, err := s.ComputeLeaderboard(ctx)
	if err != nil {
		return nil, err
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return GenerateLeaderboardChart(entries, s.palette)
}
