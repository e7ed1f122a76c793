package votinghandlers

import (
	"context"

	authdomain "github.com/Black-And-White-Club/clip-arena/app/modules/auth/domain"
	submissiondomain "github.com/Black-And-White-Club/clip-arena/app/modules/submission/domain"
	votingservice "github.com/Black-And-White-Club/clip-arena/app/modules/voting/application"
	votingdomain "github.com/Black-And-White-Club/clip-arena/app/modules/voting/domain"
	"github.com/google/uuid"
)

type FakeService struct {
	CastVoteFunc             func(ctx context.Context, actor authdomain.Actor, submissionID uuid.UUID, rank int) (*votingdomain.VoteResult, error)
	RetractVoteFunc          func(ctx context.Context, actor authdomain.Actor, submissionID uuid.UUID) (*votingdomain.VoteResult, error)
	ToggleLikeFunc           func(ctx context.Context, actor authdomain.Actor, submissionID uuid.UUID) (*votingdomain.LikeResult, error)
	GetTournamentRankingFunc func(ctx context.Context, tournamentID uuid.UUID) ([]submissiondomain.RankedSubmission, error)
}

func (f *FakeService) CastVote(ctx context.Context, actor authdomain.Actor, submissionID uuid.UUID, rank int) (*votingdomain.VoteResult, error) {
	if f.CastVoteFunc != nil {
		return f.CastVoteFunc(ctx, actor, submissionID, rank)
	}
	return &votingdomain.VoteResult{SubmissionID: submissionID, Score: votingdomain.PointsForRank(rank), Rank: &rank}, nil
}

func (f *FakeService) RetractVote(ctx context.Context, actor authdomain.Actor, submissionID uuid.UUID) (*votingdomain.VoteResult, error) {
	if f.RetractVoteFunc != nil {
		return f.RetractVoteFunc(ctx, actor, submissionID)
	}
	return &votingdomain.VoteResult{SubmissionID: submissionID}, nil
}

func (f *FakeService) ToggleLike(ctx context.Context, actor authdomain.Actor, submissionID uuid.UUID) (*votingdomain.LikeResult, error) {
	if f.ToggleLikeFunc != nil {
		return f.ToggleLikeFunc(ctx, actor, submissionID)
	}
	return &votingdomain.LikeResult{SubmissionID: submissionID, Liked: true, Likes: 1}, nil
}

func (f *FakeService) GetTournamentRanking(ctx context.Context, tournamentID uuid.UUID) ([]submissiondomain.RankedSubmission, error) {
	if f.GetTournamentRankingFunc != nil {
		return f.GetTournamentRankingFunc(ctx, tournamentID)
	}
	return []submissiondomain.RankedSubmission{}, nil
}

func (f *FakeService) ReconcileScores(context.Context) (*votingdomain.ReconcileReport, error) {
	return &votingdomain.ReconcileReport{}, nil
}

var _ votingservice.Service = (*FakeService)(nil)
