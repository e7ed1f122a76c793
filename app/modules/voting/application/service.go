package votingservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	authdomain "github.com/Black-And-White-Club/clip-arena/app/modules/auth/domain"
	submissionservice "github.com/Black-And-White-Club/clip-arena/app/modules/submission/application"
	submissiondomain "github.com/Black-And-White-Club/clip-arena/app/modules/submission/domain"
	submissiondb "github.com/Black-And-White-Club/clip-arena/app/modules/submission/infrastructure/repositories"
	votingdomain "github.com/Black-And-White-Club/clip-arena/app/modules/voting/domain"
	votingdb "github.com/Black-And-White-Club/clip-arena/app/modules/voting/infrastructure/repositories"
	"github.com/Black-And-White-Club/clip-arena/pkg/attr"
	"github.com/Black-And-White-Club/clip-arena/pkg/eventbus"
	"github.com/Black-And-White-Club/clip-arena/pkg/observability"
	"github.com/Black-And-White-Club/clip-arena/pkg/operations"
	"github.com/Black-And-White-Club/clip-arena/pkg/results"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// VotingService implements the Service interface.
type VotingService struct {
	repo        votingdb.Repository
	submissions SubmissionStore
	publisher   message.Publisher
	rules       votingdomain.Rules
	logger      *slog.Logger
	runner      *operations.Runner
}

// NewVotingService creates a new VotingService.
func NewVotingService(
	repo votingdb.Repository,
	submissions SubmissionStore,
	publisher message.Publisher,
	rules votingdomain.Rules,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *VotingService {
	runner := operations.NewRunner("VotingService", logger, metrics, tracer, db)
	return &VotingService{
		repo:        repo,
		submissions: submissions,
		publisher:   publisher,
		rules:       rules,
		logger:      runner.Logger,
		runner:      runner,
	}
}

// CastVote writes the vote and recomputes the score under the submission row
// lock, so concurrent voters serialize and every recompute sees the full set.
func (s *VotingService) CastVote(ctx context.Context, actor authdomain.Actor, submissionID uuid.UUID, rank int) (*votingdomain.VoteResult, error) {
	if err := votingdomain.ValidateRank(rank); err != nil {
		return nil, err
	}

	result, err := operations.Execute(s.runner, ctx, "CastVote", submissionID.String(), func(ctx context.Context, db bun.IDB) (results.OperationResult[*votingdomain.VoteResult, error], error) {
		return s.castVoteLogic(ctx, db, actor, submissionID, rank)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, votingdomain.VoteCastTopic, votingdomain.VoteCastPayload{
		SubmissionID: submissionID,
		VoterID:      actor.UserID,
		Rank:         rank,
		Score:        result.Score,
	})
	return result, nil
}

func (s *VotingService) castVoteLogic(ctx context.Context, db bun.IDB, actor authdomain.Actor, submissionID uuid.UUID, rank int) (results.OperationResult[*votingdomain.VoteResult, error], error) {
	sub, err := s.submissions.LockByID(ctx, db, submissionID)
	if err != nil {
		if errors.Is(err, submissiondb.ErrNotFound) {
			return results.FailureResult[*votingdomain.VoteResult, error](submissiondomain.ErrSubmissionNotFound), nil
		}
		return results.OperationResult[*votingdomain.VoteResult, error]{}, err
	}

	if submissiondomain.Status(sub.Status) != submissiondomain.StatusApproved {
		return results.FailureResult[*votingdomain.VoteResult, error](votingdomain.ErrSubmissionNotApproved), nil
	}
	if s.rules.PreventSelfVote && sub.UserID == actor.UserID {
		return results.FailureResult[*votingdomain.VoteResult, error](votingdomain.ErrSelfVote), nil
	}

	if s.rules.ExclusiveRanks {
		if err := s.repo.LockVoterTournament(ctx, db, actor.UserID, sub.TournamentID); err != nil {
			return results.OperationResult[*votingdomain.VoteResult, error]{}, err
		}
		held, err := s.repo.RankHeldElsewhere(ctx, db, actor.UserID, sub.TournamentID, submissionID, rank)
		if err != nil {
			return results.OperationResult[*votingdomain.VoteResult, error]{}, err
		}
		if held {
			return results.FailureResult[*votingdomain.VoteResult, error](votingdomain.ErrRankAlreadyAssigned), nil
		}
	}

	if err := s.repo.UpsertVote(ctx, db, &votingdb.Vote{
		SubmissionID: submissionID,
		VoterID:      actor.UserID,
		Rank:         rank,
	}); err != nil {
		return results.OperationResult[*votingdomain.VoteResult, error]{}, err
	}

	score, err := s.recomputeScore(ctx, db, submissionID)
	if err != nil {
		return results.OperationResult[*votingdomain.VoteResult, error]{}, err
	}

	r := rank
	return results.SuccessResult[*votingdomain.VoteResult, error](&votingdomain.VoteResult{
		SubmissionID: submissionID,
		Score:        score,
		Rank:         &r,
	}), nil
}

// RetractVote removes the actor's vote. It works on submissions in any status
// so inert votes on rejected entries can still be withdrawn.
func (s *VotingService) RetractVote(ctx context.Context, actor authdomain.Actor, submissionID uuid.UUID) (*votingdomain.VoteResult, error) {
	result, err := operations.Execute(s.runner, ctx, "RetractVote", submissionID.String(), func(ctx context.Context, db bun.IDB) (results.OperationResult[*votingdomain.VoteResult, error], error) {
		if _, err := s.submissions.LockByID(ctx, db, submissionID); err != nil {
			if errors.Is(err, submissiondb.ErrNotFound) {
				return results.FailureResult[*votingdomain.VoteResult, error](submissiondomain.ErrSubmissionNotFound), nil
			}
			return results.OperationResult[*votingdomain.VoteResult, error]{}, err
		}

		deleted, err := s.repo.DeleteVote(ctx, db, actor.UserID, submissionID)
		if err != nil {
			return results.OperationResult[*votingdomain.VoteResult, error]{}, err
		}
		if !deleted {
			return results.FailureResult[*votingdomain.VoteResult, error](votingdomain.ErrVoteNotFound), nil
		}

		score, err := s.recomputeScore(ctx, db, submissionID)
		if err != nil {
			return results.OperationResult[*votingdomain.VoteResult, error]{}, err
		}
		return results.SuccessResult[*votingdomain.VoteResult, error](&votingdomain.VoteResult{
			SubmissionID: submissionID,
			Score:        score,
		}), nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, votingdomain.VoteRetractedTopic, votingdomain.VoteRetractedPayload{
		SubmissionID: submissionID,
		VoterID:      actor.UserID,
		Score:        result.Score,
	})
	return result, nil
}

// ToggleLike inserts the like, or deletes it when it already existed.
func (s *VotingService) ToggleLike(ctx context.Context, actor authdomain.Actor, submissionID uuid.UUID) (*votingdomain.LikeResult, error) {
	return operations.Execute(s.runner, ctx, "ToggleLike", submissionID.String(), func(ctx context.Context, db bun.IDB) (results.OperationResult[*votingdomain.LikeResult, error], error) {
		if _, err := s.submissions.GetByID(ctx, db, submissionID); err != nil {
			if errors.Is(err, submissiondb.ErrNotFound) {
				return results.FailureResult[*votingdomain.LikeResult, error](submissiondomain.ErrSubmissionNotFound), nil
			}
			return results.OperationResult[*votingdomain.LikeResult, error]{}, err
		}

		liked, err := s.repo.InsertLike(ctx, db, &votingdb.Like{SubmissionID: submissionID, UserID: actor.UserID})
		if err != nil {
			return results.OperationResult[*votingdomain.LikeResult, error]{}, err
		}
		if !liked {
			if _, err := s.repo.DeleteLike(ctx, db, actor.UserID, submissionID); err != nil {
				return results.OperationResult[*votingdomain.LikeResult, error]{}, err
			}
		}

		count, err := s.repo.CountLikes(ctx, db, submissionID)
		if err != nil {
			return results.OperationResult[*votingdomain.LikeResult, error]{}, err
		}
		return results.SuccessResult[*votingdomain.LikeResult, error](&votingdomain.LikeResult{
			SubmissionID: submissionID,
			Liked:        liked,
			Likes:        count,
		}), nil
	})
}

func (s *VotingService) GetTournamentRanking(ctx context.Context, tournamentID uuid.UUID) ([]submissiondomain.RankedSubmission, error) {
	return operations.Execute(s.runner, ctx, "GetTournamentRanking", tournamentID.String(), func(ctx context.Context, db bun.IDB) (results.OperationResult[[]submissiondomain.RankedSubmission, error], error) {
		rows, err := s.submissions.ListRanked(ctx, db, tournamentID)
		if err != nil {
			return results.OperationResult[[]submissiondomain.RankedSubmission, error]{}, err
		}
		out := make([]submissiondomain.RankedSubmission, 0, len(rows))
		for i := range rows {
			out = append(out, submissiondomain.RankedSubmission{
				Position:   i + 1,
				Submission: *submissionservice.ToDomain(&rows[i]),
			})
		}
		return results.SuccessResult[[]submissiondomain.RankedSubmission, error](out), nil
	})
}

// ReconcileScores walks every submission in its own transaction so one bad
// row does not block the rest. It errors only when no submission could be
// reconciled.
func (s *VotingService) ReconcileScores(ctx context.Context) (*votingdomain.ReconcileReport, error) {
	result, err := operations.WithTelemetry(s.runner, ctx, "ReconcileScores", "all", func(ctx context.Context) (results.OperationResult[*votingdomain.ReconcileReport, error], error) {
		ids, err := s.submissions.ListIDs(ctx, nil)
		if err != nil {
			return results.OperationResult[*votingdomain.ReconcileReport, error]{}, err
		}

		report := &votingdomain.ReconcileReport{}
		var lastErr error
		for _, id := range ids {
			if err := ctx.Err(); err != nil {
				return results.OperationResult[*votingdomain.ReconcileReport, error]{}, err
			}
			report.Checked++

			res, err := operations.RunInTx(s.runner, ctx, func(ctx context.Context, db bun.IDB) (results.OperationResult[bool, error], error) {
				return s.reconcileOne(ctx, db, id)
			})
			if err != nil {
				report.Failed++
				lastErr = err
				s.logger.WarnContext(ctx, "Failed to reconcile submission score",
					attr.ExtractCorrelationID(ctx),
					attr.UUID("submission_id", id),
					attr.Error(err),
				)
				continue
			}
			if res.IsSuccess() && *res.Success {
				report.Corrected++
			}
		}

		s.logger.InfoContext(ctx, "Score reconciliation finished",
			attr.Int("checked", report.Checked),
			attr.Int("corrected", report.Corrected),
			attr.Int("failed", report.Failed),
		)
		if report.Checked > 0 && report.Failed == report.Checked {
			return results.OperationResult[*votingdomain.ReconcileReport, error]{}, fmt.Errorf("reconcile failed for all %d submissions: %w", report.Checked, lastErr)
		}
		return results.SuccessResult[*votingdomain.ReconcileReport, error](report), nil
	})
	if err != nil {
		return nil, err
	}
	return *result.Success, nil
}

func (s *VotingService) reconcileOne(ctx context.Context, db bun.IDB, id uuid.UUID) (results.OperationResult[bool, error], error) {
	sub, err := s.submissions.LockByID(ctx, db, id)
	if err != nil {
		if errors.Is(err, submissiondb.ErrNotFound) {
			// Deleted since listing.
			return results.SuccessResult[bool, error](false), nil
		}
		return results.OperationResult[bool, error]{}, err
	}

	ranks, err := s.repo.ListRanks(ctx, db, id)
	if err != nil {
		return results.OperationResult[bool, error]{}, err
	}
	want := votingdomain.ScoreOf(ranks)
	if want == sub.Score {
		return results.SuccessResult[bool, error](false), nil
	}

	if err := s.submissions.SetScore(ctx, db, id, want); err != nil {
		return results.OperationResult[bool, error]{}, err
	}
	s.logger.InfoContext(ctx, "Corrected drifted submission score",
		attr.UUID("submission_id", id),
		attr.Int("cached", sub.Score),
		attr.Int("actual", want),
	)
	return results.SuccessResult[bool, error](true), nil
}

// recomputeScore derives the score from the stored votes and caches it. It
// must run under the submission row lock.
func (s *VotingService) recomputeScore(ctx context.Context, db bun.IDB, submissionID uuid.UUID) (int, error) {
	ranks, err := s.repo.ListRanks(ctx, db, submissionID)
	if err != nil {
		return 0, err
	}
	score := votingdomain.ScoreOf(ranks)
	if err := s.submissions.SetScore(ctx, db, submissionID, score); err != nil {
		return 0, fmt.Errorf("failed to persist score: %w", err)
	}
	return score, nil
}

func (s *VotingService) publish(ctx context.Context, topic string, payload any) {
	if err := eventbus.Publish(ctx, s.publisher, topic, payload); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish vote event",
			attr.ExtractCorrelationID(ctx),
			attr.String("topic", topic),
			attr.Error(err),
		)
	}
}
