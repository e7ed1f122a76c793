package submissionservice

import (
	"context"
	"errors"
	"log/slog"
	"time"

	authdomain "github.com/Black-And-White-Club/clip-arena/app/modules/auth/domain"
	submissiondomain "github.com/Black-And-White-Club/clip-arena/app/modules/submission/domain"
	submissiondb "github.com/Black-And-White-Club/clip-arena/app/modules/submission/infrastructure/repositories"
	tournamentdomain "github.com/Black-And-White-Club/clip-arena/app/modules/tournament/domain"
	tournamentdb "github.com/Black-And-White-Club/clip-arena/app/modules/tournament/infrastructure/repositories"
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

// SubmissionService implements the Service interface.
type SubmissionService struct {
	repo        submissiondb.Repository
	tournaments TournamentReader
	publisher   message.Publisher
	logger      *slog.Logger
	runner      *operations.Runner
	now         func() time.Time
}

// NewSubmissionService creates a new SubmissionService.
func NewSubmissionService(
	repo submissiondb.Repository,
	tournaments TournamentReader,
	publisher message.Publisher,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *SubmissionService {
	runner := operations.NewRunner("SubmissionService", logger, metrics, tracer, db)
	return &SubmissionService{
		repo:        repo,
		tournaments: tournaments,
		publisher:   publisher,
		logger:      runner.Logger,
		runner:      runner,
		now:         time.Now,
	}
}

// SubmitClip enters a clip. The unique (user, tournament) constraint decides
// duplicates, so a double-click cannot create two rows.
func (s *SubmissionService) SubmitClip(ctx context.Context, actor authdomain.Actor, tournamentID uuid.UUID, draft submissiondomain.Draft) (*submissiondomain.Submission, error) {
	draft, err := draft.Normalize()
	if err != nil {
		return nil, err
	}

	sub, err := operations.Execute(s.runner, ctx, "SubmitClip", actor.UserID.String(), func(ctx context.Context, db bun.IDB) (results.OperationResult[*submissiondomain.Submission, error], error) {
		return s.submitClipLogic(ctx, db, actor, tournamentID, draft)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, submissiondomain.SubmissionCreatedTopic, submissiondomain.SubmissionCreatedPayload{
		SubmissionID: sub.ID,
		TournamentID: sub.TournamentID,
		UserID:       sub.UserID,
		Title:        sub.Title,
		CreatedAt:    sub.CreatedAt,
	})
	return sub, nil
}

func (s *SubmissionService) submitClipLogic(ctx context.Context, db bun.IDB, actor authdomain.Actor, tournamentID uuid.UUID, draft submissiondomain.Draft) (results.OperationResult[*submissiondomain.Submission, error], error) {
	t, err := s.tournaments.GetByID(ctx, db, tournamentID)
	if err != nil {
		if errors.Is(err, tournamentdb.ErrNotFound) {
			return results.FailureResult[*submissiondomain.Submission, error](tournamentdomain.ErrTournamentNotFound), nil
		}
		return results.OperationResult[*submissiondomain.Submission, error]{}, err
	}
	if !tournamentdomain.Status(t.Status).AcceptsSubmissions() {
		return results.FailureResult[*submissiondomain.Submission, error](submissiondomain.ErrTournamentNotActive), nil
	}

	row := &submissiondb.Submission{
		ID:           uuid.New(),
		TournamentID: tournamentID,
		UserID:       actor.UserID,
		Title:        draft.Title,
		ClipURL:      draft.ClipURL,
		Description:  draft.Description,
		Status:       string(submissiondomain.StatusPending),
		Score:        0,
		CreatedAt:    s.now().UTC(),
	}
	inserted, err := s.repo.Insert(ctx, db, row)
	if err != nil {
		return results.OperationResult[*submissiondomain.Submission, error]{}, err
	}
	if !inserted {
		return results.FailureResult[*submissiondomain.Submission, error](submissiondomain.ErrDuplicateSubmission), nil
	}
	return results.SuccessResult[*submissiondomain.Submission, error](ToDomain(row)), nil
}

// ModerateSubmission overwrites the status unconditionally. Votes are left in
// place; reads filter on status.
func (s *SubmissionService) ModerateSubmission(ctx context.Context, actor authdomain.Actor, submissionID uuid.UUID, status submissiondomain.Status) (*submissiondomain.Submission, error) {
	if !actor.IsAdmin() {
		return nil, submissiondomain.ErrForbidden
	}
	if !status.IsValid() {
		return nil, submissiondomain.ErrInvalidStatus
	}

	var previous submissiondomain.Status
	sub, err := operations.Execute(s.runner, ctx, "ModerateSubmission", submissionID.String(), func(ctx context.Context, db bun.IDB) (results.OperationResult[*submissiondomain.Submission, error], error) {
		current, err := s.repo.LockByID(ctx, db, submissionID)
		if err != nil {
			if errors.Is(err, submissiondb.ErrNotFound) {
				return results.FailureResult[*submissiondomain.Submission, error](submissiondomain.ErrSubmissionNotFound), nil
			}
			return results.OperationResult[*submissiondomain.Submission, error]{}, err
		}
		previous = submissiondomain.Status(current.Status)

		updated, err := s.repo.UpdateStatus(ctx, db, submissionID, string(status))
		if err != nil {
			if errors.Is(err, submissiondb.ErrNotFound) {
				return results.FailureResult[*submissiondomain.Submission, error](submissiondomain.ErrSubmissionNotFound), nil
			}
			return results.OperationResult[*submissiondomain.Submission, error]{}, err
		}
		return results.SuccessResult[*submissiondomain.Submission, error](ToDomain(updated)), nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, submissiondomain.SubmissionModeratedTopic, submissiondomain.SubmissionModeratedPayload{
		SubmissionID:   sub.ID,
		TournamentID:   sub.TournamentID,
		AuthorID:       sub.UserID,
		Title:          sub.Title,
		PreviousStatus: previous,
		NewStatus:      sub.Status,
		ModeratorID:    actor.UserID,
		ModeratedAt:    s.now().UTC(),
	})
	return sub, nil
}

func (s *SubmissionService) GetSubmission(ctx context.Context, submissionID uuid.UUID) (*submissiondomain.Submission, error) {
	return operations.Execute(s.runner, ctx, "GetSubmission", submissionID.String(), func(ctx context.Context, db bun.IDB) (results.OperationResult[*submissiondomain.Submission, error], error) {
		row, err := s.repo.GetByID(ctx, db, submissionID)
		if err != nil {
			if errors.Is(err, submissiondb.ErrNotFound) {
				return results.FailureResult[*submissiondomain.Submission, error](submissiondomain.ErrSubmissionNotFound), nil
			}
			return results.OperationResult[*submissiondomain.Submission, error]{}, err
		}
		return results.SuccessResult[*submissiondomain.Submission, error](ToDomain(row)), nil
	})
}

func (s *SubmissionService) ListSubmissions(ctx context.Context, tournamentID uuid.UUID, status submissiondomain.Status) ([]submissiondomain.Submission, error) {
	if status != "" && !status.IsValid() {
		return nil, submissiondomain.ErrInvalidStatus
	}

	return operations.Execute(s.runner, ctx, "ListSubmissions", tournamentID.String(), func(ctx context.Context, db bun.IDB) (results.OperationResult[[]submissiondomain.Submission, error], error) {
		rows, err := s.repo.List(ctx, db, tournamentID, string(status))
		if err != nil {
			return results.OperationResult[[]submissiondomain.Submission, error]{}, err
		}
		out := make([]submissiondomain.Submission, 0, len(rows))
		for i := range rows {
			out = append(out, *ToDomain(&rows[i]))
		}
		return results.SuccessResult[[]submissiondomain.Submission, error](out), nil
	})
}

func (s *SubmissionService) publish(ctx context.Context, topic string, payload any) {
	if err := eventbus.Publish(ctx, s.publisher, topic, payload); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish submission event",
			attr.ExtractCorrelationID(ctx),
			attr.String("topic", topic),
			attr.Error(err),
		)
	}
}

// ToDomain maps a stored row to the domain type.
func ToDomain(row *submissiondb.Submission) *submissiondomain.Submission {
	return &submissiondomain.Submission{
		ID:           row.ID,
		TournamentID: row.TournamentID,
		UserID:       row.UserID,
		Title:        row.Title,
		ClipURL:      row.ClipURL,
		Description:  row.Description,
		Status:       submissiondomain.Status(row.Status),
		Score:        row.Score,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
