package submissionhandlers

import (
	"context"

	authdomain "github.com/Black-And-White-Club/clip-arena/app/modules/auth/domain"
	submissionservice "github.com/Black-And-White-Club/clip-arena/app/modules/submission/application"
	submissiondomain "github.com/Black-And-White-Club/clip-arena/app/modules/submission/domain"
	"github.com/google/uuid"
)

type FakeService struct {
	SubmitClipFunc         func(ctx context.Context, actor authdomain.Actor, tournamentID uuid.UUID, draft submissiondomain.Draft) (*submissiondomain.Submission, error)
	ModerateSubmissionFunc func(ctx context.Context, actor authdomain.Actor, submissionID uuid.UUID, status submissiondomain.Status) (*submissiondomain.Submission, error)
	GetSubmissionFunc      func(ctx context.Context, submissionID uuid.UUID) (*submissiondomain.Submission, error)
	ListSubmissionsFunc    func(ctx context.Context, tournamentID uuid.UUID, status submissiondomain.Status) ([]submissiondomain.Submission, error)
}

func (f *FakeService) SubmitClip(ctx context.Context, actor authdomain.Actor, tournamentID uuid.UUID, draft submissiondomain.Draft) (*submissiondomain.Submission, error) {
	if f.SubmitClipFunc != nil {
		return f.SubmitClipFunc(ctx, actor, tournamentID, draft)
	}
	return &submissiondomain.Submission{ID: uuid.New(), TournamentID: tournamentID, UserID: actor.UserID, Status: submissiondomain.StatusPending}, nil
}

func (f *FakeService) ModerateSubmission(ctx context.Context, actor authdomain.Actor, submissionID uuid.UUID, status submissiondomain.Status) (*submissiondomain.Submission, error) {
	if f.ModerateSubmissionFunc != nil {
		return f.ModerateSubmissionFunc(ctx, actor, submissionID, status)
	}
	return &submissiondomain.Submission{ID: submissionID, Status: status}, nil
}

func (f *FakeService) GetSubmission(ctx context.Context, submissionID uuid.UUID) (*submissiondomain.Submission, error) {
	if f.GetSubmissionFunc != nil {
		return f.GetSubmissionFunc(ctx, submissionID)
	}
	return nil, submissiondomain.ErrSubmissionNotFound
}

func (f *FakeService) ListSubmissions(ctx context.Context, tournamentID uuid.UUID, status submissiondomain.Status) ([]submissiondomain.Submission, error) {
	if f.ListSubmissionsFunc != nil {
		return f.ListSubmissionsFunc(ctx, tournamentID, status)
	}
	return nil, nil
}

var _ submissionservice.Service = (*FakeService)(nil)
