package submissiondomain

import "github.com/Black-And-White-Club/clip-arena/pkg/domainerr"

var (
	ErrInvalidSubmission   = domainerr.Validation("invalid_submission", "title is required (max 200 characters) and clip url must be an absolute http(s) url")
	ErrInvalidStatus       = domainerr.Validation("invalid_status", "status must be one of pending, approved, rejected")
	ErrDuplicateSubmission = domainerr.Conflict("duplicate_submission", "you have already submitted to this tournament")
	ErrTournamentNotActive = domainerr.Conflict("tournament_not_active", "tournament is not accepting submissions")
	ErrSubmissionNotFound  = domainerr.NotFound("submission_not_found", "submission not found")
	ErrForbidden           = domainerr.Forbidden("forbidden", "only admins may moderate submissions")
)
