package submissiondomain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// SubmissionCreatedTopic is published after a clip is entered.
	SubmissionCreatedTopic = "submission.created.v1"
	// SubmissionModeratedTopic is published after a moderator sets a status.
	SubmissionModeratedTopic = "submission.moderated.v1"
)

// SubmissionCreatedPayload is the body of SubmissionCreatedTopic.
type SubmissionCreatedPayload struct {
	SubmissionID uuid.UUID `json:"submission_id"`
	TournamentID uuid.UUID `json:"tournament_id"`
	UserID       uuid.UUID `json:"user_id"`
	Title        string    `json:"title"`
	CreatedAt    time.Time `json:"created_at"`
}

// SubmissionModeratedPayload is the body of SubmissionModeratedTopic.
type SubmissionModeratedPayload struct {
	SubmissionID   uuid.UUID `json:"submission_id"`
	TournamentID   uuid.UUID `json:"tournament_id"`
	AuthorID       uuid.UUID `json:"author_id"`
	Title          string    `json:"title"`
	PreviousStatus Status    `json:"previous_status"`
	NewStatus      Status    `json:"new_status"`
	ModeratorID    uuid.UUID `json:"moderator_id"`
	ModeratedAt    time.Time `json:"moderated_at"`
}
