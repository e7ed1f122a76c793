package submissiondomain

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status is the moderation state of a submission.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
)

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Submission is one user's clip entered into one tournament.
type Submission struct {
	ID           uuid.UUID `json:"id"`
	TournamentID uuid.UUID `json:"tournament_id"`
	UserID       uuid.UUID `json:"user_id"`
	Title        string    `json:"title"`
	ClipURL      string    `json:"clip_url"`
	Description  *string   `json:"description,omitempty"`
	Status       Status    `json:"status"`
	Score        int       `json:"score"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Draft is the user input for a new submission.
type Draft struct {
	Title       string  `json:"title"`
	ClipURL     string  `json:"clip_url"`
	Description *string `json:"description,omitempty"`
}

// Normalize trims the draft and checks it. An empty description becomes nil.
func (d Draft) Normalize() (Draft, error) {
	out := Draft{
		Title:   strings.TrimSpace(d.Title),
		ClipURL: strings.TrimSpace(d.ClipURL),
	}

	if out.Title == "" || len([]rune(out.Title)) > MaxTitleLength {
		return Draft{}, ErrInvalidSubmission
	}

	u, err := url.Parse(out.ClipURL)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Draft{}, ErrInvalidSubmission
	}

	if d.Description != nil {
		desc := strings.TrimSpace(*d.Description)
		if len([]rune(desc)) > MaxDescriptionLength {
			return Draft{}, ErrInvalidSubmission
		}
		if desc != "" {
			out.Description = &desc
		}
	}
	return out, nil
}

// RankedSubmission is a submission with its 1-based position in a tournament.
type RankedSubmission struct {
	Position int `json:"position"`
	Submission
}
