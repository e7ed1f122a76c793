package tournamentdomain

import (
	"strings"
	"time"

	"github.com/Black-And-White-Club/clip-arena/pkg/domainerr"
	"github.com/google/uuid"
)

// Status is the lifecycle state of a tournament.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusActive    Status = "active"
	StatusEnded     Status = "ended"
	StatusCancelled Status = "cancelled"
)

// MaxNameLength bounds tournament names.
const MaxNameLength = 200

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	switch s {
	case StatusUpcoming, StatusActive, StatusEnded, StatusCancelled:
		return true
	}
	return false
}

// AcceptsSubmissions reports whether new clips may be entered.
func (s Status) AcceptsSubmissions() bool {
	return s == StatusActive
}

// Tournament groups submissions competing for votes.
type Tournament struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Status    Status    `json:"status"`
	CreatedBy uuid.UUID `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var (
	ErrTournamentNotFound = domainerr.NotFound("tournament_not_found", "tournament not found")
	ErrInvalidStatus      = domainerr.Validation("invalid_status", "status must be one of upcoming, active, ended, cancelled")
	ErrInvalidName        = domainerr.Validation("invalid_name", "name is required and must be at most 200 characters")
	ErrForbidden          = domainerr.Forbidden("forbidden", "only admins may manage tournaments")
)

// NormalizeName trims the name and validates its length.
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || len([]rune(name)) > MaxNameLength {
		return "", ErrInvalidName
	}
	return name, nil
}
