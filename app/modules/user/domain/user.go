package userdomain

import (
	"time"

	authdomain "github.com/Black-And-White-Club/clip-arena/app/modules/auth/domain"
	"github.com/Black-And-White-Club/clip-arena/pkg/domainerr"
	"github.com/google/uuid"
)

// User is a platform account. Approved users may submit, vote and issue
// referral codes; everyone else waits on the waitlist.
type User struct {
	ID          uuid.UUID       `json:"id"`
	Role        authdomain.Role `json:"role"`
	Approved    bool            `json:"approved"`
	DisplayName string          `json:"display_name"`
	ApprovedAt  *time.Time      `json:"approved_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

var (
	ErrUserNotFound = domainerr.NotFound("user_not_found", "user not found")
	ErrForbidden    = domainerr.Forbidden("forbidden", "admin role required")
)

// MaxWaitlistPage bounds a single waitlist listing.
const MaxWaitlistPage = 200
