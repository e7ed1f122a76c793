package accesscodedomain

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"time"

	authdomain "github.com/Black-And-White-Club/clip-arena/app/modules/auth/domain"
	"github.com/google/uuid"
)

// Alphabet is the character set of generated codes. Codes are stored
// uppercase so lookups are case-insensitive after normalization.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Status is the derived lifecycle state of a code. Used and expired are terminal.
type Status string

const (
	StatusUnused  Status = "unused"
	StatusUsed    Status = "used"
	StatusExpired Status = "expired"
)

// AccessCode is a single-use invitation.
type AccessCode struct {
	ID         uuid.UUID       `json:"id"`
	Code       string          `json:"code"`
	CreatedBy  uuid.UUID       `json:"created_by"`
	IssuerRole authdomain.Role `json:"issuer_role"`
	ExpiresAt  *time.Time      `json:"expires_at,omitempty"`
	UsedBy     *uuid.UUID      `json:"used_by,omitempty"`
	UsedAt     *time.Time      `json:"used_at,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Status reports the state of the code at now.
func (c AccessCode) Status(now time.Time) Status {
	if c.UsedBy != nil || c.UsedAt != nil {
		return StatusUsed
	}
	if c.ExpiresAt != nil && !c.ExpiresAt.After(now) {
		return StatusExpired
	}
	return StatusUnused
}

// Check returns the domain error that prevents redemption at now, if any.
func (c AccessCode) Check(now time.Time) error {
	switch c.Status(now) {
	case StatusUsed:
		return ErrCodeAlreadyUsed
	case StatusExpired:
		return ErrCodeExpired
	default:
		return nil
	}
}

// IsReferral reports whether redeeming the code attributes a referral.
// Admin bulk codes never do.
func (c AccessCode) IsReferral() bool {
	return c.IssuerRole == authdomain.RoleUser
}

// NormalizeCode trims and uppercases user input.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// GenerateCode returns length characters drawn uniformly from Alphabet.
func GenerateCode(length int) (string, error) {
	return generateCode(rand.Reader, length)
}

func generateCode(r io.Reader, length int) (string, error) {
	if length < 1 {
		return "", fmt.Errorf("code length must be positive, got %d", length)
	}

	// Reject bytes >= 252 so every character is equally likely (252 = 7*36).
	const limit = 256 - 256%len(Alphabet)

	out := make([]byte, 0, length)
	buf := make([]byte, length*2)
	for len(out) < length {
		if _, err := io.ReadFull(r, buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			out = append(out, Alphabet[int(b)%len(Alphabet)])
			if len(out) == length {
				break
			}
		}
	}
	return string(out), nil
}
