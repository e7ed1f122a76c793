package userdb

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines the contract for user persistence.
type Repository interface {
	// Upsert inserts the user or refreshes its role and display name. It never
	// changes the approval flag.
	Upsert(ctx context.Context, db bun.IDB, user *User) error

	// GetByID retrieves a user by id.
	GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*User, error)

	// MarkApproved sets approved = true. The first approval time is kept.
	MarkApproved(ctx context.Context, db bun.IDB, id uuid.UUID, at time.Time) error

	// ListUnapproved returns waitlisted users, oldest first.
	ListUnapproved(ctx context.Context, db bun.IDB, limit int) ([]User, error)
}
