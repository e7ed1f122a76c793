package userdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ErrNotFound is returned when a user is not found.
var ErrNotFound = errors.New("user not found")

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new user repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// Upsert inserts the user or refreshes role and display name.
func (r *Impl) Upsert(ctx context.Context, db bun.IDB, user *User) error {
	db = r.resolveDB(db)
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	_, err := db.NewInsert().
		Model(user).
		On("CONFLICT (id) DO UPDATE").
		Set("role = EXCLUDED.role").
		Set("display_name = CASE WHEN EXCLUDED.display_name <> '' THEN EXCLUDED.display_name ELSE u.display_name END").
		Set("updated_at = EXCLUDED.updated_at").
		Returning("approved, approved_at, created_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by id.
func (r *Impl) GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*User, error) {
	db = r.resolveDB(db)
	user := new(User)
	err := db.NewSelect().
		Model(user).
		Where("u.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

// MarkApproved sets approved = true, keeping the first approval time.
func (r *Impl) MarkApproved(ctx context.Context, db bun.IDB, id uuid.UUID, at time.Time) error {
	db = r.resolveDB(db)
	result, err := db.NewUpdate().
		Model((*User)(nil)).
		Set("approved = TRUE").
		Set("approved_at = COALESCE(approved_at, ?)", at).
		Set("updated_at = ?", at).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to approve user: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// ListUnapproved returns waitlisted users, oldest first.
func (r *Impl) ListUnapproved(ctx context.Context, db bun.IDB, limit int) ([]User, error) {
	db = r.resolveDB(db)
	var users []User
	err := db.NewSelect().
		Model(&users).
		Where("u.approved = FALSE").
		OrderExpr("u.created_at ASC, u.id ASC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list unapproved users: %w", err)
	}
	return users, nil
}
