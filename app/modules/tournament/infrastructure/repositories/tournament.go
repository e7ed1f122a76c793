package tournamentdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ErrNotFound is returned when a tournament is not found.
var ErrNotFound = errors.New("tournament not found")

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new tournament repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) Create(ctx context.Context, db bun.IDB, t *Tournament) error {
	db = r.resolveDB(db)
	now := time.Now().UTC()
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = t.CreatedAt

	if _, err := db.NewInsert().Model(t).Exec(ctx); err != nil {
		return fmt.Errorf("failed to create tournament: %w", err)
	}
	return nil
}

func (r *Impl) GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*Tournament, error) {
	db = r.resolveDB(db)
	t := new(Tournament)
	err := db.NewSelect().
		Model(t).
		Where("t.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tournament: %w", err)
	}
	return t, nil
}

func (r *Impl) UpdateStatus(ctx context.Context, db bun.IDB, id uuid.UUID, status string) (*Tournament, error) {
	db = r.resolveDB(db)
	t := new(Tournament)
	result, err := db.NewUpdate().
		Model(t).
		Set("status = ?", status).
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", id).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update tournament status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return nil, ErrNotFound
	}
	return t, nil
}

func (r *Impl) List(ctx context.Context, db bun.IDB, status string) ([]Tournament, error) {
	db = r.resolveDB(db)
	var ts []Tournament
	q := db.NewSelect().
		Model(&ts).
		OrderExpr("t.created_at DESC, t.id ASC")
	if status != "" {
		q = q.Where("t.status = ?", status)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	return ts, nil
}
