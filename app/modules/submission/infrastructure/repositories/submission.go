package submissiondb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ErrNotFound is returned when a submission is not found.
var ErrNotFound = errors.New("submission not found")

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new submission repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// Insert relies on the unique (user_id, tournament_id) constraint so that two
// concurrent submits cannot both land.
func (r *Impl) Insert(ctx context.Context, db bun.IDB, s *Submission) (bool, error) {
	db = r.resolveDB(db)
	now := time.Now().UTC()
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = s.CreatedAt

	result, err := db.NewInsert().
		Model(s).
		On("CONFLICT (user_id, tournament_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to insert submission: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows == 1, nil
}

func (r *Impl) GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*Submission, error) {
	return r.get(ctx, r.resolveDB(db), id, false)
}

func (r *Impl) LockByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*Submission, error) {
	return r.get(ctx, r.resolveDB(db), id, true)
}

func (r *Impl) get(ctx context.Context, db bun.IDB, id uuid.UUID, forUpdate bool) (*Submission, error) {
	s := new(Submission)
	q := db.NewSelect().
		Model(s).
		Where("s.id = ?", id)
	if forUpdate {
		q = q.For("UPDATE")
	}
	if err := q.Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	return s, nil
}

func (r *Impl) UpdateStatus(ctx context.Context, db bun.IDB, id uuid.UUID, status string) (*Submission, error) {
	db = r.resolveDB(db)
	s := new(Submission)
	result, err := db.NewUpdate().
		Model(s).
		Set("status = ?", status).
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", id).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update submission status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return nil, ErrNotFound
	}
	return s, nil
}

func (r *Impl) SetScore(ctx context.Context, db bun.IDB, id uuid.UUID, score int) error {
	db = r.resolveDB(db)
	result, err := db.NewUpdate().
		Model((*Submission)(nil)).
		Set("score = ?", score).
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set submission score: %w", err)
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

func (r *Impl) List(ctx context.Context, db bun.IDB, tournamentID uuid.UUID, status string) ([]Submission, error) {
	db = r.resolveDB(db)
	var subs []Submission
	q := db.NewSelect().
		Model(&subs).
		Where("s.tournament_id = ?", tournamentID).
		OrderExpr("s.created_at ASC, s.id ASC")
	if status != "" {
		q = q.Where("s.status = ?", status)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return subs, nil
}

func (r *Impl) ListRanked(ctx context.Context, db bun.IDB, tournamentID uuid.UUID) ([]Submission, error) {
	db = r.resolveDB(db)
	var subs []Submission
	err := db.NewSelect().
		Model(&subs).
		Where("s.tournament_id = ?", tournamentID).
		Where("s.status = ?", "approved").
		OrderExpr("s.score DESC, s.created_at ASC, s.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to rank submissions: %w", err)
	}
	return subs, nil
}

func (r *Impl) ListIDs(ctx context.Context, db bun.IDB) ([]uuid.UUID, error) {
	db = r.resolveDB(db)
	var ids []uuid.UUID
	err := db.NewSelect().
		Model((*Submission)(nil)).
		Column("s.id").
		OrderExpr("s.id ASC").
		Scan(ctx, &ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list submission ids: %w", err)
	}
	return ids, nil
}
