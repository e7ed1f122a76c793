package accesscodedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ErrNotFound is returned when a code is not found.
var ErrNotFound = errors.New("access code not found")

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new access code repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) InsertCode(ctx context.Context, db bun.IDB, code *AccessCode) (bool, error) {
	db = r.resolveDB(db)
	if code.ID == uuid.Nil {
		code.ID = uuid.New()
	}
	if code.CreatedAt.IsZero() {
		code.CreatedAt = time.Now().UTC()
	}

	result, err := db.NewInsert().
		Model(code).
		On("CONFLICT (code) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to insert access code: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows == 1, nil
}

func (r *Impl) GetByCode(ctx context.Context, db bun.IDB, code string) (*AccessCode, error) {
	db = r.resolveDB(db)
	ac := new(AccessCode)
	err := db.NewSelect().
		Model(ac).
		Where("ac.code = ?", code).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get access code: %w", err)
	}
	return ac, nil
}

// MarkRedeemed is a conditional update. Postgres re-evaluates the WHERE
// clause after a concurrent writer commits, so exactly one caller sees a row.
func (r *Impl) MarkRedeemed(ctx context.Context, db bun.IDB, id, redeemerID uuid.UUID, at time.Time) (bool, error) {
	db = r.resolveDB(db)
	result, err := db.NewUpdate().
		Model((*AccessCode)(nil)).
		Set("used_by = ?", redeemerID).
		Set("used_at = ?", at).
		Where("id = ?", id).
		Where("used_by IS NULL").
		Where("(expires_at IS NULL OR expires_at > ?)", at).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to redeem access code: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows == 1, nil
}

func (r *Impl) ListByCreator(ctx context.Context, db bun.IDB, creatorID uuid.UUID, limit int) ([]AccessCode, error) {
	db = r.resolveDB(db)
	var codes []AccessCode
	q := db.NewSelect().
		Model(&codes).
		Where("ac.created_by = ?", creatorID).
		OrderExpr("ac.created_at DESC, ac.code ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list access codes: %w", err)
	}
	return codes, nil
}

func (r *Impl) CreateReferral(ctx context.Context, db bun.IDB, referral *Referral) (bool, error) {
	db = r.resolveDB(db)
	if referral.ID == uuid.Nil {
		referral.ID = uuid.New()
	}
	if referral.CreatedAt.IsZero() {
		referral.CreatedAt = time.Now().UTC()
	}

	result, err := db.NewInsert().
		Model(referral).
		On("CONFLICT (referred_user_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to create referral: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows == 1, nil
}

func (r *Impl) ListReferrals(ctx context.Context, db bun.IDB, referrerID uuid.UUID) ([]ReferredUserRow, error) {
	db = r.resolveDB(db)
	var rows []ReferredUserRow
	err := db.NewSelect().
		TableExpr("user_referrals AS ur").
		ColumnExpr("ur.referred_user_id AS user_id").
		ColumnExpr("COALESCE(u.display_name, '') AS display_name").
		ColumnExpr("ur.created_at AS joined_at").
		Join("LEFT JOIN users AS u ON u.id = ur.referred_user_id").
		Where("ur.referrer_id = ?", referrerID).
		OrderExpr("ur.created_at ASC, ur.referred_user_id ASC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list referrals: %w", err)
	}
	return rows, nil
}
