package votingdb

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new voting repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// UpsertVote is a single statement keyed on (voter_id, submission_id), so two
// concurrent casts by the same voter collapse into one row.
func (r *Impl) UpsertVote(ctx context.Context, db bun.IDB, vote *Vote) error {
	db = r.resolveDB(db)
	now := time.Now().UTC()
	if vote.ID == uuid.Nil {
		vote.ID = uuid.New()
	}
	if vote.CreatedAt.IsZero() {
		vote.CreatedAt = now
	}
	vote.UpdatedAt = now

	_, err := db.NewInsert().
		Model(vote).
		On("CONFLICT (voter_id, submission_id) DO UPDATE").
		Set("rank = EXCLUDED.rank").
		Set("updated_at = EXCLUDED.updated_at").
		Returning("id, created_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert vote: %w", err)
	}
	return nil
}

func (r *Impl) DeleteVote(ctx context.Context, db bun.IDB, voterID, submissionID uuid.UUID) (bool, error) {
	db = r.resolveDB(db)
	result, err := db.NewDelete().
		Model((*Vote)(nil)).
		Where("voter_id = ?", voterID).
		Where("submission_id = ?", submissionID).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to delete vote: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}

func (r *Impl) ListRanks(ctx context.Context, db bun.IDB, submissionID uuid.UUID) ([]int, error) {
	db = r.resolveDB(db)
	var ranks []int
	err := db.NewSelect().
		Model((*Vote)(nil)).
		Column("v.rank").
		Where("v.submission_id = ?", submissionID).
		Scan(ctx, &ranks)
	if err != nil {
		return nil, fmt.Errorf("failed to list vote ranks: %w", err)
	}
	return ranks, nil
}

func (r *Impl) RankHeldElsewhere(ctx context.Context, db bun.IDB, voterID, tournamentID, submissionID uuid.UUID, rank int) (bool, error) {
	db = r.resolveDB(db)
	exists, err := db.NewSelect().
		Model((*Vote)(nil)).
		Join("JOIN submissions AS s ON s.id = v.submission_id").
		Where("v.voter_id = ?", voterID).
		Where("v.rank = ?", rank).
		Where("v.submission_id <> ?", submissionID).
		Where("s.tournament_id = ?", tournamentID).
		Where("s.status = ?", "approved").
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check rank exclusivity: %w", err)
	}
	return exists, nil
}

func (r *Impl) LockVoterTournament(ctx context.Context, db bun.IDB, voterID, tournamentID uuid.UUID) error {
	db = r.resolveDB(db)
	key := voterID.String() + ":" + tournamentID.String()
	if _, err := db.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtextextended(?, 0))", key); err != nil {
		return fmt.Errorf("failed to lock voter ranks: %w", err)
	}
	return nil
}

func (r *Impl) InsertLike(ctx context.Context, db bun.IDB, like *Like) (bool, error) {
	db = r.resolveDB(db)
	if like.ID == uuid.Nil {
		like.ID = uuid.New()
	}
	if like.CreatedAt.IsZero() {
		like.CreatedAt = time.Now().UTC()
	}

	result, err := db.NewInsert().
		Model(like).
		On("CONFLICT (submission_id, user_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to insert like: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows == 1, nil
}

func (r *Impl) DeleteLike(ctx context.Context, db bun.IDB, userID, submissionID uuid.UUID) (bool, error) {
	db = r.resolveDB(db)
	result, err := db.NewDelete().
		Model((*Like)(nil)).
		Where("user_id = ?", userID).
		Where("submission_id = ?", submissionID).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to delete like: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}

func (r *Impl) CountLikes(ctx context.Context, db bun.IDB, submissionID uuid.UUID) (int, error) {
	db = r.resolveDB(db)
	n, err := db.NewSelect().
		Model((*Like)(nil)).
		Where("l.submission_id = ?", submissionID).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return n, nil
}
