package leaderboarddb

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new leaderboard repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) AggregateUserStats(ctx context.Context, db bun.IDB) ([]UserStats, error) {
	db = r.resolveDB(db)
	var rows []UserStats
	err := db.NewSelect().
		TableExpr("users AS u").
		ColumnExpr("u.id AS user_id").
		ColumnExpr("u.display_name").
		ColumnExpr("COUNT(v.id) AS total_votes").
		ColumnExpr("COUNT(DISTINCT s.id) AS approved_count").
		Join("JOIN submissions AS s ON s.user_id = u.id AND s.status = ?", "approved").
		Join("LEFT JOIN votes AS v ON v.submission_id = s.id").
		GroupExpr("u.id, u.display_name").
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate user stats: %w", err)
	}
	return rows, nil
}
