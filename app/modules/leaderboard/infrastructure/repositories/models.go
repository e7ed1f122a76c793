package leaderboarddb

import "github.com/google/uuid"

// UserStats is the per-user aggregate row.
type UserStats struct {
	UserID        uuid.UUID `bun:"user_id"`
	DisplayName   string    `bun:"display_name"`
	TotalVotes    int       `bun:"total_votes"`
	ApprovedCount int       `bun:"approved_count"`
}
