package submissiondb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Submission is the persisted clip entry. Score is a cache of the vote total
// and is only written by the voting module.
type Submission struct {
	bun.BaseModel `bun:"table:submissions,alias:s"`
	ID            uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	TournamentID  uuid.UUID `bun:"tournament_id,type:uuid,notnull" json:"tournament_id"`
	UserID        uuid.UUID `bun:"user_id,type:uuid,notnull" json:"user_id"`
	Title         string    `bun:"title,notnull" json:"title"`
	ClipURL       string    `bun:"clip_url,notnull" json:"clip_url"`
	Description   *string   `bun:"description" json:"description,omitempty"`
	Status        string    `bun:"status,notnull,default:'pending'" json:"status"`
	Score         int       `bun:"score,notnull,default:0" json:"score"`
	CreatedAt     time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt     time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
}
