package votingdb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Vote is a stored ranked vote.
type Vote struct {
	bun.BaseModel `bun:"table:votes,alias:v"`
	ID            uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	SubmissionID  uuid.UUID `bun:"submission_id,type:uuid,notnull" json:"submission_id"`
	VoterID       uuid.UUID `bun:"voter_id,type:uuid,notnull" json:"voter_id"`
	Rank          int       `bun:"rank,notnull" json:"rank"`
	CreatedAt     time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt     time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
}

// Like is a stored unranked like.
type Like struct {
	bun.BaseModel `bun:"table:likes,alias:l"`
	ID            uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	SubmissionID  uuid.UUID `bun:"submission_id,type:uuid,notnull" json:"submission_id"`
	UserID        uuid.UUID `bun:"user_id,type:uuid,notnull" json:"user_id"`
	CreatedAt     time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}
