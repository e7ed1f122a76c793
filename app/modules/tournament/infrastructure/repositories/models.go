package tournamentdb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Tournament is the persisted tournament row.
type Tournament struct {
	bun.BaseModel `bun:"table:tournaments,alias:t"`
	ID            uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	Name          string    `bun:"name,notnull" json:"name"`
	Status        string    `bun:"status,notnull" json:"status"`
	CreatedBy     uuid.UUID `bun:"created_by,type:uuid,notnull" json:"created_by"`
	CreatedAt     time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt     time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
}
