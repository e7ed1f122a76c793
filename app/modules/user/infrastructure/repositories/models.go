package userdb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// User represents a platform account.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`
	ID            uuid.UUID  `bun:"id,pk,type:uuid" json:"id"`
	Role          string     `bun:"role,notnull,default:'user'" json:"role"`
	Approved      bool       `bun:"approved,notnull,default:false" json:"approved"`
	DisplayName   string     `bun:"display_name,notnull,default:''" json:"display_name"`
	ApprovedAt    *time.Time `bun:"approved_at,nullzero" json:"approved_at,omitempty"`
	CreatedAt     time.Time  `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt     time.Time  `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
}
