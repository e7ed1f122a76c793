package tournamentdb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines the contract for tournament persistence.
type Repository interface {
	Create(ctx context.Context, db bun.IDB, t *Tournament) error
	GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*Tournament, error)
	// UpdateStatus returns ErrNotFound when no row matches.
	UpdateStatus(ctx context.Context, db bun.IDB, id uuid.UUID, status string) (*Tournament, error)
	// List returns tournaments newest first, optionally filtered by status.
	List(ctx context.Context, db bun.IDB, status string) ([]Tournament, error)
}
