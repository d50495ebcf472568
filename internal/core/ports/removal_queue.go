package ports

import (
	"context"
	"time"

	"kitchen/internal/core/domain/model/kernel"
)

// RemovalQueue holds orders scheduled for deletion at a later time.
type RemovalQueue interface {
	// Schedule plans the removal of the order at the given time. Scheduling an
	// order again replaces its previous time.
	Schedule(ctx context.Context, id kernel.ID, at time.Time) error

	// ClaimDue removes and returns up to limit orders due at or before now.
	// An order is handed out to one caller only.
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]kernel.ID, error)
}
