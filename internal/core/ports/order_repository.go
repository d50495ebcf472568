// Package ports defines the contracts between the kitchen order core and its
// infrastructure: the row store, the unit of work, event publishing and the
// deferred removal queue.
package ports

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/services"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations are bound to the transaction of the unit of work that created them.
type OrderRepository interface {
	// Add persists a new order together with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status of an existing order. Items are never rewritten.
	// Returns an ObjectNotFoundError when no order has the aggregate's id.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items in ticket order.
	// Returns an ObjectNotFoundError when no order has the id.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// Delete removes the order and all of its items.
	// Returns an ObjectNotFoundError when no order has the aggregate's id.
	Delete(ctx context.Context, aggregate *order.Order) error
}

// ActiveOrderRowReader reads the flat order/item join used by the display.
type ActiveOrderRowReader interface {
	// ListActiveRows returns one row per item (one item-less row for an order
	// without items) of every order whose status is not done, newest order
	// first and items by ascending item id.
	ListActiveRows(ctx context.Context) ([]services.JoinedRow, error)
}
