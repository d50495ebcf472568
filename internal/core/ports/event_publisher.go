package ports

import (
	"context"

	"kitchen/internal/core/domain/model/order"
)

// EventPublisher delivers committed order events to other systems.
type EventPublisher interface {
	Publish(ctx context.Context, events ...order.Event) error
}
