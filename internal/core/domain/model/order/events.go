package order

import (
	"time"

	"kitchen/internal/core/domain/model/kernel"
)

// EventType names a domain event on the wire.
type EventType string

const (
	EventStatusChanged EventType = "order.status_changed"
	EventRemoved       EventType = "order.removed"
)

// Event is a fact recorded by the Order aggregate. Events are collected while a
// unit of work runs and published once it commits.
//
// PreviousStatus and Status are Unknown for EventRemoved.
type Event struct {
	ID             kernel.ID
	Type           EventType
	OrderID        kernel.ID
	OrderNumber    string
	PreviousStatus Status
	Status         Status
	OccurredAt     time.Time
}

func newStatusChangedEvent(o *Order, previous Status) Event {
	return Event{
		ID:             kernel.NewID(),
		Type:           EventStatusChanged,
		OrderID:        o.id,
		OrderNumber:    o.number,
		PreviousStatus: previous,
		Status:         o.status,
		OccurredAt:     time.Now().UTC(),
	}
}

func newRemovedEvent(o *Order) Event {
	return Event{
		ID:          kernel.NewID(),
		Type:        EventRemoved,
		OrderID:     o.id,
		OrderNumber: o.number,
		OccurredAt:  time.Now().UTC(),
	}
}
