package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderHasNoItems is returned when a new ticket carries no items.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("items")
)

// Details holds the descriptive fields of an order. CustomerName and
// TableNumber are optional and empty when absent.
type Details struct {
	Number       string
	Type         Type
	CustomerName string
	TableNumber  string
	CreatedAt    time.Time
}

// Order is a customer request tracked through the kitchen. It is the aggregate
// root owning its items.
//
// Order follows these invariants:
//   - Must have a valid identifier and a non-blank order number
//   - Type is one of dine-in, takeout, delivery
//   - Status changes are decided by a TransitionPolicy
//   - Items keep the order in which they were placed
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id           kernel.ID
	number       string
	orderType    Type
	status       Status
	customerName string
	tableNumber  string
	createdAt    time.Time
	items        []Item

	events []Event

	guard guard.ConstructorGuard
}

// NewOrder places a new ticket in Pending status. At least one item is required.
//
// Example:
//
//	item, _ := order.NewItem("Caesar Salad", 2, nil, "")
//	o, err := order.NewOrder(kernel.NewID(), order.Details{
//	    Number:      "ORD-001",
//	    Type:        order.DineIn,
//	    TableNumber: "12",
//	    CreatedAt:   time.Now(),
//	}, []order.Item{item})
func NewOrder(id kernel.ID, details Details, items []Item) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrOrderHasNoItems
	}
	return build(id, details, Pending, items)
}

// RestoreOrder rebuilds an order read from storage. Unlike NewOrder it accepts
// any valid status and an order without items.
func RestoreOrder(id kernel.ID, details Details, status Status, items []Item) (*Order, error) {
	return build(id, details, status, items)
}

func build(id kernel.ID, details Details, status Status, items []Item) (*Order, error) {
	o := &Order{
		customerName: details.CustomerName,
		tableNumber:  details.TableNumber,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(details.Number),
		o.setType(details.Type),
		o.setStatus(status),
		o.setCreatedAt(details.CreatedAt),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.ID {
	return o.id
}

// Number returns the human-readable order number, e.g. "ORD-001".
func (o *Order) Number() string {
	return o.number
}

func (o *Order) Type() Type {
	return o.orderType
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CustomerName() string {
	return o.customerName
}

func (o *Order) TableNumber() string {
	return o.tableNumber
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Items returns a copy of the ticket lines in placement order.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// HasAllergyWarning is true when any item mentions an allergy.
func (o *Order) HasAllergyWarning() bool {
	for _, item := range o.items {
		if item.HasAllergyWarning() {
			return true
		}
	}
	return false
}

// AddItem appends a ticket line. Used when rows are aggregated from storage.
func (o *Order) AddItem(item Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	o.items = append(o.items, item)
	return nil
}

// ChangeStatus moves the order to the requested status literal if the policy
// permits it. Requesting the current status changes nothing and records no event.
//
// Example:
//
//	err := o.ChangeStatus(policy, "preparing")
//	if errors.Is(err, errs.ErrTransitionIsInvalid) {
//	    // refused by the policy, the order is unchanged
//	}
func (o *Order) ChangeStatus(policy TransitionPolicy, requested string) error {
	if err := policy.Validate(); err != nil {
		return err
	}

	target, err := policy.ValidateTransition(o.status, requested)
	if err != nil {
		return err
	}

	o.moveTo(target)
	return nil
}

// MarkReady is ChangeStatus with Ready as the requested status.
func (o *Order) MarkReady(policy TransitionPolicy) error {
	return o.ChangeStatus(policy, Ready.String())
}

// Toggle swaps Pending and Preparing, the start/pause control of the display.
func (o *Order) Toggle(policy TransitionPolicy) error {
	if err := policy.Validate(); err != nil {
		return err
	}

	target, err := policy.Toggle(o.status)
	if err != nil {
		return err
	}

	o.moveTo(target)
	return nil
}

// Remove records that the order is being deleted. The caller deletes the rows.
func (o *Order) Remove() {
	o.events = append(o.events, newRemovedEvent(o))
}

// DomainEvents returns the events recorded since the last ClearDomainEvents.
func (o *Order) DomainEvents() []Event {
	events := make([]Event, len(o.events))
	copy(events, o.events)
	return events
}

func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) moveTo(target Status) {
	if target == o.status {
		return
	}
	previous := o.status
	o.status = target
	o.events = append(o.events, newStatusChangedEvent(o, previous))
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if strings.TrimSpace(number) == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	o.number = number
	return nil
}

func (o *Order) setType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) setItems(items []Item) error {
	o.items = make([]Item, 0, len(items))
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		o.items = append(o.items, item)
	}
	return nil
}
