package commands

import (
	"errors"
	"fmt"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderItem is one requested ticket line.
type CreateOrderItem struct {
	Name                string
	Quantity            int
	Modifiers           []string
	SpecialInstructions string
}

// CreateOrderCommand places a new ticket on the display.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("ORD-004", "takeout", "Jane Doe", "", []CreateOrderItem{
//	    {Name: "Pad Thai", Quantity: 1, Modifiers: []string{"Extra spicy"}, SpecialInstructions: "peanut allergy"},
//	})
//	if err != nil {
//	    return err
//	}
//	id, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	details order.Details
	items   []order.Item

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the ticket and its items. All problems are joined.
func NewCreateOrderCommand(
	number, orderType, customerName, tableNumber string,
	items []CreateOrderItem,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		details: order.Details{
			CustomerName: customerName,
			TableNumber:  tableNumber,
		},
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setNumber(number),
		cmd.setType(orderType),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Details returns the ticket fields; CreatedAt is set by the handler.
func (c CreateOrderCommand) Details() order.Details {
	return c.details
}

func (c CreateOrderCommand) Items() []order.Item {
	items := make([]order.Item, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateOrderCommand) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	c.details.Number = number
	return nil
}

func (c *CreateOrderCommand) setType(orderType string) error {
	t, err := order.ParseType(orderType)
	if err != nil {
		return err
	}
	c.details.Type = t
	return nil
}

func (c *CreateOrderCommand) setItems(items []CreateOrderItem) error {
	if len(items) == 0 {
		return order.ErrOrderHasNoItems
	}

	var err error
	c.items = make([]order.Item, 0, len(items))
	for i, requested := range items {
		item, itemErr := order.NewItem(requested.Name, requested.Quantity, requested.Modifiers, requested.SpecialInstructions)
		if itemErr != nil {
			err = errors.Join(err, fmt.Errorf("items[%d]: %w", i, itemErr))
			continue
		}
		c.items = append(c.items, item)
	}
	return err
}
