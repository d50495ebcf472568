package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var ErrToggleOrderStatusCommandIsNotConstructed = errors.New(
	"ToggleOrderStatusCommand must be created via NewToggleOrderStatusCommand constructor",
)

// ToggleOrderStatusCommand is the start/pause button of the display.
type ToggleOrderStatusCommand struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewToggleOrderStatusCommand(orderID string) (ToggleOrderStatusCommand, error) {
	id, err := kernel.ParseID(orderID)
	if err != nil {
		return ToggleOrderStatusCommand{}, err
	}
	return ToggleOrderStatusCommand{orderID: id, guard: guard.NewConstructorGuard()}, nil
}

func (c ToggleOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrToggleOrderStatusCommandIsNotConstructed)
}

func (c ToggleOrderStatusCommand) OrderID() kernel.ID {
	return c.orderID
}
