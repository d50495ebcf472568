package commands

import (
	"errors"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

const (
	MinAutoRemoveAfter = time.Second
	MaxAutoRemoveAfter = time.Hour
)

var ErrMarkOrderReadyCommandIsNotConstructed = errors.New(
	"MarkOrderReadyCommand must be created via NewMarkOrderReadyCommand constructor",
)

// MarkOrderReadyCommand moves an order to Ready. When AutoRemoveAfter is set
// the order is also scheduled for deletion after that delay.
type MarkOrderReadyCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.ID
	autoRemoveAfter time.Duration

	guard guard.ConstructorGuard
}

// NewMarkOrderReadyCommand builds the command. autoRemoveAfter is zero for no
// removal, otherwise it must lie within [MinAutoRemoveAfter, MaxAutoRemoveAfter].
func NewMarkOrderReadyCommand(orderID string, autoRemoveAfter time.Duration) (MarkOrderReadyCommand, error) {
	cmd := MarkOrderReadyCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAutoRemoveAfter(autoRemoveAfter),
	); err != nil {
		return MarkOrderReadyCommand{}, err
	}

	return cmd, nil
}

func (c MarkOrderReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderReadyCommandIsNotConstructed)
}

func (c MarkOrderReadyCommand) OrderID() kernel.ID {
	return c.orderID
}

// AutoRemoveAfter returns the removal delay, zero when none was requested.
func (c MarkOrderReadyCommand) AutoRemoveAfter() time.Duration {
	return c.autoRemoveAfter
}

func (c *MarkOrderReadyCommand) setOrderID(orderID string) error {
	id, err := kernel.ParseID(orderID)
	if err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *MarkOrderReadyCommand) setAutoRemoveAfter(after time.Duration) error {
	if after == 0 {
		return nil
	}
	if after < MinAutoRemoveAfter || after > MaxAutoRemoveAfter {
		return errs.NewValueIsOutOfRangeError("autoRemoveAfter", after, MinAutoRemoveAfter, MaxAutoRemoveAfter)
	}
	c.autoRemoveAfter = after
	return nil
}
