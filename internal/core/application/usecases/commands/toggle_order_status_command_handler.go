package commands

import (
	"context"

	"kitchen/internal/core/domain/model/order"
)

// ToggleOrderStatusCommandHandler swaps Pending and Preparing.
// Orders in any other status are refused with an invalid transition.
type ToggleOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     order.TransitionPolicy
}

func NewToggleOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	policy order.TransitionPolicy,
) ToggleOrderStatusCommandHandler {
	return ToggleOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

func (h *ToggleOrderStatusCommandHandler) Handle(ctx context.Context, cmd ToggleOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return changeStatus(ctx, h.uowFactory, "toggle order status", cmd, func(o *order.Order) error {
		return o.Toggle(h.policy)
	})
}
