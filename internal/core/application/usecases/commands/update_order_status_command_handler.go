package commands

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler moves an order to a requested status when the
// transition policy allows it. Only the status column is written.
//
// Example:
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory, order.NewTransitionPolicy())
//	cmd, _ := NewUpdateOrderStatusCommand("1", "preparing")
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	case errors.Is(err, errs.ErrTransitionIsInvalid):
//	}
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     order.TransitionPolicy
}

func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	policy order.TransitionPolicy,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return changeStatus(ctx, h.uowFactory, "update order status", cmd, func(o *order.Order) error {
		return o.ChangeStatus(h.policy, cmd.Status())
	})
}

type orderCommand interface {
	OrderID() kernel.ID
}

// changeStatus runs load, decide, save and commit for the status changing commands.
// Nothing is written when decide leaves the status as it was.
func changeStatus(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	operation string,
	cmd orderCommand,
	decide func(o *order.Order) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return errs.Classify(operation, err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return errs.Classify(operation, err)
	}

	previous := aggregate.Status()
	if err = decide(aggregate); err != nil {
		return err
	}

	if aggregate.Status() != previous {
		if err = repo.Update(ctx, aggregate); err != nil {
			return errs.Classify(operation, err)
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return errs.Classify(operation, err)
	}

	return nil
}
