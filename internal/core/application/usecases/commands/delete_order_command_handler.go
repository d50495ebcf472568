package commands

import (
	"context"

	"kitchen/internal/pkg/errs"
)

// DeleteOrderCommandHandler deletes an order with all of its items in one transaction.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{uowFactory: uowFactory}
}

// Handle returns an ObjectNotFoundError when the order does not exist.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return errs.Classify("delete order", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return errs.Classify("delete order", err)
	}

	aggregate.Remove()
	if err = repo.Delete(ctx, aggregate); err != nil {
		return errs.Classify("delete order", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return errs.Classify("delete order", err)
	}

	return nil
}
