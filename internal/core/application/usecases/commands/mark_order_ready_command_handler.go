package commands

import (
	"context"
	"time"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/ports"
	"kitchen/internal/pkg/errs"
)

// MarkOrderReadyCommandHandler marks an order ready and, on request, schedules
// its removal. The handler never deletes anything itself; the removal job does.
type MarkOrderReadyCommandHandler struct {
	uowFactory   OrderUoWFactory
	policy       order.TransitionPolicy
	removalQueue ports.RemovalQueue
	now          func() time.Time
}

func NewMarkOrderReadyCommandHandler(
	uowFactory OrderUoWFactory,
	policy order.TransitionPolicy,
	removalQueue ports.RemovalQueue,
) MarkOrderReadyCommandHandler {
	return MarkOrderReadyCommandHandler{
		uowFactory:   uowFactory,
		policy:       policy,
		removalQueue: removalQueue,
		now:          time.Now,
	}
}

// Handle commits the status change first. A scheduling failure after that is
// returned as a storage error while the order stays ready.
func (h *MarkOrderReadyCommandHandler) Handle(ctx context.Context, cmd MarkOrderReadyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := changeStatus(ctx, h.uowFactory, "mark order ready", cmd, func(o *order.Order) error {
		return o.MarkReady(h.policy)
	})
	if err != nil {
		return err
	}

	if cmd.AutoRemoveAfter() == 0 {
		return nil
	}

	at := h.now().Add(cmd.AutoRemoveAfter())
	if err = h.removalQueue.Schedule(ctx, cmd.OrderID(), at); err != nil {
		return errs.NewStorageUnavailableError("schedule order removal", err)
	}

	return nil
}
