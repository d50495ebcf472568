package commands_test

import (
	"errors"
	"testing"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should delete and record a removed event", func(t *testing.T) {
		ctx := t.Context()
		m := newMocks()
		o := restoredOrder(t, "1", order.Ready)
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.uow.On("OrderRepository").Return(m.repo).Once(),
			m.repo.On("Get", ctx, kernel.MustParseID("1")).Return(o, nil).Once(),
			m.repo.On("Delete", ctx, o).Return(nil).Once(),
			m.uow.On("Commit", ctx).Return(nil).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)
		cmd, err := commands.NewDeleteOrderCommand("1")
		require.NoError(t, err)

		h := commands.NewDeleteOrderCommandHandler(m.factory)
		err = h.Handle(ctx, cmd)

		require.NoError(t, err)
		events := o.DomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, order.EventRemoved, events[0].Type)
		m.assertExpectations(t)
	})

	t.Run("should return not found for a missing order", func(t *testing.T) {
		ctx := t.Context()
		m := newMocks()
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.uow.On("OrderRepository").Return(m.repo).Once(),
			m.repo.On("Get", ctx, kernel.MustParseID("999")).
				Return(nil, errs.NewObjectNotFoundError("order", "999")).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)
		cmd, err := commands.NewDeleteOrderCommand("999")
		require.NoError(t, err)

		h := commands.NewDeleteOrderCommandHandler(m.factory)
		err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		m.assertExpectations(t)
	})

	t.Run("should classify delete failures", func(t *testing.T) {
		ctx := t.Context()
		m := newMocks()
		o := restoredOrder(t, "1", order.Pending)
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.uow.On("OrderRepository").Return(m.repo).Once(),
			m.repo.On("Get", ctx, kernel.MustParseID("1")).Return(o, nil).Once(),
			m.repo.On("Delete", ctx, o).Return(errors.New("deadlock detected")).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)
		cmd, err := commands.NewDeleteOrderCommand("1")
		require.NoError(t, err)

		h := commands.NewDeleteOrderCommandHandler(m.factory)
		err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrStorageIsUnavailable)
		m.assertExpectations(t)
	})
}
