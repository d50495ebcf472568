package http

import (
	"context"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
)

type MockActiveOrdersQueryHandler struct {
	mock.Mock
}

func (m *MockActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query queries.GetActiveOrdersQuery,
) ([]queries.GetActiveOrdersQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetActiveOrdersQueryResponse), args.Error(1)
}

type MockCreateOrderCommandHandler struct {
	mock.Mock
}

func (m *MockCreateOrderCommandHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (kernel.ID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.ID), args.Error(1)
}

type MockUpdateOrderStatusCommandHandler struct {
	mock.Mock
}

func (m *MockUpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockToggleOrderStatusCommandHandler struct {
	mock.Mock
}

func (m *MockToggleOrderStatusCommandHandler) Handle(ctx context.Context, cmd commands.ToggleOrderStatusCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockMarkOrderReadyCommandHandler struct {
	mock.Mock
}

func (m *MockMarkOrderReadyCommandHandler) Handle(ctx context.Context, cmd commands.MarkOrderReadyCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockDeleteOrderCommandHandler struct {
	mock.Mock
}

func (m *MockDeleteOrderCommandHandler) Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}
