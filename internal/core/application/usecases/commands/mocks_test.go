package commands_test

import (
	"context"
	"testing"
	"time"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockRemovalQueue struct{ mock.Mock }

func (m *MockRemovalQueue) Schedule(ctx context.Context, id kernel.ID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockRemovalQueue) ClaimDue(ctx context.Context, now time.Time, limit int) ([]kernel.ID, error) {
	args := m.Called(ctx, now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.ID), args.Error(1)
}

type mocks struct {
	repo    *MockOrderRepository
	uow     *MockOrderUoW
	factory *MockOrderUoWFactory
}

func newMocks() mocks {
	m := mocks{
		repo:    new(MockOrderRepository),
		uow:     new(MockOrderUoW),
		factory: new(MockOrderUoWFactory),
	}
	m.factory.On("Create").Return(m.uow).Once()
	return m
}

func (m mocks) assertExpectations(t *testing.T) {
	t.Helper()
	m.repo.AssertExpectations(t)
	m.uow.AssertExpectations(t)
	m.factory.AssertExpectations(t)
}

func restoredOrder(t *testing.T, id string, status order.Status) *order.Order {
	t.Helper()
	item, err := order.NewItem("Margherita Pizza", 1, []string{"Extra cheese"}, "")
	require.NoError(t, err)
	o, err := order.RestoreOrder(kernel.MustParseID(id), order.Details{
		Number:      "ORD-" + id,
		Type:        order.DineIn,
		TableNumber: "12",
		CreatedAt:   time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
	}, status, []order.Item{item})
	require.NoError(t, err)
	return o
}
