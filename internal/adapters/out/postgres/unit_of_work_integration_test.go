package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "kitchen/internal/adapters/out/postgres"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises transactions, event publishing and
// demo seeding against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	publisher *MockEventPublisher
	factory   *postgres_adapter.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := postgres_adapter.Open(dsn)
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items, orders RESTART IDENTITY").Error)
	suite.publisher = new(MockEventPublisher)
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(suite.db, suite.publisher, nil)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow2.OrderRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Require().Error(uow.Commit(ctx), "Should error when committing without active transaction")
	suite.Require().Error(uow.Rollback(ctx), "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPublishesEvents() {
	ctx := context.Background()
	o := suite.seedOrder("1", order.Pending)

	suite.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e order.Event) bool {
		return e.Type == order.EventStatusChanged && e.OrderID.IsEqual(o.ID()) &&
			e.PreviousStatus == order.Pending && e.Status == order.Preparing
	})).Return(nil).Once()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	loaded, err := uow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.ChangeStatus(order.NewTransitionPolicy(), "preparing"))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, loaded))
	suite.Require().NoError(uow.Commit(ctx))

	suite.publisher.AssertExpectations(suite.T())
	suite.Empty(loaded.DomainEvents())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsChangesAndEvents() {
	ctx := context.Background()
	o := suite.seedOrder("2", order.Preparing)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	loaded, err := uow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	loaded.Remove()
	suite.Require().NoError(uow.OrderRepository().Delete(ctx, loaded))
	suite.Require().NoError(uow.Rollback(ctx))

	got, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Preparing, got.Status())
	suite.Len(got.Items(), 1)
	suite.publisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DeleteIsAtomic() {
	ctx := context.Background()
	o := suite.seedOrder("3", order.Ready)
	suite.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	loaded, err := uow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	loaded.Remove()
	suite.Require().NoError(uow.OrderRepository().Delete(ctx, loaded))
	suite.Require().NoError(uow.Commit(ctx))

	_, err = suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSeedDemoOrders_OnlyIntoEmptyStore() {
	ctx := context.Background()

	inserted, err := postgres_adapter.SeedDemoOrders(ctx, suite.db, time.Now())
	suite.Require().NoError(err)
	suite.Equal(5, inserted)

	again, err := postgres_adapter.SeedDemoOrders(ctx, suite.db, time.Now())
	suite.Require().NoError(err)
	suite.Zero(again)

	seeded, err := suite.factory.Create().OrderRepository().Get(ctx, kernel.MustParseID("2"))
	suite.Require().NoError(err)
	suite.True(seeded.HasAllergyWarning())
	suite.Equal("Sarah Chen", seeded.CustomerName())
}

func (suite *UnitOfWorkIntegrationTestSuite) seedOrder(id string, status order.Status) *order.Order {
	item, err := order.NewItem("Fish Tacos", 3, []string{"Grilled"}, "")
	suite.Require().NoError(err)
	o, err := order.RestoreOrder(kernel.MustParseID(id), order.Details{
		Number:      "10" + id,
		Type:        order.DineIn,
		TableNumber: "12",
		CreatedAt:   time.Now().UTC(),
	}, status, []order.Item{item})
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(context.Background()))
	suite.Require().NoError(uow.OrderRepository().Add(context.Background(), o))
	suite.Require().NoError(uow.Commit(context.Background()))
	return o
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	testcontainers.SkipIfProviderIsNotHealthy(t)
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
