package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpin "kitchen/internal/adapters/in/http"
	"kitchen/internal/adapters/out/inmemory"
	"kitchen/internal/adapters/out/kafka"
	"kitchen/internal/adapters/out/postgres"
	"kitchen/internal/adapters/out/postgres/orderrepo"
	"kitchen/internal/adapters/out/redis"
	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/ports"
	"kitchen/internal/jobs"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type closablePublisher interface {
	ports.EventPublisher
	Close() error
}

type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   *postgres.GormUnitOfWorkFactory
	policy       order.TransitionPolicy
	publisher    closablePublisher
	removalQueue ports.RemovalQueue
	redisClient  *goredis.Client
	logger       *slog.Logger
}

// NewCompositionRoot wires the adapters selected by the configuration. Kafka
// and Redis are optional: without KAFKA_HOST events are dropped, without
// REDIS_ADDR deferred removals live in memory.
func NewCompositionRoot(ctx context.Context, configs Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	if logger == nil {
		logger = slog.Default()
	}

	policy, err := configs.TransitionPolicy()
	if err != nil {
		return nil, err
	}

	root := &CompositionRoot{
		gormDB: gormDB,
		policy: policy,
		logger: logger,
	}

	if brokers := configs.KafkaBrokers(); len(brokers) > 0 {
		root.publisher = kafka.NewOrderEventPublisher(brokers, configs.OrderChangedTopic(), logger)
		logger.InfoContext(ctx, "Publishing order events to kafka", "topic", configs.OrderChangedTopic())
	} else {
		root.publisher = kafka.NoopPublisher{}
	}

	if configs.RedisAddr != "" {
		client := goredis.NewClient(&goredis.Options{Addr: configs.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		queue, err := redis.NewRemovalQueue(client, "")
		if err != nil {
			_ = client.Close()
			return nil, err
		}
		root.redisClient = client
		root.removalQueue = queue
	} else {
		root.removalQueue = inmemory.NewRemovalQueue()
	}

	root.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, root.publisher, logger)
	return root, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateToggleOrderStatusCommandHandler() commands.ToggleOrderStatusCommandHandler {
	return commands.NewToggleOrderStatusCommandHandler(c.orderUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateMarkOrderReadyCommandHandler() commands.MarkOrderReadyCommandHandler {
	return commands.NewMarkOrderReadyCommandHandler(c.orderUoWFactory(), c.policy, c.removalQueue)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(orderrepo.NewGormActiveOrderRowReader(c.gormDB))
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	createOrder := c.CreateCreateOrderCommandHandler()
	updateStatus := c.CreateUpdateOrderStatusCommandHandler()
	toggleStatus := c.CreateToggleOrderStatusCommandHandler()
	markReady := c.CreateMarkOrderReadyCommandHandler()
	deleteOrder := c.CreateDeleteOrderCommandHandler()

	return httpin.NewServer(
		&createOrder,
		&updateStatus,
		&toggleStatus,
		&markReady,
		&deleteOrder,
		c.CreateGetActiveOrdersQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	deleteOrder := c.CreateDeleteOrderCommandHandler()
	return jobs.NewJobManager(c.removalQueue, &deleteOrder, c.logger)
}

// Close releases the broker and cache connections. The database is owned by the caller.
func (c *CompositionRoot) Close() error {
	var errs []error
	if c.publisher != nil {
		errs = append(errs, c.publisher.Close())
	}
	if c.redisClient != nil {
		errs = append(errs, c.redisClient.Close())
	}
	return errors.Join(errs...)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
