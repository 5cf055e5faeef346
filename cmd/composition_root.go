package cmd

import (
	"log/slog"
	"os"

	adapterhttp "ordermanagement/internal/adapters/in/http"
	kafkain "ordermanagement/internal/adapters/in/kafka"
	kafkaout "ordermanagement/internal/adapters/out/kafka"
	"ordermanagement/internal/adapters/out/postgres"
	"ordermanagement/internal/adapters/out/postgres/outboxrepo"
	redisout "ordermanagement/internal/adapters/out/redis"
	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/core/ports"
	"ordermanagement/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs        Config
	gormDB         *gorm.DB
	uowFactory     postgres.GormUnitOfWorkFactory
	customerCache  ports.CustomerCache
	inventoryCache ports.InventoryCache
	eventPublisher *kafkaout.SaramaEventPublisher
	logger         *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) (CompositionRoot, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	eventPublisher, err := kafkaout.NewSaramaEventPublisher(
		[]string{configs.KafkaHost},
		configs.KafkaOrderEventsTopic,
		logger,
	)
	if err != nil {
		return CompositionRoot{}, err
	}

	redisClient := redis.NewClient(&redis.Options{Addr: configs.RedisAddr})

	return CompositionRoot{
		configs:        configs,
		gormDB:         gormDB,
		uowFactory:     *postgres.NewGormUnitOfWorkFactory(gormDB),
		customerCache:  redisout.NewRedisCustomerCache(redisClient),
		inventoryCache: redisout.NewRedisInventoryCache(redisClient),
		eventPublisher: eventPublisher,
		logger:         logger,
	}, nil
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

// Close releases the broker connection held by the event publisher.
func (c *CompositionRoot) Close() error {
	return c.eventPublisher.Close()
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddItemCommandHandler() commands.AddItemCommandHandler {
	return commands.NewAddItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRemoveItemCommandHandler() commands.RemoveItemCommandHandler {
	return commands.NewRemoveItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateShipOrderCommandHandler() commands.ShipOrderCommandHandler {
	return commands.NewShipOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB, c.customerCache)
}

func (c *CompositionRoot) CreateGetOrderItemsQueryHandler() queries.GetOrderItemsQueryHandler {
	return queries.NewGetOrderItemsQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every command and query handler into the HTTP
// adapter.
func (c *CompositionRoot) CreateHTTPServer() *adapterhttp.Server {
	return adapterhttp.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateAddItemCommandHandler(),
		c.CreateRemoveItemCommandHandler(),
		c.CreateConfirmOrderCommandHandler(),
		c.CreateShipOrderCommandHandler(),
		c.CreateDeliverOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateGetOrdersQueryHandler(),
		c.CreateGetOrderByIDQueryHandler(),
		c.CreateGetOrderItemsQueryHandler(),
	)
}

// CreateJobManager wires the outbox relay against a repository bound to the
// root connection, outside any unit of work.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	outboxRepository := outboxrepo.NewGormOutboxRepository(c.gormDB)
	return jobs.NewJobManager(outboxRepository, c.eventPublisher, c.logger)
}

func (c *CompositionRoot) CreateCustomerConsumer() (*kafkain.CustomerConsumer, error) {
	return kafkain.NewCustomerConsumer(
		[]string{c.configs.KafkaHost},
		c.configs.KafkaConsumerGroup,
		c.configs.KafkaCustomerEventsTopic,
		c.customerCache,
		c.logger,
	)
}

func (c *CompositionRoot) CreateInventoryConsumer() (*kafkain.InventoryConsumer, error) {
	return kafkain.NewInventoryConsumer(
		[]string{c.configs.KafkaHost},
		c.configs.KafkaConsumerGroup,
		c.configs.KafkaInventoryEventsTopic,
		c.inventoryCache,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
