package queries_test

import (
	"context"
	"testing"
	"time"

	"ordermanagement/internal/adapters/out/postgres/orderrepo"
	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/core/domain/model/customer"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/errs"

	"github.com/govalues/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderByIDQueryHandlerTestSuite struct {
	suite.Suite
	container     *postgres.PostgresContainer
	db            *gorm.DB
	customerCache *fakeCustomerCache
	handler       queries.GetOrderByIDQueryHandler
	itemsHandler  queries.GetOrderItemsQueryHandler
	orderRepo     *orderrepo.GormOrderRepository
}

func (suite *GetOrderByIDQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
	suite.Require().NoError(err)

	suite.customerCache = newFakeCustomerCache()
	suite.handler = queries.NewGetOrderByIDQueryHandler(db, suite.customerCache)
	suite.itemsHandler = queries.NewGetOrderItemsQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrderByIDQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderByIDQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items").Error
	suite.Require().NoError(err)
	suite.customerCache.customers = make(map[kernel.CustomerID]*customer.Customer)
}

func (suite *GetOrderByIDQueryHandlerTestSuite) TestHandle_ReturnsOrderDetails() {
	ctx := context.Background()
	tenantID := kernel.NewTenantID()
	customerID := kernel.NewCustomerID()

	aggregate, err := order.NewOrder(kernel.NewOrderID(), tenantID, customerID, "EUR")
	suite.Require().NoError(err)
	price, err := kernel.NewMoney(decimal.MustParse("24.90"), "EUR")
	suite.Require().NoError(err)
	err = aggregate.AddItem(kernel.NewProductID(), "Ceramic Dripper", 2, price)
	suite.Require().NoError(err)
	err = aggregate.Confirm()
	suite.Require().NoError(err)
	err = suite.orderRepo.Add(ctx, aggregate)
	suite.Require().NoError(err)

	query, err := queries.NewGetOrderByIDQuery(tenantID, aggregate.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(aggregate.ID(), result.ID)
	suite.Equal(customerID, result.CustomerID)
	suite.Equal(order.Confirmed, result.Status)
	suite.Equal("EUR", result.Currency)
	suite.Zero(decimal.MustParse("49.80").Cmp(result.TotalAmount))
	suite.NotNil(result.ConfirmedAt)
	suite.Nil(result.ShippedAt)
	suite.Empty(result.CustomerName, "Cold cache should leave customer fields empty")

	suite.Require().Len(result.Items, 1)
	item := result.Items[0]
	suite.Equal("Ceramic Dripper", item.ProductName)
	suite.Equal(2, item.Quantity)
	suite.Zero(decimal.MustParse("24.90").Cmp(item.UnitPrice))
	suite.Zero(decimal.MustParse("49.80").Cmp(item.TotalPrice))
}

func (suite *GetOrderByIDQueryHandlerTestSuite) TestHandle_EnrichesFromCustomerCache() {
	ctx := context.Background()
	tenantID := kernel.NewTenantID()
	customerID := kernel.NewCustomerID()

	cached, err := customer.NewCustomer(customerID, "Ada Lovelace", "ada@example.com")
	suite.Require().NoError(err)
	err = suite.customerCache.Set(ctx, cached)
	suite.Require().NoError(err)

	aggregate := suite.seedDraftOrder(tenantID, customerID)

	query, err := queries.NewGetOrderByIDQuery(tenantID, aggregate.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal("Ada Lovelace", result.CustomerName)
	suite.Equal("ada@example.com", result.CustomerEmail)
}

func (suite *GetOrderByIDQueryHandlerTestSuite) TestHandle_UnknownOrder_ReturnsNotFound() {
	query, err := queries.NewGetOrderByIDQuery(kernel.NewTenantID(), kernel.NewOrderID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderByIDQueryHandlerTestSuite) TestHandle_ForeignTenant_ReturnsNotFound() {
	tenantID := kernel.NewTenantID()
	aggregate := suite.seedDraftOrder(tenantID, kernel.NewCustomerID())

	query, err := queries.NewGetOrderByIDQuery(kernel.NewTenantID(), aggregate.ID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderByIDQueryHandlerTestSuite) TestItemsHandle_ReturnsItems() {
	ctx := context.Background()
	tenantID := kernel.NewTenantID()
	aggregate := suite.seedDraftOrder(tenantID, kernel.NewCustomerID())

	query, err := queries.NewGetOrderItemsQuery(tenantID, aggregate.ID())
	suite.Require().NoError(err)

	result, err := suite.itemsHandler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(aggregate.ID(), result.OrderID)
	suite.Equal("USD", result.Currency)
	suite.Require().Len(result.Items, 1)
	suite.Zero(aggregate.TotalAmount().Amount().Cmp(result.TotalAmount))
}

func (suite *GetOrderByIDQueryHandlerTestSuite) TestItemsHandle_EmptyOrder_ReturnsEmptyList() {
	ctx := context.Background()
	tenantID := kernel.NewTenantID()

	aggregate, err := order.NewOrder(kernel.NewOrderID(), tenantID, kernel.NewCustomerID(), "USD")
	suite.Require().NoError(err)
	err = suite.orderRepo.Add(ctx, aggregate)
	suite.Require().NoError(err)

	query, err := queries.NewGetOrderItemsQuery(tenantID, aggregate.ID())
	suite.Require().NoError(err)

	result, err := suite.itemsHandler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Empty(result.Items)
}

func (suite *GetOrderByIDQueryHandlerTestSuite) TestItemsHandle_UnknownOrder_ReturnsNotFound() {
	query, err := queries.NewGetOrderItemsQuery(kernel.NewTenantID(), kernel.NewOrderID())
	suite.Require().NoError(err)

	_, err = suite.itemsHandler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// seedDraftOrder persists a draft order with one USD line item.
func (suite *GetOrderByIDQueryHandlerTestSuite) seedDraftOrder(
	tenantID kernel.TenantID,
	customerID kernel.CustomerID,
) *order.Order {
	aggregate, err := order.NewOrder(kernel.NewOrderID(), tenantID, customerID, "USD")
	suite.Require().NoError(err)

	price, err := kernel.NewMoney(decimal.MustParse("5.00"), "USD")
	suite.Require().NoError(err)
	err = aggregate.AddItem(kernel.NewProductID(), "Paper Filters", 3, price)
	suite.Require().NoError(err)

	err = suite.orderRepo.Add(context.Background(), aggregate)
	suite.Require().NoError(err)

	return aggregate
}

func TestGetOrderByIDQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderByIDQueryHandlerTestSuite))
}
