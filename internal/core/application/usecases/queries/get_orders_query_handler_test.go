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

// mockAggregateTracker satisfies the repository's tracker dependency for
// tests that do not care about outbox capture.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// fakeCustomerCache is an in-memory stand-in for the Redis customer cache.
type fakeCustomerCache struct {
	customers map[kernel.CustomerID]*customer.Customer
}

func newFakeCustomerCache() *fakeCustomerCache {
	return &fakeCustomerCache{customers: make(map[kernel.CustomerID]*customer.Customer)}
}

func (c *fakeCustomerCache) Set(_ context.Context, entry *customer.Customer) error {
	c.customers[entry.ID()] = entry
	return nil
}

func (c *fakeCustomerCache) Get(_ context.Context, id kernel.CustomerID) (*customer.Customer, error) {
	entry, ok := c.customers[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("customer", id.String())
	}
	return entry, nil
}

type GetOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrdersQueryHandlerTestSuite) SetupSuite() {
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

	suite.handler = queries.NewGetOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items").Error
	suite.Require().NoError(err)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptyPage() {
	query, err := queries.NewGetOrdersQuery(kernel.NewTenantID(), nil, nil, 1, 10)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result.Orders)
	suite.Empty(result.Orders)
	suite.Zero(result.Total)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_ReturnsSummaries() {
	tenantID := kernel.NewTenantID()
	customerID := kernel.NewCustomerID()
	seeded := suite.seedOrder(tenantID, customerID, order.Draft, 2)

	query, err := queries.NewGetOrdersQuery(tenantID, nil, nil, 1, 10)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Orders, 1)
	suite.Equal(int64(1), result.Total)

	summary := result.Orders[0]
	suite.Equal(seeded.ID(), summary.ID)
	suite.Equal(customerID, summary.CustomerID)
	suite.Equal(order.Draft, summary.Status)
	suite.Equal("USD", summary.Currency)
	suite.Equal(2, summary.ItemCount)
	suite.Zero(seeded.TotalAmount().Amount().Cmp(summary.TotalAmount))
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_Pagination() {
	tenantID := kernel.NewTenantID()
	customerID := kernel.NewCustomerID()
	for range 5 {
		suite.seedOrder(tenantID, customerID, order.Draft, 1)
	}

	query, err := queries.NewGetOrdersQuery(tenantID, nil, nil, 1, 2)
	suite.Require().NoError(err)
	page1, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	query, err = queries.NewGetOrdersQuery(tenantID, nil, nil, 3, 2)
	suite.Require().NoError(err)
	page3, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Len(page1.Orders, 2)
	suite.Equal(int64(5), page1.Total)
	suite.Len(page3.Orders, 1, "Last page should hold the remainder")
	suite.Equal(int64(5), page3.Total)

	seen := make(map[kernel.OrderID]bool)
	for _, summary := range append(page1.Orders, page3.Orders...) {
		suite.False(seen[summary.ID], "Pages should not overlap")
		seen[summary.ID] = true
	}
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_PageBeyondEnd_ReturnsEmpty() {
	tenantID := kernel.NewTenantID()
	suite.seedOrder(tenantID, kernel.NewCustomerID(), order.Draft, 1)

	query, err := queries.NewGetOrdersQuery(tenantID, nil, nil, 9, 10)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result.Orders)
	suite.Equal(int64(1), result.Total, "Total should still count all matches")
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_FilterByCustomer() {
	tenantID := kernel.NewTenantID()
	customer1 := kernel.NewCustomerID()
	customer2 := kernel.NewCustomerID()
	suite.seedOrder(tenantID, customer1, order.Draft, 1)
	suite.seedOrder(tenantID, customer1, order.Draft, 1)
	suite.seedOrder(tenantID, customer2, order.Draft, 1)

	query, err := queries.NewGetOrdersQuery(tenantID, &customer1, nil, 1, 10)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result.Orders, 2)
	suite.Equal(int64(2), result.Total)
	for _, summary := range result.Orders {
		suite.Equal(customer1, summary.CustomerID)
	}
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_FilterByStatus() {
	tenantID := kernel.NewTenantID()
	customerID := kernel.NewCustomerID()
	suite.seedOrder(tenantID, customerID, order.Draft, 1)
	suite.seedOrder(tenantID, customerID, order.Confirmed, 1)
	suite.seedOrder(tenantID, customerID, order.Shipped, 1)

	status := order.Confirmed
	query, err := queries.NewGetOrdersQuery(tenantID, nil, &status, 1, 10)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Orders, 1)
	suite.Equal(order.Confirmed, result.Orders[0].Status)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_TenantIsolation() {
	tenant1 := kernel.NewTenantID()
	tenant2 := kernel.NewTenantID()
	suite.seedOrder(tenant1, kernel.NewCustomerID(), order.Draft, 1)
	suite.seedOrder(tenant2, kernel.NewCustomerID(), order.Draft, 1)

	query, err := queries.NewGetOrdersQuery(tenant1, nil, nil, 1, 10)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result.Orders, 1)
	suite.Equal(int64(1), result.Total)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_SortedNewestFirst() {
	tenantID := kernel.NewTenantID()
	customerID := kernel.NewCustomerID()
	for range 3 {
		suite.seedOrder(tenantID, customerID, order.Draft, 1)
	}

	query, err := queries.NewGetOrdersQuery(tenantID, nil, nil, 1, 10)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Orders, 3)
	for i := range len(result.Orders) - 1 {
		suite.False(result.Orders[i].OrderDate.Before(result.Orders[i+1].OrderDate),
			"Orders should be sorted newest first")
	}
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrdersQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, queries.ErrGetOrdersQueryIsNotConstructed)
}

// seedOrder persists an order with the requested status and item count.
func (suite *GetOrdersQueryHandlerTestSuite) seedOrder(
	tenantID kernel.TenantID,
	customerID kernel.CustomerID,
	status order.Status,
	itemCount int,
) *order.Order {
	aggregate, err := order.NewOrder(kernel.NewOrderID(), tenantID, customerID, "USD")
	suite.Require().NoError(err)

	price, err := kernel.NewMoney(decimal.MustParse("9.99"), "USD")
	suite.Require().NoError(err)
	for range itemCount {
		err = aggregate.AddItem(kernel.NewProductID(), "Filter Paper Pack", 1, price)
		suite.Require().NoError(err)
	}

	switch status {
	case order.Confirmed:
		suite.Require().NoError(aggregate.Confirm())
	case order.Shipped:
		suite.Require().NoError(aggregate.Confirm())
		suite.Require().NoError(aggregate.Ship())
	case order.Delivered:
		suite.Require().NoError(aggregate.Confirm())
		suite.Require().NoError(aggregate.Ship())
		suite.Require().NoError(aggregate.Deliver())
	case order.Cancelled:
		suite.Require().NoError(aggregate.Cancel("seed"))
	case order.Draft, order.Unknown:
	}

	err = suite.orderRepo.Add(context.Background(), aggregate)
	suite.Require().NoError(err)

	return aggregate
}

func TestGetOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrdersQueryHandlerTestSuite))
}
