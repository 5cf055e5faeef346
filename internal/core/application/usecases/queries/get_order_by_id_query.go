package queries

import (
	"errors"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/guard"

	"github.com/govalues/decimal"
)

var ErrGetOrderByIDQueryIsNotConstructed = errors.New(
	"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
)

// GetOrderByIDQuery retrieves the full detail of one order, scoped to a
// tenant.
type GetOrderByIDQuery struct {
	tenantID kernel.TenantID
	orderID  kernel.OrderID
	guard    guard.ConstructorGuard
}

// NewGetOrderByIDQuery creates a query for one order's details.
func NewGetOrderByIDQuery(tenantID kernel.TenantID, orderID kernel.OrderID) (GetOrderByIDQuery, error) {
	if err := errors.Join(tenantID.Validate(), orderID.Validate()); err != nil {
		return GetOrderByIDQuery{}, err
	}

	return GetOrderByIDQuery{
		tenantID: tenantID,
		orderID:  orderID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// TenantID returns the tenant the order must belong to.
func (q GetOrderByIDQuery) TenantID() kernel.TenantID { return q.tenantID }

// OrderID returns the requested order.
func (q GetOrderByIDQuery) OrderID() kernel.OrderID { return q.orderID }

// OrderItemDetails represents one line item of an order detail response.
type OrderItemDetails struct {
	ID          kernel.OrderItemID
	ProductID   kernel.ProductID
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
}

// GetOrderByIDQueryResponse is the full detail of one order. CustomerName
// and CustomerEmail are filled from the customer cache when an entry exists
// and stay empty otherwise.
type GetOrderByIDQueryResponse struct {
	ID                 kernel.OrderID
	CustomerID         kernel.CustomerID
	CustomerName       string
	CustomerEmail      string
	Status             order.Status
	Currency           string
	TotalAmount        decimal.Decimal
	OrderDate          time.Time
	ConfirmedAt        *time.Time
	ShippedAt          *time.Time
	DeliveredAt        *time.Time
	CancelledAt        *time.Time
	CancellationReason string
	Version            int
	Items              []OrderItemDetails
}
