package queries

import (
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/guard"

	"github.com/govalues/decimal"
)

var ErrGetOrderItemsQueryIsNotConstructed = errors.New(
	"GetOrderItemsQuery must be created via NewGetOrderItemsQuery constructor",
)

// GetOrderItemsQuery retrieves the line items of one order, scoped to a
// tenant. The query fails with a not found error when the order itself does
// not exist; an existing order without items yields an empty list.
type GetOrderItemsQuery struct {
	tenantID kernel.TenantID
	orderID  kernel.OrderID
	guard    guard.ConstructorGuard
}

// NewGetOrderItemsQuery creates a query for an order's line items.
func NewGetOrderItemsQuery(tenantID kernel.TenantID, orderID kernel.OrderID) (GetOrderItemsQuery, error) {
	if err := errors.Join(tenantID.Validate(), orderID.Validate()); err != nil {
		return GetOrderItemsQuery{}, err
	}

	return GetOrderItemsQuery{
		tenantID: tenantID,
		orderID:  orderID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderItemsQueryIsNotConstructed)
}

// TenantID returns the tenant the order must belong to.
func (q GetOrderItemsQuery) TenantID() kernel.TenantID { return q.tenantID }

// OrderID returns the order whose items are listed.
func (q GetOrderItemsQuery) OrderID() kernel.OrderID { return q.orderID }

// GetOrderItemsQueryResponse lists an order's line items together with the
// order totals.
type GetOrderItemsQueryResponse struct {
	OrderID     kernel.OrderID
	Currency    string
	TotalAmount decimal.Decimal
	Items       []OrderItemDetails
}
