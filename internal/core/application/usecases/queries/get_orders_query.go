// Package queries contains the read side of the application. Query handlers
// bypass the aggregate and read projections straight from the database, so
// they never raise domain events and never take part in a unit of work.
package queries

import (
	"errors"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/guard"

	"github.com/govalues/decimal"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 100
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves a page of orders for a tenant, optionally
// filtered by customer and status. Page numbers start at 1; out of range
// paging values fall back to defaults rather than failing the request.
type GetOrdersQuery struct {
	tenantID   kernel.TenantID
	customerID *kernel.CustomerID
	status     *order.Status
	page       int
	pageSize   int
	guard      guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for a tenant's order list. customerID and
// status are optional filters; pass nil to skip them.
func NewGetOrdersQuery(
	tenantID kernel.TenantID,
	customerID *kernel.CustomerID,
	status *order.Status,
	page int,
	pageSize int,
) (GetOrdersQuery, error) {
	if err := tenantID.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	if page < 1 {
		page = defaultPage
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	return GetOrdersQuery{
		tenantID:   tenantID,
		customerID: customerID,
		status:     status,
		page:       page,
		pageSize:   pageSize,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// TenantID returns the tenant whose orders are listed.
func (q GetOrdersQuery) TenantID() kernel.TenantID { return q.tenantID }

// Page returns the 1-based page number.
func (q GetOrdersQuery) Page() int { return q.page }

// PageSize returns the number of orders per page.
func (q GetOrdersQuery) PageSize() int { return q.pageSize }

// OrderSummary represents one order row of the list response.
type OrderSummary struct {
	ID          kernel.OrderID
	CustomerID  kernel.CustomerID
	Status      order.Status
	Currency    string
	TotalAmount decimal.Decimal
	OrderDate   time.Time
	ItemCount   int
}

// GetOrdersQueryResponse is one page of a tenant's orders together with the
// total match count, so callers can compute the page count.
type GetOrdersQueryResponse struct {
	Orders   []OrderSummary
	Total    int64
	Page     int
	PageSize int
}
