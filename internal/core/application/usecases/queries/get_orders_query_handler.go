package queries

import (
	"context"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler serves the paged order list for a tenant.
// Results are sorted newest first; ties are broken by order ID so paging is
// stable across requests.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query and returns one page of matching orders together
// with the total match count.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) (GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	where := "tenant_id = ?"
	args := []any{query.tenantID.UUID().Bytes()}
	if query.customerID != nil {
		where += " AND customer_id = ?"
		args = append(args, query.customerID.UUID().Bytes())
	}
	if query.status != nil {
		where += " AND status = ?"
		args = append(args, query.status.String())
	}

	var total int64
	err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders WHERE "+where, args...).
		Scan(&total).Error
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}

	offset := (query.page - 1) * query.pageSize
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.status,
			o.currency,
			o.total_amount,
			o.order_date,
			(SELECT COUNT(*) FROM order_items i WHERE i.order_id = o.id) AS item_count
		FROM orders o
		WHERE `+where+`
		ORDER BY o.order_date DESC, o.id
		LIMIT ? OFFSET ?
	`, append(args, query.pageSize, offset)...).Rows()
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]OrderSummary, 0, query.pageSize)
	for rows.Next() {
		var (
			id          uuid.UUID
			customerID  uuid.UUID
			status      string
			currency    string
			totalAmount decimal.Decimal
			orderDate   time.Time
			itemCount   int
		)

		err = rows.Scan(&id, &customerID, &status, &currency, &totalAmount, &orderDate, &itemCount)
		if err != nil {
			return GetOrdersQueryResponse{}, err
		}

		summary, rowErr := buildOrderSummary(id, customerID, status, currency, totalAmount, orderDate, itemCount)
		if rowErr != nil {
			return GetOrdersQueryResponse{}, rowErr
		}
		orders = append(orders, summary)
	}

	if err = rows.Err(); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	return GetOrdersQueryResponse{
		Orders:   orders,
		Total:    total,
		Page:     query.page,
		PageSize: query.pageSize,
	}, nil
}

func buildOrderSummary(
	id uuid.UUID,
	customerID uuid.UUID,
	status string,
	currency string,
	totalAmount decimal.Decimal,
	orderDate time.Time,
	itemCount int,
) (OrderSummary, error) {
	orderID, err := orderIDFromColumn(id)
	if err != nil {
		return OrderSummary{}, err
	}

	rawCustomerID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return OrderSummary{}, err
	}
	parsedCustomerID, err := kernel.CustomerIDFromUUID(rawCustomerID)
	if err != nil {
		return OrderSummary{}, err
	}

	parsedStatus, err := order.StatusFromString(status)
	if err != nil {
		return OrderSummary{}, err
	}

	return OrderSummary{
		ID:          orderID,
		CustomerID:  parsedCustomerID,
		Status:      parsedStatus,
		Currency:    currency,
		TotalAmount: totalAmount,
		OrderDate:   orderDate,
		ItemCount:   itemCount,
	}, nil
}

func orderIDFromColumn(id uuid.UUID) (kernel.OrderID, error) {
	raw, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.OrderID{}, err
	}
	return kernel.OrderIDFromUUID(raw)
}
