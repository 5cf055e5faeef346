package queries

import (
	"context"
	"database/sql"
	"errors"

	"ordermanagement/internal/pkg/errs"

	"github.com/govalues/decimal"
	"gorm.io/gorm"
)

// GetOrderItemsQueryHandler serves the line items of one order.
type GetOrderItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderItemsQueryHandler creates a handler for order item queries.
func NewGetOrderItemsQueryHandler(db *gorm.DB) GetOrderItemsQueryHandler {
	return GetOrderItemsQueryHandler{db: db}
}

// Handle executes the query and returns the order's items. An order that
// does not exist under the tenant yields a not found error.
func (h GetOrderItemsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderItemsQuery,
) (GetOrderItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderItemsQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT currency, total_amount
		FROM orders
		WHERE id = ? AND tenant_id = ?
	`, query.orderID.UUID().Bytes(), query.tenantID.UUID().Bytes()).Row()

	var (
		currency    string
		totalAmount decimal.Decimal
	)
	if err := row.Scan(&currency, &totalAmount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderItemsQueryResponse{}, errs.NewObjectNotFoundError("order", query.orderID.String())
		}
		return GetOrderItemsQueryResponse{}, err
	}

	items, err := loadOrderItems(ctx, h.db, query.orderID, currency)
	if err != nil {
		return GetOrderItemsQueryResponse{}, err
	}

	return GetOrderItemsQueryResponse{
		OrderID:     query.orderID,
		Currency:    currency,
		TotalAmount: totalAmount,
		Items:       items,
	}, nil
}
