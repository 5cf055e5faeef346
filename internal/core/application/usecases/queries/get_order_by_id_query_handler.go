package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/ports"
	"ordermanagement/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler serves the detail view of one order, enriched
// with customer data from the cache when available. A cold cache only
// degrades the response, it never fails it.
type GetOrderByIDQueryHandler struct {
	db            *gorm.DB
	customerCache ports.CustomerCache
}

// NewGetOrderByIDQueryHandler creates a handler for order detail queries.
func NewGetOrderByIDQueryHandler(db *gorm.DB, customerCache ports.CustomerCache) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db, customerCache: customerCache}
}

// Handle executes the query and returns the order with its line items.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (GetOrderByIDQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	response, err := h.loadOrder(ctx, query)
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	response.Items, err = loadOrderItems(ctx, h.db, query.orderID, response.Currency)
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	if cached, cacheErr := h.customerCache.Get(ctx, response.CustomerID); cacheErr == nil && cached != nil {
		response.CustomerName = cached.Name()
		response.CustomerEmail = cached.Email()
	}

	return response, nil
}

func (h GetOrderByIDQueryHandler) loadOrder(
	ctx context.Context,
	query GetOrderByIDQuery,
) (GetOrderByIDQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			customer_id,
			status,
			currency,
			total_amount,
			order_date,
			confirmed_at,
			shipped_at,
			delivered_at,
			cancelled_at,
			cancellation_reason,
			version
		FROM orders
		WHERE id = ? AND tenant_id = ?
	`, query.orderID.UUID().Bytes(), query.tenantID.UUID().Bytes()).Row()

	var (
		customerID  uuid.UUID
		status      string
		currency    string
		totalAmount decimal.Decimal
		orderDate   time.Time
		confirmedAt sql.NullTime
		shippedAt   sql.NullTime
		deliveredAt sql.NullTime
		cancelledAt sql.NullTime
		reason      string
		version     int
	)

	err := row.Scan(
		&customerID, &status, &currency, &totalAmount, &orderDate,
		&confirmedAt, &shippedAt, &deliveredAt, &cancelledAt,
		&reason, &version,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderByIDQueryResponse{}, errs.NewObjectNotFoundError("order", query.orderID.String())
		}
		return GetOrderByIDQueryResponse{}, err
	}

	rawCustomerID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}
	parsedCustomerID, err := kernel.CustomerIDFromUUID(rawCustomerID)
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	parsedStatus, err := order.StatusFromString(status)
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	return GetOrderByIDQueryResponse{
		ID:                 query.orderID,
		CustomerID:         parsedCustomerID,
		Status:             parsedStatus,
		Currency:           currency,
		TotalAmount:        totalAmount,
		OrderDate:          orderDate,
		ConfirmedAt:        nullTimePtr(confirmedAt),
		ShippedAt:          nullTimePtr(shippedAt),
		DeliveredAt:        nullTimePtr(deliveredAt),
		CancelledAt:        nullTimePtr(cancelledAt),
		CancellationReason: reason,
		Version:            version,
	}, nil
}

// loadOrderItems reads an order's line items in the sequence they were added
// to the aggregate. It is shared between the detail and the item list queries.
func loadOrderItems(
	ctx context.Context,
	db *gorm.DB,
	orderID kernel.OrderID,
	currency string,
) ([]OrderItemDetails, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			product_name,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY position, id
	`, orderID.UUID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemDetails, 0)
	for rows.Next() {
		var (
			id          uuid.UUID
			productID   uuid.UUID
			productName string
			quantity    int
			unitPrice   decimal.Decimal
		)

		if err = rows.Scan(&id, &productID, &productName, &quantity, &unitPrice); err != nil {
			return nil, err
		}

		details, rowErr := buildItemDetails(id, productID, productName, quantity, unitPrice, currency)
		if rowErr != nil {
			return nil, rowErr
		}
		items = append(items, details)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func buildItemDetails(
	id uuid.UUID,
	productID uuid.UUID,
	productName string,
	quantity int,
	unitPrice decimal.Decimal,
	currency string,
) (OrderItemDetails, error) {
	rawID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderItemDetails{}, err
	}
	itemID, err := kernel.OrderItemIDFromUUID(rawID)
	if err != nil {
		return OrderItemDetails{}, err
	}

	rawProductID, err := kernel.UUIDFromBytes(productID[:])
	if err != nil {
		return OrderItemDetails{}, err
	}
	parsedProductID, err := kernel.ProductIDFromUUID(rawProductID)
	if err != nil {
		return OrderItemDetails{}, err
	}

	price, err := kernel.NewMoney(unitPrice, currency)
	if err != nil {
		return OrderItemDetails{}, err
	}
	total, err := price.Multiply(quantity)
	if err != nil {
		return OrderItemDetails{}, err
	}

	return OrderItemDetails{
		ID:          itemID,
		ProductID:   parsedProductID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		TotalPrice:  total.Amount(),
	}, nil
}

func nullTimePtr(value sql.NullTime) *time.Time {
	if !value.Valid {
		return nil
	}
	t := value.Time
	return &t
}
