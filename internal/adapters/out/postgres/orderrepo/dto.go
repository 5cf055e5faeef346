// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Orders are indexed by tenant and customer to serve the paged list queries;
// the version column backs optimistic concurrency control.
type OrderDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TenantID           uuid.UUID       `gorm:"type:uuid;index:idx_orders_tenant;index:idx_orders_tenant_customer"`
	CustomerID         uuid.UUID       `gorm:"type:uuid;index:idx_orders_tenant_customer"`
	Status             string          `gorm:"type:varchar(20);index"`
	Currency           string          `gorm:"type:char(3)"`
	TotalAmount        decimal.Decimal `gorm:"type:decimal(19,4)"`
	OrderDate          time.Time
	ConfirmedAt        *time.Time
	ShippedAt          *time.Time
	DeliveredAt        *time.Time
	CancelledAt        *time.Time
	CancellationReason string          `gorm:"type:text"`
	Version            int             `gorm:"not null;default:0"`
	Items              []OrderItemDTO  `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one persisted line item of an order. Position is
// the line's index within the aggregate; reloads order by it so the item
// sequence survives round trips.
type OrderItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	ProductID   uuid.UUID `gorm:"type:uuid"`
	ProductName string    `gorm:"type:varchar(255)"`
	Quantity    int
	UnitPrice   decimal.Decimal `gorm:"type:decimal(19,4)"`
	Position    int             `gorm:"not null;default:0"`
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database
// representation. The stored version is the version the aggregate was loaded
// with; Update bumps it when writing.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for position, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:          item.ID().UUID().Bytes(),
			OrderID:     aggregate.ID().UUID().Bytes(),
			ProductID:   item.ProductID().UUID().Bytes(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().Amount(),
			Position:    position,
		})
	}

	return OrderDTO{
		ID:                 aggregate.ID().UUID().Bytes(),
		TenantID:           aggregate.TenantID().UUID().Bytes(),
		CustomerID:         aggregate.CustomerID().UUID().Bytes(),
		Status:             aggregate.Status().String(),
		Currency:           aggregate.Currency(),
		TotalAmount:        aggregate.TotalAmount().Amount(),
		OrderDate:          aggregate.OrderDate(),
		ConfirmedAt:        aggregate.ConfirmedAt(),
		ShippedAt:          aggregate.ShippedAt(),
		DeliveredAt:        aggregate.DeliveredAt(),
		CancelledAt:        aggregate.CancelledAt(),
		CancellationReason: aggregate.CancellationReason(),
		Version:            aggregate.Version(),
		Items:              items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including line items using
// RestoreOrder, which re-validates every invariant.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := orderIDFromRaw(dto.ID)
	if err != nil {
		return nil, err
	}

	rawTenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.TenantIDFromUUID(rawTenantID)
	if err != nil {
		return nil, err
	}

	rawCustomerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.CustomerIDFromUUID(rawCustomerID)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO, dto.Currency)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:                 id,
		TenantID:           tenantID,
		CustomerID:         customerID,
		Status:             status,
		Currency:           dto.Currency,
		OrderDate:          dto.OrderDate,
		ConfirmedAt:        dto.ConfirmedAt,
		ShippedAt:          dto.ShippedAt,
		DeliveredAt:        dto.DeliveredAt,
		CancelledAt:        dto.CancelledAt,
		CancellationReason: dto.CancellationReason,
		Items:              items,
		Version:            dto.Version,
	})
}

func itemToDomain(dto OrderItemDTO, currency string) (*order.OrderItem, error) {
	rawID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	id, err := kernel.OrderItemIDFromUUID(rawID)
	if err != nil {
		return nil, err
	}

	rawProductID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.ProductIDFromUUID(rawProductID)
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice, currency)
	if err != nil {
		return nil, err
	}

	return order.NewOrderItem(id, productID, dto.ProductName, dto.Quantity, unitPrice)
}

func orderIDFromRaw(raw uuid.UUID) (kernel.OrderID, error) {
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return kernel.OrderID{}, err
	}
	return kernel.OrderIDFromUUID(id)
}
