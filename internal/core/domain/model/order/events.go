package order

import (
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
)

// Names under which domain events are recorded in the outbox and published
// to the message bus.
const (
	EventOrderCreated     = "order.created"
	EventOrderItemAdded   = "order.item-added"
	EventOrderItemRemoved = "order.item-removed"
	EventOrderConfirmed   = "order.confirmed"
	EventOrderShipped     = "order.shipped"
	EventOrderDelivered   = "order.delivered"
	EventOrderCancelled   = "order.cancelled"
)

// DomainEvent is a fact recorded by the Order aggregate during a state
// change. Events accumulate on the aggregate and are drained into the
// transactional outbox when the unit of work commits; they are never
// dispatched synchronously.
type DomainEvent interface {
	// EventID is the unique identity of this event occurrence.
	EventID() kernel.UUID

	// EventName is the stable name the event is published under.
	EventName() string

	// OccurredOn is the UTC instant the state change happened.
	OccurredOn() time.Time
}

// eventMeta carries the identity and timestamp shared by all events.
type eventMeta struct {
	eventID    kernel.UUID
	occurredOn time.Time
}

func newEventMeta() eventMeta {
	return eventMeta{
		eventID:    kernel.NewUUID(),
		occurredOn: time.Now().UTC(),
	}
}

func (m eventMeta) EventID() kernel.UUID { return m.eventID }

func (m eventMeta) OccurredOn() time.Time { return m.occurredOn }

// OrderCreated signals that a new order entered the system in Draft status.
type OrderCreated struct {
	eventMeta
	OrderID    kernel.OrderID
	TenantID   kernel.TenantID
	CustomerID kernel.CustomerID
	OrderDate  time.Time
}

func newOrderCreated(o *Order) OrderCreated {
	return OrderCreated{
		eventMeta:  newEventMeta(),
		OrderID:    o.id,
		TenantID:   o.tenantID,
		CustomerID: o.customerID,
		OrderDate:  o.orderDate,
	}
}

// EventName implements DomainEvent.
func (OrderCreated) EventName() string { return EventOrderCreated }

// OrderItemAdded signals that a line item was added to a draft order, or an
// existing line's quantity grew because the same product was added again.
type OrderItemAdded struct {
	eventMeta
	OrderID     kernel.OrderID
	TenantID    kernel.TenantID
	ProductID   kernel.ProductID
	ProductName string
	Quantity    int
	UnitPrice   kernel.Money
}

func newOrderItemAdded(o *Order, item *OrderItem, quantity int) OrderItemAdded {
	return OrderItemAdded{
		eventMeta:   newEventMeta(),
		OrderID:     o.id,
		TenantID:    o.tenantID,
		ProductID:   item.productID,
		ProductName: item.productName,
		Quantity:    quantity,
		UnitPrice:   item.unitPrice,
	}
}

// EventName implements DomainEvent.
func (OrderItemAdded) EventName() string { return EventOrderItemAdded }

// OrderItemRemoved signals that a line item left a draft order.
type OrderItemRemoved struct {
	eventMeta
	OrderID   kernel.OrderID
	TenantID  kernel.TenantID
	ProductID kernel.ProductID
}

func newOrderItemRemoved(o *Order, productID kernel.ProductID) OrderItemRemoved {
	return OrderItemRemoved{
		eventMeta: newEventMeta(),
		OrderID:   o.id,
		TenantID:  o.tenantID,
		ProductID: productID,
	}
}

// EventName implements DomainEvent.
func (OrderItemRemoved) EventName() string { return EventOrderItemRemoved }

// OrderConfirmed signals that the customer committed to the order. The item
// list is frozen and the captured total is final unless the order is
// cancelled.
type OrderConfirmed struct {
	eventMeta
	OrderID     kernel.OrderID
	TenantID    kernel.TenantID
	CustomerID  kernel.CustomerID
	TotalAmount kernel.Money
}

func newOrderConfirmed(o *Order) OrderConfirmed {
	return OrderConfirmed{
		eventMeta:   newEventMeta(),
		OrderID:     o.id,
		TenantID:    o.tenantID,
		CustomerID:  o.customerID,
		TotalAmount: o.totalAmount,
	}
}

// EventName implements DomainEvent.
func (OrderConfirmed) EventName() string { return EventOrderConfirmed }

// OrderShipped signals that the order left the warehouse.
type OrderShipped struct {
	eventMeta
	OrderID    kernel.OrderID
	TenantID   kernel.TenantID
	CustomerID kernel.CustomerID
}

func newOrderShipped(o *Order) OrderShipped {
	return OrderShipped{
		eventMeta:  newEventMeta(),
		OrderID:    o.id,
		TenantID:   o.tenantID,
		CustomerID: o.customerID,
	}
}

// EventName implements DomainEvent.
func (OrderShipped) EventName() string { return EventOrderShipped }

// OrderDelivered signals that the order reached the customer.
type OrderDelivered struct {
	eventMeta
	OrderID    kernel.OrderID
	TenantID   kernel.TenantID
	CustomerID kernel.CustomerID
}

func newOrderDelivered(o *Order) OrderDelivered {
	return OrderDelivered{
		eventMeta:  newEventMeta(),
		OrderID:    o.id,
		TenantID:   o.tenantID,
		CustomerID: o.customerID,
	}
}

// EventName implements DomainEvent.
func (OrderDelivered) EventName() string { return EventOrderDelivered }

// OrderCancelled signals that the order was abandoned before shipping.
type OrderCancelled struct {
	eventMeta
	OrderID    kernel.OrderID
	TenantID   kernel.TenantID
	CustomerID kernel.CustomerID
	Reason     string
}

func newOrderCancelled(o *Order) OrderCancelled {
	return OrderCancelled{
		eventMeta:  newEventMeta(),
		OrderID:    o.id,
		TenantID:   o.tenantID,
		CustomerID: o.customerID,
		Reason:     o.cancellationReason,
	}
}

// EventName implements DomainEvent.
func (OrderCancelled) EventName() string { return EventOrderCancelled }
