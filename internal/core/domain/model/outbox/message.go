package outbox

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/errs"
)

// ErrMessageIsNotConstructed is returned when a Message instance was not
// created through NewMessageFromEvent or RestoreMessage.
var ErrMessageIsNotConstructed = errors.New("Message must be created via NewMessageFromEvent or RestoreMessage constructor")

// Message is one domain event captured for reliable publication. Messages are
// written in the same transaction as the aggregate change that produced the
// event, then picked up by the relay job and published to the bus.
//
// The message ID is the event ID, so re-publishing after a relay crash stays
// idempotent for consumers that deduplicate on it.
type Message struct {
	// id is the event's unique identity
	id kernel.UUID

	// eventName is the stable name the event is published under
	eventName string

	// orderID and tenantID locate the aggregate the event belongs to
	orderID  kernel.OrderID
	tenantID kernel.TenantID

	// payload is the JSON-encoded event body
	payload []byte

	// occurredOn is when the state change happened
	occurredOn time.Time

	// publishedAt is nil until the relay has published the message
	publishedAt *time.Time

	// isConstructed ensures the message was created via a constructor
	isConstructed bool
}

// NewMessageFromEvent captures a domain event as an outbox message,
// serializing the event body to JSON.
func NewMessageFromEvent(event order.DomainEvent) (*Message, error) {
	if event == nil {
		return nil, errs.NewValueIsRequiredError("event")
	}

	orderID, tenantID, body, err := encodeEvent(event)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("event payload", err)
	}

	return &Message{
		id:            event.EventID(),
		eventName:     event.EventName(),
		orderID:       orderID,
		tenantID:      tenantID,
		payload:       payload,
		occurredOn:    event.OccurredOn(),
		isConstructed: true,
	}, nil
}

// RestoreMessage rehydrates a Message from persistence.
func RestoreMessage(
	id kernel.UUID,
	eventName string,
	orderID kernel.OrderID,
	tenantID kernel.TenantID,
	payload []byte,
	occurredOn time.Time,
	publishedAt *time.Time,
) (*Message, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), tenantID.Validate()); err != nil {
		return nil, err
	}
	if eventName == "" {
		return nil, errs.NewValueIsRequiredError("eventName")
	}
	if len(payload) == 0 {
		return nil, errs.NewValueIsRequiredError("payload")
	}

	return &Message{
		id:            id,
		eventName:     eventName,
		orderID:       orderID,
		tenantID:      tenantID,
		payload:       payload,
		occurredOn:    occurredOn,
		publishedAt:   publishedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Message instance was properly constructed.
func (m *Message) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMessageIsNotConstructed
	}
	return nil
}

// ID returns the message identity, which equals the event ID.
func (m *Message) ID() kernel.UUID { return m.id }

// EventName returns the name the event is published under.
func (m *Message) EventName() string { return m.eventName }

// OrderID returns the aggregate the event belongs to.
func (m *Message) OrderID() kernel.OrderID { return m.orderID }

// TenantID returns the tenant of the originating order.
func (m *Message) TenantID() kernel.TenantID { return m.tenantID }

// Payload returns the JSON-encoded event body.
func (m *Message) Payload() []byte { return m.payload }

// OccurredOn returns when the state change happened.
func (m *Message) OccurredOn() time.Time { return m.occurredOn }

// PublishedAt returns when the relay published the message, or nil.
func (m *Message) PublishedAt() *time.Time { return m.publishedAt }

// IsPublished reports whether the relay already published the message.
func (m *Message) IsPublished() bool { return m.publishedAt != nil }

// MarkPublished stamps the message with the publication time.
// Marking is done once; later calls keep the first stamp.
func (m *Message) MarkPublished(at time.Time) {
	if m.publishedAt != nil {
		return
	}
	at = at.UTC()
	m.publishedAt = &at
}

// Wire bodies of the published events. Field names follow the JSON casing of
// the public API.
type orderCreatedBody struct {
	OrderID    string    `json:"orderId"`
	TenantID   string    `json:"tenantId"`
	CustomerID string    `json:"customerId"`
	OrderDate  time.Time `json:"orderDate"`
}

type orderItemAddedBody struct {
	OrderID     string `json:"orderId"`
	TenantID    string `json:"tenantId"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
	Currency    string `json:"currency"`
}

type orderItemRemovedBody struct {
	OrderID   string `json:"orderId"`
	TenantID  string `json:"tenantId"`
	ProductID string `json:"productId"`
}

type orderConfirmedBody struct {
	OrderID     string `json:"orderId"`
	TenantID    string `json:"tenantId"`
	CustomerID  string `json:"customerId"`
	TotalAmount string `json:"totalAmount"`
	Currency    string `json:"currency"`
}

type orderStatusBody struct {
	OrderID    string `json:"orderId"`
	TenantID   string `json:"tenantId"`
	CustomerID string `json:"customerId"`
}

type orderCancelledBody struct {
	OrderID    string `json:"orderId"`
	TenantID   string `json:"tenantId"`
	CustomerID string `json:"customerId"`
	Reason     string `json:"reason"`
}

// encodeEvent maps a domain event to its aggregate references and wire body.
func encodeEvent(event order.DomainEvent) (kernel.OrderID, kernel.TenantID, any, error) {
	switch e := event.(type) {
	case order.OrderCreated:
		return e.OrderID, e.TenantID, orderCreatedBody{
			OrderID:    e.OrderID.String(),
			TenantID:   e.TenantID.String(),
			CustomerID: e.CustomerID.String(),
			OrderDate:  e.OrderDate,
		}, nil
	case order.OrderItemAdded:
		return e.OrderID, e.TenantID, orderItemAddedBody{
			OrderID:     e.OrderID.String(),
			TenantID:    e.TenantID.String(),
			ProductID:   e.ProductID.String(),
			ProductName: e.ProductName,
			Quantity:    e.Quantity,
			UnitPrice:   e.UnitPrice.Amount().String(),
			Currency:    e.UnitPrice.Currency(),
		}, nil
	case order.OrderItemRemoved:
		return e.OrderID, e.TenantID, orderItemRemovedBody{
			OrderID:   e.OrderID.String(),
			TenantID:  e.TenantID.String(),
			ProductID: e.ProductID.String(),
		}, nil
	case order.OrderConfirmed:
		return e.OrderID, e.TenantID, orderConfirmedBody{
			OrderID:     e.OrderID.String(),
			TenantID:    e.TenantID.String(),
			CustomerID:  e.CustomerID.String(),
			TotalAmount: e.TotalAmount.Amount().String(),
			Currency:    e.TotalAmount.Currency(),
		}, nil
	case order.OrderShipped:
		return e.OrderID, e.TenantID, orderStatusBody{
			OrderID:    e.OrderID.String(),
			TenantID:   e.TenantID.String(),
			CustomerID: e.CustomerID.String(),
		}, nil
	case order.OrderDelivered:
		return e.OrderID, e.TenantID, orderStatusBody{
			OrderID:    e.OrderID.String(),
			TenantID:   e.TenantID.String(),
			CustomerID: e.CustomerID.String(),
		}, nil
	case order.OrderCancelled:
		return e.OrderID, e.TenantID, orderCancelledBody{
			OrderID:    e.OrderID.String(),
			TenantID:   e.TenantID.String(),
			CustomerID: e.CustomerID.String(),
			Reason:     e.Reason,
		}, nil
	default:
		return kernel.OrderID{}, kernel.TenantID{}, nil, errs.NewValueIsInvalidErrorWithCause(
			"event",
			fmt.Errorf("unsupported event type %T", event),
		)
	}
}
