package outbox_test

import (
	"encoding/json"
	"testing"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/domain/model/outbox"

	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderWithEvents(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewOrderID(), kernel.NewTenantID(), kernel.NewCustomerID(), "USD")
	require.NoError(t, err)

	price, err := kernel.NewMoney(decimal.MustParse("49.90"), "USD")
	require.NoError(t, err)
	require.NoError(t, o.AddItem(kernel.NewProductID(), "Keyboard", 2, price))
	require.NoError(t, o.Confirm())
	return o
}

func TestNewMessageFromEvent(t *testing.T) {
	t.Run("should capture every event the order records", func(t *testing.T) {
		o := newOrderWithEvents(t)
		require.NoError(t, o.Ship())
		require.NoError(t, o.Deliver())

		for _, event := range o.PendingEvents() {
			message, err := outbox.NewMessageFromEvent(event)

			require.NoError(t, err, "event %s", event.EventName())
			require.NoError(t, message.Validate())
			assert.True(t, message.ID().IsEqual(event.EventID()))
			assert.Equal(t, event.EventName(), message.EventName())
			assert.True(t, message.OrderID().IsEqual(o.ID()))
			assert.True(t, message.TenantID().IsEqual(o.TenantID()))
			assert.Equal(t, event.OccurredOn(), message.OccurredOn())
			assert.False(t, message.IsPublished())
			assert.True(t, json.Valid(message.Payload()))
		}
	})

	t.Run("payload carries the event body", func(t *testing.T) {
		o := newOrderWithEvents(t)
		events := o.PendingEvents()
		confirmed := events[len(events)-1]
		require.Equal(t, order.EventOrderConfirmed, confirmed.EventName())

		message, err := outbox.NewMessageFromEvent(confirmed)
		require.NoError(t, err)

		var body map[string]any
		require.NoError(t, json.Unmarshal(message.Payload(), &body))
		assert.Equal(t, o.ID().String(), body["orderId"])
		assert.Equal(t, o.TenantID().String(), body["tenantId"])
		assert.Equal(t, "99.80", body["totalAmount"])
		assert.Equal(t, "USD", body["currency"])
	})

	t.Run("should reject a nil event", func(t *testing.T) {
		_, err := outbox.NewMessageFromEvent(nil)

		require.Error(t, err)
	})
}

func TestRestoreMessage(t *testing.T) {
	t.Run("should round-trip a captured message", func(t *testing.T) {
		o := newOrderWithEvents(t)
		original, err := outbox.NewMessageFromEvent(o.PendingEvents()[0])
		require.NoError(t, err)

		restored, err := outbox.RestoreMessage(
			original.ID(),
			original.EventName(),
			original.OrderID(),
			original.TenantID(),
			original.Payload(),
			original.OccurredOn(),
			nil,
		)

		require.NoError(t, err)
		assert.True(t, restored.ID().IsEqual(original.ID()))
		assert.Equal(t, original.Payload(), restored.Payload())
		assert.False(t, restored.IsPublished())
	})

	t.Run("should restore the published stamp", func(t *testing.T) {
		publishedAt := time.Now().UTC()
		message, err := outbox.RestoreMessage(
			kernel.NewUUID(),
			order.EventOrderCreated,
			kernel.NewOrderID(),
			kernel.NewTenantID(),
			[]byte(`{}`),
			time.Now().UTC(),
			&publishedAt,
		)

		require.NoError(t, err)
		assert.True(t, message.IsPublished())
		assert.Equal(t, publishedAt, *message.PublishedAt())
	})

	t.Run("should reject missing fields", func(t *testing.T) {
		_, err := outbox.RestoreMessage(
			kernel.NewUUID(), "", kernel.NewOrderID(), kernel.NewTenantID(),
			[]byte(`{}`), time.Now().UTC(), nil)
		require.Error(t, err)

		_, err = outbox.RestoreMessage(
			kernel.NewUUID(), order.EventOrderCreated, kernel.NewOrderID(), kernel.NewTenantID(),
			nil, time.Now().UTC(), nil)
		require.Error(t, err)
	})
}

func TestMessage_MarkPublished(t *testing.T) {
	t.Run("marking is one-shot", func(t *testing.T) {
		o := newOrderWithEvents(t)
		message, err := outbox.NewMessageFromEvent(o.PendingEvents()[0])
		require.NoError(t, err)

		first := time.Now().UTC()
		message.MarkPublished(first)
		message.MarkPublished(first.Add(time.Hour))

		require.NotNil(t, message.PublishedAt())
		assert.Equal(t, first, *message.PublishedAt())
	})
}

func TestMessage_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var message *outbox.Message

		require.Error(t, message.Validate())
		assert.Equal(t, outbox.ErrMessageIsNotConstructed, (&outbox.Message{}).Validate())
	})
}
