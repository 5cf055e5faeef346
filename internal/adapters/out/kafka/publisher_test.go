package kafka_test

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"ordermanagement/internal/adapters/out/kafka"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/domain/model/outbox"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testMessage(t *testing.T) *outbox.Message {
	t.Helper()

	aggregate, err := order.NewOrder(kernel.NewOrderID(), kernel.NewTenantID(), kernel.NewCustomerID(), "USD")
	require.NoError(t, err)

	events := aggregate.PendingEvents()
	require.NotEmpty(t, events)

	message, err := outbox.NewMessageFromEvent(events[0])
	require.NoError(t, err)
	return message
}

func TestSaramaEventPublisher_Publish_Success(t *testing.T) {
	message := testMessage(t)

	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(value []byte) error {
		require.True(t, bytes.Equal(message.Payload(), value), "payload should be sent unmodified")
		return nil
	})

	publisher := kafka.NewSaramaEventPublisherWithProducer(producer, "order-events", testLogger())
	defer publisher.Close()

	err := publisher.Publish(t.Context(), message)
	require.NoError(t, err)
}

func TestSaramaEventPublisher_Publish_BrokerError(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	publisher := kafka.NewSaramaEventPublisherWithProducer(producer, "order-events", testLogger())
	defer publisher.Close()

	err := publisher.Publish(t.Context(), testMessage(t))
	require.Error(t, err)
	require.ErrorIs(t, err, sarama.ErrOutOfBrokers)
}

func TestSaramaEventPublisher_Publish_RejectsUnconstructedMessage(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)

	publisher := kafka.NewSaramaEventPublisherWithProducer(producer, "order-events", testLogger())
	defer publisher.Close()

	err := publisher.Publish(t.Context(), &outbox.Message{})
	require.Error(t, err)
	require.ErrorIs(t, err, outbox.ErrMessageIsNotConstructed)
}
