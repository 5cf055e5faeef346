// Package kafka publishes outbox messages to the message bus. The outbox
// relay job hands over pending messages one by one; the payload on the wire
// is exactly the JSON body captured in the outbox.
package kafka

import (
	"context"
	"fmt"
	"log/slog"

	"ordermanagement/internal/core/domain/model/outbox"

	"github.com/IBM/sarama"
)

// SaramaEventPublisher publishes outbox messages to a Kafka topic using a
// synchronous producer. Messages are keyed by order ID so all events of one
// order land on the same partition and keep their relative order.
type SaramaEventPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewSaramaEventPublisher connects a synchronous producer to the given
// brokers. The producer waits for all in-sync replicas and is idempotent, so
// a relay retry cannot duplicate a message on the broker side.
func NewSaramaEventPublisher(brokers []string, topic string, logger *slog.Logger) (*SaramaEventPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	return NewSaramaEventPublisherWithProducer(producer, topic, logger), nil
}

// NewSaramaEventPublisherWithProducer wraps an existing producer. Used by
// tests to inject a mock producer.
func NewSaramaEventPublisherWithProducer(
	producer sarama.SyncProducer,
	topic string,
	logger *slog.Logger,
) *SaramaEventPublisher {
	return &SaramaEventPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "kafka_event_publisher"),
	}
}

// Publish sends one outbox message to the topic. The event name and tenant
// travel as headers so consumers can route without parsing the payload.
func (p *SaramaEventPublisher) Publish(ctx context.Context, message *outbox.Message) error {
	if err := message.Validate(); err != nil {
		return err
	}

	producerMessage := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(message.OrderID().String()),
		Value: sarama.ByteEncoder(message.Payload()),
		Headers: []sarama.RecordHeader{
			{Key: []byte("eventName"), Value: []byte(message.EventName())},
			{Key: []byte("tenantId"), Value: []byte(message.TenantID().String())},
			{Key: []byte("messageId"), Value: []byte(message.ID().String())},
		},
		Timestamp: message.OccurredOn(),
	}

	partition, offset, err := p.producer.SendMessage(producerMessage)
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", message.EventName(), err)
	}

	p.logger.DebugContext(ctx, "Message published",
		"eventName", message.EventName(),
		"orderId", message.OrderID().String(),
		"partition", partition,
		"offset", offset,
	)
	return nil
}

// Close shuts down the underlying producer.
func (p *SaramaEventPublisher) Close() error {
	return p.producer.Close()
}
