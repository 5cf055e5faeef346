// Package kafka consumes integration events from the message bus and mirrors
// them into the read caches: customer events into the customer cache, where
// the order detail query picks them up, and inventory events into the stock
// cache.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"ordermanagement/internal/core/domain/model/customer"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/ports"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

// customerEventBody is the wire shape of customer created and updated
// events.
type customerEventBody struct {
	CustomerID string `json:"customerId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}

// CustomerConsumer subscribes to the customer topic and keeps the customer
// cache current. Malformed events are logged and skipped; the consumer never
// stalls a partition on bad input.
type CustomerConsumer struct {
	consumer sarama.ConsumerGroup
	topic    string
	cache    ports.CustomerCache
	logger   *slog.Logger
	wg       sync.WaitGroup
}

// NewCustomerConsumer creates a consumer group subscribed to the customer
// topic.
func NewCustomerConsumer(
	brokers []string,
	groupID string,
	topic string,
	cache ports.CustomerCache,
	logger *slog.Logger,
) (*CustomerConsumer, error) {
	config := sarama.NewConfig()
	config.Consumer.Group.Rebalance.Strategy = sarama.NewBalanceStrategyRoundRobin()
	config.Consumer.Offsets.Initial = sarama.OffsetOldest
	config.Consumer.Return.Errors = true

	consumer, err := sarama.NewConsumerGroup(brokers, groupID, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka consumer: %w", err)
	}

	return &CustomerConsumer{
		consumer: consumer,
		topic:    topic,
		cache:    cache,
		logger:   logger.With("component", "customer_consumer"),
	}, nil
}

// Start begins consuming in the background until the context is cancelled.
func (c *CustomerConsumer) Start(ctx context.Context) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		for {
			// Consume returns on every rebalance and must be called again.
			if err := c.consumer.Consume(ctx, []string{c.topic}, c); err != nil {
				c.logger.ErrorContext(ctx, "Consumer session failed", "error", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		for err := range c.consumer.Errors() {
			c.logger.Error("Consumer error", "error", err)
		}
	}()

	c.logger.InfoContext(ctx, "Customer consumer started", "topic", c.topic)
}

// Stop closes the consumer group and waits for in-flight work to finish.
func (c *CustomerConsumer) Stop() error {
	if err := c.consumer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka consumer: %w", err)
	}
	c.wg.Wait()
	c.logger.Info("Customer consumer stopped")
	return nil
}

// Setup is part of the sarama ConsumerGroupHandler contract.
func (c *CustomerConsumer) Setup(sarama.ConsumerGroupSession) error { return nil }

// Cleanup is part of the sarama ConsumerGroupHandler contract.
func (c *CustomerConsumer) Cleanup(sarama.ConsumerGroupSession) error { return nil }

// ConsumeClaim processes messages from one partition.
func (c *CustomerConsumer) ConsumeClaim(
	session sarama.ConsumerGroupSession,
	claim sarama.ConsumerGroupClaim,
) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				return nil
			}

			if err := c.handleMessage(session.Context(), message.Value); err != nil {
				c.logger.Error("Skipping customer event",
					"error", err,
					"topic", message.Topic,
					"partition", message.Partition,
					"offset", message.Offset,
				)
			}
			session.MarkMessage(message, "")

		case <-session.Context().Done():
			return nil
		}
	}
}

// handleMessage decodes one customer event and upserts it into the cache.
func (c *CustomerConsumer) handleMessage(ctx context.Context, value []byte) error {
	var body customerEventBody
	if err := json.Unmarshal(value, &body); err != nil {
		return fmt.Errorf("failed to decode customer event: %w", err)
	}

	rawID, err := uuid.Parse(body.CustomerID)
	if err != nil {
		return fmt.Errorf("invalid customer id %q: %w", body.CustomerID, err)
	}
	id, err := kernel.UUIDFromBytes(rawID[:])
	if err != nil {
		return err
	}
	customerID, err := kernel.CustomerIDFromUUID(id)
	if err != nil {
		return err
	}

	entry, err := customer.NewCustomer(customerID, body.Name, body.Email)
	if err != nil {
		return err
	}

	return c.cache.Set(ctx, entry)
}
