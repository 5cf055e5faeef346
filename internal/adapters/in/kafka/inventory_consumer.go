package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/ports"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

// inventoryEventBody is the wire shape of product inventory updated events.
type inventoryEventBody struct {
	ProductID   string `json:"productId"`
	TenantID    string `json:"tenantId"`
	OldQuantity int    `json:"oldQuantity"`
	NewQuantity int    `json:"newQuantity"`
}

// InventoryConsumer subscribes to the inventory topic and keeps the stock
// cache current. Malformed events are logged and skipped; the consumer never
// stalls a partition on bad input.
type InventoryConsumer struct {
	consumer sarama.ConsumerGroup
	topic    string
	cache    ports.InventoryCache
	logger   *slog.Logger
	wg       sync.WaitGroup
}

// NewInventoryConsumer creates a consumer group subscribed to the inventory
// topic.
func NewInventoryConsumer(
	brokers []string,
	groupID string,
	topic string,
	cache ports.InventoryCache,
	logger *slog.Logger,
) (*InventoryConsumer, error) {
	config := sarama.NewConfig()
	config.Consumer.Group.Rebalance.Strategy = sarama.NewBalanceStrategyRoundRobin()
	config.Consumer.Offsets.Initial = sarama.OffsetOldest
	config.Consumer.Return.Errors = true

	consumer, err := sarama.NewConsumerGroup(brokers, groupID, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka consumer: %w", err)
	}

	return &InventoryConsumer{
		consumer: consumer,
		topic:    topic,
		cache:    cache,
		logger:   logger.With("component", "inventory_consumer"),
	}, nil
}

// Start begins consuming in the background until the context is cancelled.
func (c *InventoryConsumer) Start(ctx context.Context) {
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

	c.logger.InfoContext(ctx, "Inventory consumer started", "topic", c.topic)
}

// Stop closes the consumer group and waits for in-flight work to finish.
func (c *InventoryConsumer) Stop() error {
	if err := c.consumer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka consumer: %w", err)
	}
	c.wg.Wait()
	c.logger.Info("Inventory consumer stopped")
	return nil
}

// Setup is part of the sarama ConsumerGroupHandler contract.
func (c *InventoryConsumer) Setup(sarama.ConsumerGroupSession) error { return nil }

// Cleanup is part of the sarama ConsumerGroupHandler contract.
func (c *InventoryConsumer) Cleanup(sarama.ConsumerGroupSession) error { return nil }

// ConsumeClaim processes messages from one partition.
func (c *InventoryConsumer) ConsumeClaim(
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
				c.logger.Error("Skipping inventory event",
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

// handleMessage decodes one inventory event and writes the new quantity into
// the cache. The old quantity is informational only.
func (c *InventoryConsumer) handleMessage(ctx context.Context, value []byte) error {
	var body inventoryEventBody
	if err := json.Unmarshal(value, &body); err != nil {
		return fmt.Errorf("failed to decode inventory event: %w", err)
	}

	rawID, err := uuid.Parse(body.ProductID)
	if err != nil {
		return fmt.Errorf("invalid product id %q: %w", body.ProductID, err)
	}
	id, err := kernel.UUIDFromBytes(rawID[:])
	if err != nil {
		return err
	}
	productID, err := kernel.ProductIDFromUUID(id)
	if err != nil {
		return err
	}

	return c.cache.SetStock(ctx, productID, body.NewQuantity)
}
