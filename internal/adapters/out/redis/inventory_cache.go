package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const (
	inventoryKeyPrefix = "inventory:"
	inventoryEntryTTL  = 24 * time.Hour
)

// RedisInventoryCache implements InventoryCache on a Redis client. It holds
// the last reported available quantity per product.
type RedisInventoryCache struct {
	client *redis.Client
}

// NewRedisInventoryCache creates a cache backed by the given client.
func NewRedisInventoryCache(client *redis.Client) *RedisInventoryCache {
	return &RedisInventoryCache{client: client}
}

// SetStock stores the available quantity for a product, refreshing its TTL.
func (c *RedisInventoryCache) SetStock(ctx context.Context, productID kernel.ProductID, quantity int) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is negative", quantity),
		)
	}

	return c.client.Set(ctx, inventoryKeyPrefix+productID.String(), quantity, inventoryEntryTTL).Err()
}

// Validate reports whether the cached stock covers the requested quantity.
// A product without an entry has no stock signal and counts as available.
func (c *RedisInventoryCache) Validate(ctx context.Context, productID kernel.ProductID, requestedQuantity int) (bool, error) {
	if err := productID.Validate(); err != nil {
		return false, err
	}
	if requestedQuantity <= 0 {
		return false, errs.NewValueIsInvalidErrorWithCause(
			"requestedQuantity",
			fmt.Errorf("%d is not greater than 0", requestedQuantity),
		)
	}

	available, err := c.client.Get(ctx, inventoryKeyPrefix+productID.String()).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return true, nil
		}
		return false, err
	}

	return available >= requestedQuantity, nil
}
