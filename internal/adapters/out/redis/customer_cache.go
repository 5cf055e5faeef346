// Package redis caches read data mirrored from other services: customer
// profiles fed by the customer event consumer and product stock fed by the
// inventory event consumer. Entries expire so stale data ages out on its own.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"ordermanagement/internal/core/domain/model/customer"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const (
	customerKeyPrefix = "customer:"
	customerEntryTTL  = 24 * time.Hour
)

// customerEntry is the stored JSON shape of a cached customer.
type customerEntry struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RedisCustomerCache implements CustomerCache on a Redis client.
type RedisCustomerCache struct {
	client *redis.Client
}

// NewRedisCustomerCache creates a cache backed by the given client.
func NewRedisCustomerCache(client *redis.Client) *RedisCustomerCache {
	return &RedisCustomerCache{client: client}
}

// Set stores a customer entry, refreshing its TTL.
func (c *RedisCustomerCache) Set(ctx context.Context, entry *customer.Customer) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(customerEntry{
		ID:    entry.ID().String(),
		Name:  entry.Name(),
		Email: entry.Email(),
	})
	if err != nil {
		return err
	}

	return c.client.Set(ctx, customerKeyPrefix+entry.ID().String(), payload, customerEntryTTL).Err()
}

// Get retrieves a customer entry. A missing key yields ErrObjectNotFound.
func (c *RedisCustomerCache) Get(ctx context.Context, id kernel.CustomerID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	payload, err := c.client.Get(ctx, customerKeyPrefix+id.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errs.NewObjectNotFoundError("customer", id.String())
		}
		return nil, err
	}

	var entry customerEntry
	if err = json.Unmarshal(payload, &entry); err != nil {
		return nil, err
	}

	return customer.NewCustomer(id, entry.Name, entry.Email)
}
