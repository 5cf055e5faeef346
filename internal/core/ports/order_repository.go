// Package ports defines the driven-side interfaces of the core: repositories,
// the unit of work, the event publisher, and the customer cache. These
// contracts keep the domain and application layers free of infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// It covers the write side only: command handlers load an aggregate, mutate
// it, and persist it back. List-style reads go through the query handlers,
// which bypass the aggregate entirely.
type OrderRepository interface {
	// Add persists a new order aggregate to storage, including its line
	// items. The order must be valid and not already exist.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The stored
	// version must still match the version the aggregate was loaded with;
	// otherwise the update fails with a concurrency conflict and nothing
	// is written.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by identifier, scoped to a tenant.
	// Returns the complete order with all line items, or an object-not-found
	// error when the order does not exist or belongs to another tenant.
	Get(ctx context.Context, tenantID kernel.TenantID, id kernel.OrderID) (*order.Order, error)
}
