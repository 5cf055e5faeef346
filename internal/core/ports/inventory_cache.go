package ports

import (
	"context"

	"ordermanagement/internal/core/domain/model/kernel"
)

// InventoryCache mirrors the available stock per product as reported by the
// inventory service via the message bus. Like the customer cache it is
// best-effort and advisory: a product without an entry carries no stock
// signal and validates as available.
type InventoryCache interface {
	// SetStock stores or replaces the available quantity for a product.
	SetStock(ctx context.Context, productID kernel.ProductID, quantity int) error

	// Validate reports whether the cached stock covers the requested
	// quantity. A product without an entry validates as available.
	Validate(ctx context.Context, productID kernel.ProductID, requestedQuantity int) (bool, error)
}
