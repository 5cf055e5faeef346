package ports

import (
	"context"

	"ordermanagement/internal/core/domain/model/customer"
	"ordermanagement/internal/core/domain/model/kernel"
)

// CustomerCache mirrors customer profiles received from the customer service
// via the message bus. The cache is best-effort: a miss is not an error
// condition for order processing, queries simply return less detail.
type CustomerCache interface {
	// Set stores or replaces a customer profile.
	Set(ctx context.Context, profile *customer.Customer) error

	// Get retrieves a cached profile. Returns an object-not-found error
	// when the customer is not cached.
	Get(ctx context.Context, id kernel.CustomerID) (*customer.Customer, error)
}
