// Package customer holds the read-side customer profile kept in the cache.
// Profiles originate from customer lifecycle events on the message bus; the
// order service never owns customer data, it only mirrors what it needs.
package customer

import (
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through the NewCustomer factory method.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is a cached customer profile.
type Customer struct {
	id            kernel.CustomerID
	name          string
	email         string
	isConstructed bool
}

// NewCustomer creates a validated customer profile. The name is required;
// the email may be empty when the source event carries none.
func NewCustomer(id kernel.CustomerID, name string, email string) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Customer{
		id:            id,
		name:          name,
		email:         email,
		isConstructed: true,
	}, nil
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.CustomerID { return c.id }

// Name returns the customer's display name.
func (c *Customer) Name() string { return c.name }

// Email returns the customer's email address, possibly empty.
func (c *Customer) Email() string { return c.email }
