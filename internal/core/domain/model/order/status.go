package order

import (
	"fmt"

	"ordermanagement/internal/pkg/errs"
)

// Status represents the lifecycle state of a purchase order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Draft ──> Confirmed ──> Shipped ──> Delivered
//	  │            │
//	  └────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. The full transition table lives
// in workflow.go and is the single source of truth for every transition
// check in the package.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status when an order is first created.
	// Line items can only be added or removed while in this status.
	Draft

	// Confirmed indicates the customer has committed to the order.
	// The item list is frozen from this point on.
	Confirmed

	// Shipped indicates the order has left the warehouse.
	Shipped

	// Delivered indicates the order reached the customer.
	// This is a final state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was abandoned before shipping.
	// This is a final state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Draft:     "Draft",
		Confirmed: "Confirmed",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:     "Draft",
		Confirmed: "Confirmed",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// StatusFromString parses a status name as stored in the database or
// received in a query filter. Matching is exact and case-sensitive.
func StatusFromString(value string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", value),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Draft, Confirmed, Shipped, Delivered, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
