package kernel

// Typed identifiers for the aggregates and entities of the domain. Each kind
// wraps a UUID and is only comparable to identifiers of the same kind, which
// rules out accidental cross-kind comparison (an OrderID never equals a
// ProductID even when the underlying values coincide). Conversion to and from
// the raw UUID is always explicit.

// OrderID identifies an Order aggregate.
type OrderID struct {
	id UUID
}

// NewOrderID generates a fresh OrderID.
func NewOrderID() OrderID {
	return OrderID{id: NewUUID()}
}

// OrderIDFromUUID converts a raw UUID into an OrderID.
// The UUID must be valid.
func OrderIDFromUUID(id UUID) (OrderID, error) {
	if err := id.Validate(); err != nil {
		return OrderID{}, err
	}
	return OrderID{id: id}, nil
}

// OrderIDFromString parses an OrderID from its textual UUID form.
func OrderIDFromString(s string) (OrderID, error) {
	id, err := UUIDFromString(s)
	if err != nil {
		return OrderID{}, err
	}
	return OrderID{id: id}, nil
}

// UUID returns the wrapped raw identifier.
func (i OrderID) UUID() UUID { return i.id }

// IsEqual reports whether two OrderIDs carry the same value.
func (i OrderID) IsEqual(other OrderID) bool { return i.id.IsEqual(other.id) }

// String renders the identifier in canonical UUID form.
func (i OrderID) String() string { return i.id.String() }

// Validate fails for the zero value.
func (i OrderID) Validate() error { return i.id.Validate() }

// OrderItemID identifies a line item inside an Order.
type OrderItemID struct {
	id UUID
}

// NewOrderItemID generates a fresh OrderItemID.
func NewOrderItemID() OrderItemID {
	return OrderItemID{id: NewUUID()}
}

// OrderItemIDFromUUID converts a raw UUID into an OrderItemID.
// The UUID must be valid.
func OrderItemIDFromUUID(id UUID) (OrderItemID, error) {
	if err := id.Validate(); err != nil {
		return OrderItemID{}, err
	}
	return OrderItemID{id: id}, nil
}

// UUID returns the wrapped raw identifier.
func (i OrderItemID) UUID() UUID { return i.id }

// IsEqual reports whether two OrderItemIDs carry the same value.
func (i OrderItemID) IsEqual(other OrderItemID) bool { return i.id.IsEqual(other.id) }

// String renders the identifier in canonical UUID form.
func (i OrderItemID) String() string { return i.id.String() }

// Validate fails for the zero value.
func (i OrderItemID) Validate() error { return i.id.Validate() }

// ProductID identifies a product referenced by a line item.
type ProductID struct {
	id UUID
}

// NewProductID generates a fresh ProductID.
func NewProductID() ProductID {
	return ProductID{id: NewUUID()}
}

// ProductIDFromUUID converts a raw UUID into a ProductID.
// The UUID must be valid.
func ProductIDFromUUID(id UUID) (ProductID, error) {
	if err := id.Validate(); err != nil {
		return ProductID{}, err
	}
	return ProductID{id: id}, nil
}

// ProductIDFromString parses a ProductID from its textual UUID form.
func ProductIDFromString(s string) (ProductID, error) {
	id, err := UUIDFromString(s)
	if err != nil {
		return ProductID{}, err
	}
	return ProductID{id: id}, nil
}

// UUID returns the wrapped raw identifier.
func (i ProductID) UUID() UUID { return i.id }

// IsEqual reports whether two ProductIDs carry the same value.
func (i ProductID) IsEqual(other ProductID) bool { return i.id.IsEqual(other.id) }

// String renders the identifier in canonical UUID form.
func (i ProductID) String() string { return i.id.String() }

// Validate fails for the zero value.
func (i ProductID) Validate() error { return i.id.Validate() }

// CustomerID identifies the customer who placed an order.
type CustomerID struct {
	id UUID
}

// NewCustomerID generates a fresh CustomerID.
func NewCustomerID() CustomerID {
	return CustomerID{id: NewUUID()}
}

// CustomerIDFromUUID converts a raw UUID into a CustomerID.
// The UUID must be valid.
func CustomerIDFromUUID(id UUID) (CustomerID, error) {
	if err := id.Validate(); err != nil {
		return CustomerID{}, err
	}
	return CustomerID{id: id}, nil
}

// CustomerIDFromString parses a CustomerID from its textual UUID form.
func CustomerIDFromString(s string) (CustomerID, error) {
	id, err := UUIDFromString(s)
	if err != nil {
		return CustomerID{}, err
	}
	return CustomerID{id: id}, nil
}

// UUID returns the wrapped raw identifier.
func (i CustomerID) UUID() UUID { return i.id }

// IsEqual reports whether two CustomerIDs carry the same value.
func (i CustomerID) IsEqual(other CustomerID) bool { return i.id.IsEqual(other.id) }

// String renders the identifier in canonical UUID form.
func (i CustomerID) String() string { return i.id.String() }

// Validate fails for the zero value.
func (i CustomerID) Validate() error { return i.id.Validate() }

// TenantID identifies the tenant an order belongs to.
type TenantID struct {
	id UUID
}

// NewTenantID generates a fresh TenantID.
func NewTenantID() TenantID {
	return TenantID{id: NewUUID()}
}

// TenantIDFromUUID converts a raw UUID into a TenantID.
// The UUID must be valid.
func TenantIDFromUUID(id UUID) (TenantID, error) {
	if err := id.Validate(); err != nil {
		return TenantID{}, err
	}
	return TenantID{id: id}, nil
}

// TenantIDFromString parses a TenantID from its textual UUID form.
func TenantIDFromString(s string) (TenantID, error) {
	id, err := UUIDFromString(s)
	if err != nil {
		return TenantID{}, err
	}
	return TenantID{id: id}, nil
}

// UUID returns the wrapped raw identifier.
func (i TenantID) UUID() UUID { return i.id }

// IsEqual reports whether two TenantIDs carry the same value.
func (i TenantID) IsEqual(other TenantID) bool { return i.id.IsEqual(other.id) }

// String renders the identifier in canonical UUID form.
func (i TenantID) String() string { return i.id.String() }

// Validate fails for the zero value.
func (i TenantID) Validate() error { return i.id.Validate() }
