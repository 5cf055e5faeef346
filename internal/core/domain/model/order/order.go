package order

import (
	"errors"
	"fmt"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly
	// validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderNotEditable is returned when line items are added or removed
	// outside Draft status.
	ErrOrderNotEditable = errors.New("order items can only be changed in Draft status")

	// ErrEmptyOrder is returned when an order without line items is confirmed.
	ErrEmptyOrder = errors.New("cannot confirm an order without items")
)

// Order is the purchase order aggregate root. It owns its line items, derives
// its total from them, and walks the Draft -> Confirmed -> Shipped ->
// Delivered lifecycle defined by the workflow table, with Cancelled reachable
// until shipping.
//
// Order maintains these invariants:
//   - All line items and the order total carry the order's currency
//   - The total always equals the sum of the line totals
//   - At most one line per product; adding a duplicate merges quantities
//   - Items can only change while the order is Draft
//   - Lifecycle timestamps are set exactly once, when the status is entered
//   - A failed operation leaves the aggregate unchanged
//
// Every state change records a domain event. Events accumulate on the
// aggregate until the unit of work drains them into the outbox at commit.
type Order struct {
	// id is the unique identifier for the order
	id kernel.OrderID

	// tenantID scopes the order to one tenant
	tenantID kernel.TenantID

	// customerID references the customer who placed the order
	customerID kernel.CustomerID

	// status represents the current state in the order lifecycle
	status Status

	// currency is the 3-letter code every amount on the order carries
	currency string

	// totalAmount is derived: the sum of all line totals
	totalAmount kernel.Money

	// orderDate is the UTC instant the order was created
	orderDate time.Time

	// lifecycle timestamps, nil until the matching status is entered
	confirmedAt *time.Time
	shippedAt   *time.Time
	deliveredAt *time.Time
	cancelledAt *time.Time

	// cancellationReason is set together with cancelledAt
	cancellationReason string

	// items are the line items, at most one per product
	items []*OrderItem

	// events are the recorded state changes not yet drained to the outbox
	events []DomainEvent

	// version is the optimistic concurrency stamp managed by persistence
	version int

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Draft status with an empty item list and a
// zero total in the given currency. This is the only way to create a fresh
// order, ensuring all business invariants hold from the start.
//
// Parameters:
//   - id: Unique identifier for the order
//   - tenantID: The tenant the order belongs to
//   - customerID: The customer placing the order
//   - currency: 3-letter upper-case code; all amounts on the order use it
//
// Returns:
//   - *Order: The created order with an OrderCreated event recorded
//   - error: Validation error if any parameter is invalid
//
// Example:
//
//	order, err := NewOrder(kernel.NewOrderID(), tenantID, customerID, "USD")
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id kernel.OrderID,
	tenantID kernel.TenantID,
	customerID kernel.CustomerID,
	currency string,
) (*Order, error) {
	order := &Order{
		status:        Draft,
		orderDate:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setTenantID(tenantID),
		order.setCustomerID(customerID),
		order.setCurrency(currency),
	); err != nil {
		return nil, err
	}

	order.raise(newOrderCreated(order))
	return order, nil
}

// RestoreOrderParams carries the persisted state needed to rehydrate an
// Order. The total amount is not part of it: the total is derived and
// recomputed from the items during restore.
type RestoreOrderParams struct {
	ID                 kernel.OrderID
	TenantID           kernel.TenantID
	CustomerID         kernel.CustomerID
	Status             Status
	Currency           string
	OrderDate          time.Time
	ConfirmedAt        *time.Time
	ShippedAt          *time.Time
	DeliveredAt        *time.Time
	CancelledAt        *time.Time
	CancellationReason string
	Items              []*OrderItem
	Version            int
}

// RestoreOrder rehydrates an Order from persistence. Unlike NewOrder it
// accepts any valid status, carries the stored version stamp, and records no
// domain events. All invariants are re-validated; corrupt rows do not become
// live aggregates.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	order := &Order{
		orderDate:          params.OrderDate,
		confirmedAt:        params.ConfirmedAt,
		shippedAt:          params.ShippedAt,
		deliveredAt:        params.DeliveredAt,
		cancelledAt:        params.CancelledAt,
		cancellationReason: params.CancellationReason,
		isConstructed:      true,
	}

	if err := errors.Join(
		order.setID(params.ID),
		order.setTenantID(params.TenantID),
		order.setCustomerID(params.CustomerID),
		order.setStatus(params.Status),
		order.setCurrency(params.Currency),
		order.setVersion(params.Version),
		order.setItems(params.Items),
	); err != nil {
		return nil, err
	}

	total, err := order.itemsTotal(order.items)
	if err != nil {
		return nil, err
	}
	order.totalAmount = total

	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// TenantID returns the tenant the order belongs to.
func (o *Order) TenantID() kernel.TenantID {
	return o.tenantID
}

// CustomerID returns the customer who placed the order.
func (o *Order) CustomerID() kernel.CustomerID {
	return o.customerID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Currency returns the order's 3-letter currency code.
func (o *Order) Currency() string {
	return o.currency
}

// TotalAmount returns the derived order total, the sum of all line totals.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// OrderDate returns the UTC instant the order was created.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// ConfirmedAt returns when the order was confirmed, or nil.
func (o *Order) ConfirmedAt() *time.Time {
	return o.confirmedAt
}

// ShippedAt returns when the order was shipped, or nil.
func (o *Order) ShippedAt() *time.Time {
	return o.shippedAt
}

// DeliveredAt returns when the order was delivered, or nil.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// CancelledAt returns when the order was cancelled, or nil.
func (o *Order) CancelledAt() *time.Time {
	return o.cancelledAt
}

// CancellationReason returns the reason recorded at cancellation,
// or the empty string.
func (o *Order) CancellationReason() string {
	return o.cancellationReason
}

// Items returns a copy of the line item list. The items themselves are
// shared; mutation still goes through the aggregate only.
func (o *Order) Items() []*OrderItem {
	items := make([]*OrderItem, len(o.items))
	copy(items, o.items)
	return items
}

// Item returns the line item for the given product, if present.
func (o *Order) Item(productID kernel.ProductID) (*OrderItem, bool) {
	item := o.findItem(productID)
	return item, item != nil
}

// Version returns the optimistic concurrency stamp the order was loaded
// with. Fresh orders carry version 0; persistence bumps the stored value on
// every successful update.
func (o *Order) Version() int {
	return o.version
}

// PendingEvents returns a copy of the domain events recorded since the
// aggregate was created or last cleared.
func (o *Order) PendingEvents() []DomainEvent {
	events := make([]DomainEvent, len(o.events))
	copy(events, o.events)
	return events
}

// ClearEvents drops the recorded events. The unit of work calls this after
// draining them into the outbox.
func (o *Order) ClearEvents() {
	o.events = nil
}

// AddItem adds a product to a draft order and records an OrderItemAdded
// event. If a line for the product already exists the quantities are merged
// into that line; the order never carries two lines for one product.
//
// Business rules enforced:
//   - The order must be in Draft status (ErrOrderNotEditable otherwise)
//   - Quantity must be positive
//   - The unit price must carry the order's currency (ErrCurrencyMismatch)
//   - The total always equals the sum of the line totals; a merged line
//     keeps its original unit price, so the merged quantity is priced at
//     that rate
//
// On any error the aggregate is left unchanged.
func (o *Order) AddItem(productID kernel.ProductID, productName string, quantity int, unitPrice kernel.Money) error {
	if o.status != Draft {
		return fmt.Errorf("%w: status is %s", ErrOrderNotEditable, o.status)
	}

	if err := productID.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	if unitPrice.Currency() != o.currency {
		return fmt.Errorf("%w: order is %s, item is %s",
			kernel.ErrCurrencyMismatch, o.currency, unitPrice.Currency())
	}

	existing := o.findItem(productID)

	// The new total is computed before anything is mutated so a failure
	// cannot leave the aggregate half-updated. An existing line keeps its
	// unit price, so the added quantity is priced at that line's rate.
	linePrice := unitPrice
	if existing != nil {
		linePrice = existing.unitPrice
	}
	addition, err := linePrice.Multiply(quantity)
	if err != nil {
		return err
	}
	newTotal, err := o.totalAmount.Add(addition)
	if err != nil {
		return err
	}

	if existing != nil {
		if err := existing.UpdateQuantity(existing.quantity + quantity); err != nil {
			return err
		}
	} else {
		item, err := NewOrderItem(kernel.NewOrderItemID(), productID, productName, quantity, unitPrice)
		if err != nil {
			return err
		}
		o.items = append(o.items, item)
		existing = item
	}

	o.totalAmount = newTotal
	o.raise(newOrderItemAdded(o, existing, quantity))
	return nil
}

// RemoveItem removes the line for a product from a draft order and records
// an OrderItemRemoved event. Removal is idempotent: if no line carries the
// product the call succeeds without changing anything and without recording
// an event.
func (o *Order) RemoveItem(productID kernel.ProductID) error {
	if o.status != Draft {
		return fmt.Errorf("%w: status is %s", ErrOrderNotEditable, o.status)
	}

	if err := productID.Validate(); err != nil {
		return err
	}

	index := -1
	for i, item := range o.items {
		if item.productID.IsEqual(productID) {
			index = i
			break
		}
	}
	if index < 0 {
		return nil
	}

	remaining := make([]*OrderItem, 0, len(o.items)-1)
	remaining = append(remaining, o.items[:index]...)
	remaining = append(remaining, o.items[index+1:]...)

	newTotal, err := o.itemsTotal(remaining)
	if err != nil {
		return err
	}

	o.items = remaining
	o.totalAmount = newTotal
	o.raise(newOrderItemRemoved(o, productID))
	return nil
}

// Confirm commits the customer to the order and freezes the item list.
//
// Business rules enforced:
//   - The workflow must permit the transition (Draft -> Confirmed)
//   - The order must have at least one line item (ErrEmptyOrder)
//
// On success the status becomes Confirmed, the confirmation timestamp is
// set, and an OrderConfirmed event carrying the final total is recorded.
func (o *Order) Confirm() error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	if len(o.items) == 0 {
		return ErrEmptyOrder
	}

	o.status = newStatus
	now := time.Now().UTC()
	o.confirmedAt = &now
	o.raise(newOrderConfirmed(o))
	return nil
}

// Ship marks the order as having left the warehouse. The workflow permits
// this only from Confirmed. Records an OrderShipped event.
func (o *Order) Ship() error {
	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	now := time.Now().UTC()
	o.shippedAt = &now
	o.raise(newOrderShipped(o))
	return nil
}

// Deliver marks the order as received by the customer. The workflow permits
// this only from Shipped. Records an OrderDelivered event.
//
// Delivered is a final state with no further transitions possible.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	now := time.Now().UTC()
	o.deliveredAt = &now
	o.raise(newOrderDelivered(o))
	return nil
}

// Cancel abandons the order and records the reason. The workflow permits
// this from Draft and Confirmed; shipped orders cannot be cancelled.
// Records an OrderCancelled event.
//
// Cancelled is a final state with no further transitions possible.
func (o *Order) Cancel(reason string) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancellationReason = reason
	now := time.Now().UTC()
	o.cancelledAt = &now
	o.raise(newOrderCancelled(o))
	return nil
}

// raise records a domain event on the aggregate.
func (o *Order) raise(event DomainEvent) {
	o.events = append(o.events, event)
}

// findItem returns the line item for the product, or nil.
func (o *Order) findItem(productID kernel.ProductID) *OrderItem {
	for _, item := range o.items {
		if item.productID.IsEqual(productID) {
			return item
		}
	}
	return nil
}

// itemsTotal sums the line totals of the given items in the order's
// currency. An empty list yields the zero amount.
func (o *Order) itemsTotal(items []*OrderItem) (kernel.Money, error) {
	total, err := kernel.NewZeroMoney(o.currency)
	if err != nil {
		return kernel.Money{}, err
	}

	for _, item := range items {
		total, err = total.Add(item.totalPrice)
		if err != nil {
			return kernel.Money{}, err
		}
	}

	return total, nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setTenantID validates and sets the owning tenant.
// This is a private method used only during construction.
func (o *Order) setTenantID(tenantID kernel.TenantID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}
	o.tenantID = tenantID
	return nil
}

// setCustomerID validates and sets the ordering customer.
// This is a private method used only during construction.
func (o *Order) setCustomerID(customerID kernel.CustomerID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setStatus validates and sets the lifecycle status.
// This is a private method used only during restore.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setCurrency validates the currency code and seeds the zero total.
// This is a private method used only during construction.
func (o *Order) setCurrency(currency string) error {
	zero, err := kernel.NewZeroMoney(currency)
	if err != nil {
		return err
	}
	o.currency = currency
	o.totalAmount = zero
	return nil
}

// setVersion validates and sets the concurrency stamp.
// This is a private method used only during restore.
func (o *Order) setVersion(version int) error {
	if version < 0 {
		return errs.NewVersionIsInvalidErrorWithCause(
			"version",
			fmt.Errorf("%d is negative", version),
		)
	}
	o.version = version
	return nil
}

// setItems validates and adopts the restored line items. Items must all be
// constructed, carry the order's currency, and reference distinct products.
// This is a private method used only during restore.
func (o *Order) setItems(items []*OrderItem) error {
	adopted := make([]*OrderItem, 0, len(items))
	seen := make(map[string]struct{}, len(items))

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if item.unitPrice.Currency() != o.currency {
			return fmt.Errorf("%w: order is %s, item is %s",
				kernel.ErrCurrencyMismatch, o.currency, item.unitPrice.Currency())
		}
		key := item.productID.String()
		if _, ok := seen[key]; ok {
			return errs.NewValueIsInvalidErrorWithCause(
				"items",
				fmt.Errorf("duplicate line for product %s", key),
			)
		}
		seen[key] = struct{}{}
		adopted = append(adopted, item)
	}

	o.items = adopted
	return nil
}
