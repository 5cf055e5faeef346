// Package order contains the purchase order aggregate: the Order root, its
// OrderItem lines, the Status state machine with its workflow transition
// table, and the domain events recorded on every state change.
//
// The aggregate is the only write path for order state. Handlers load it
// through a repository, call its methods, and persist it back; invariants
// (currency discipline, derived totals, one line per product, Draft-only
// editing, workflow-checked transitions) are enforced here and nowhere else.
//
// Domain events are not dispatched synchronously. They accumulate on the
// aggregate and are drained into the transactional outbox when the unit of
// work commits, so an event is only ever published for state that was
// actually saved.
package order
