package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
//
// On Commit, the unit of work drains the pending domain events of every
// tracked aggregate into the outbox within the same transaction, then clears
// them. An aggregate change and its events are therefore saved atomically or
// not at all.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit drains tracked aggregates' events into the outbox and commits
	// the current transaction. Returns error if no active transaction
	// exists, the drain fails, or the commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	OrderRepository() OrderRepository

	// OutboxRepository returns an OutboxRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	OutboxRepository() OutboxRepository
}
