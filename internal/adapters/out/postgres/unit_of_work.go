// Package postgres provides GORM-based implementation of the Unit of Work pattern.
// The Unit of Work pattern maintains a list of objects affected by a business
// transaction and coordinates writing out changes and resolving concurrency problems.
//
// Key Features:
//   - Transaction management across the order and outbox repositories
//   - Aggregate tracking for transactional outbox processing
//   - Proper isolation between concurrent operations
//   - Automatic event capture on commit
//
// Usage Patterns:
//
// Basic Transaction Management:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Commit drains the pending domain events of every aggregate touched through
// the unit of work into the outbox_messages table before the transaction is
// finalized. The aggregate change and its events therefore become visible
// atomically, and the relay job can publish the events later without risking
// a write that happened but was never announced, or vice versa.
package postgres

import (
	"context"

	"ordermanagement/internal/adapters/out/postgres/orderrepo"
	"ordermanagement/internal/adapters/out/postgres/outboxrepo"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/domain/model/outbox"
	"ordermanagement/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// Tracked aggregates have their pending domain events captured into the
// outbox when the unit of work commits.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// The provided database connection will be used for all created unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction management.
// Each instance maintains its own transaction state and aggregate tracking,
// ensuring proper isolation between concurrent operations.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate changes
// for business operations. Implements the Unit of Work pattern using GORM's
// transaction capabilities to ensure data consistency and proper rollback handling.
//
// The unit of work tracks all aggregates modified during the transaction and
// copies their pending domain events into the outbox within the same
// transaction on Commit, implementing the transactional outbox pattern.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Subsequent repository operations will execute within this transaction context.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit captures the pending domain events of every tracked aggregate into
// the outbox and finalizes all changes made within the current transaction.
// Events are cleared from the aggregates only after the commit succeeds, so a
// failed commit leaves them intact for a retry.
//
// Returns error if no active transaction exists or if the commit operation fails.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	drained, err := uow.drainEvents(ctx)
	if err != nil {
		return err
	}

	if err := uow.tx.Commit().Error; err != nil {
		uow.tx = nil
		return err
	}
	uow.tx = nil

	for _, aggregate := range drained {
		aggregate.ClearEvents()
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]

	return nil
}

// Rollback discards all changes made within the current transaction.
// Database returns to its state before the transaction began.
// After rollback, the transaction is closed and cannot be reused.
//
// Returns error if no active transaction exists or if the rollback operation fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository provides access to order persistence operations within the unit of work.
// Repository operations will execute within the current transaction if one is active,
// otherwise they use the main database connection for immediate execution.
//
// The returned repository automatically tracks all order aggregates that are
// added or updated, so their domain events are captured on Commit.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.session(), uow)
}

// OutboxRepository provides access to outbox persistence operations within the unit of work.
// Repository operations will execute within the current transaction if one is active,
// otherwise they use the main database connection for immediate execution.
func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.session())
}

// TrackAggregate registers a domain aggregate as modified within this unit of work.
// This method is typically called by repository implementations when aggregates
// are added or updated. Tracking the same aggregate more than once is safe;
// its events are drained only once per commit.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	for _, tracked := range uow.trackedAggregates {
		if tracked.Aggregate == aggregate {
			return
		}
	}

	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) session() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// drainEvents copies pending domain events of tracked aggregates into the
// outbox within the current transaction and returns the aggregates whose
// events should be cleared once the commit succeeds.
func (uow *GormUnitOfWork) drainEvents(ctx context.Context) ([]*order.Order, error) {
	drained := make([]*order.Order, 0, len(uow.trackedAggregates))
	messages := make([]*outbox.Message, 0)

	for _, tracked := range uow.trackedAggregates {
		aggregate, ok := tracked.Aggregate.(*order.Order)
		if !ok {
			continue
		}

		for _, event := range aggregate.PendingEvents() {
			message, err := outbox.NewMessageFromEvent(event)
			if err != nil {
				return nil, err
			}
			messages = append(messages, message)
		}
		drained = append(drained, aggregate)
	}

	if err := uow.OutboxRepository().Add(ctx, messages); err != nil {
		return nil, err
	}

	return drained, nil
}
