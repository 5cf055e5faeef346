package orderrepo

import (
	"context"
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its line items to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().UUID(), aggregate)
	return nil
}

// Update saves an existing order to the database with an optimistic
// concurrency check: the row is only written when its stored version still
// matches the version the aggregate was loaded with, and the write bumps the
// version. Line items are replaced wholesale; the item set of an order is
// small and only changes while the order is Draft.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select(
			"status", "total_amount",
			"confirmed_at", "shipped_at", "delivered_at", "cancelled_at",
			"cancellation_reason", "version",
		).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.classifyUpdateMiss(ctx, aggregate)
	}

	if err := r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).
		Delete(&OrderItemDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Items) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Items).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID().UUID(), aggregate)
	return nil
}

// Get retrieves an order with its line items by ID, scoped to a tenant.
func (r *GormOrderRepository) Get(ctx context.Context, tenantID kernel.TenantID, id kernel.OrderID) (*order.Order, error) {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.position")
		}).
		First(&dto, "id = ? AND tenant_id = ?", id.UUID().Bytes(), tenantID.UUID().Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// classifyUpdateMiss tells a vanished row apart from a version conflict
// after an update matched nothing.
func (r *GormOrderRepository) classifyUpdateMiss(ctx context.Context, aggregate *order.Order) error {
	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID().UUID().Bytes()).
		Count(&count).Error
	if err != nil {
		return err
	}

	if count == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	return errs.NewConcurrencyConflictError("order", aggregate.ID().String(), aggregate.Version())
}
