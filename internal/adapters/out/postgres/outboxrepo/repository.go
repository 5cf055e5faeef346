package outboxrepo

import (
	"context"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/outbox"

	"gorm.io/gorm"
)

// GormOutboxRepository implements OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add persists captured messages. Adding no messages is a no-op.
func (r *GormOutboxRepository) Add(ctx context.Context, messages []*outbox.Message) error {
	if len(messages) == 0 {
		return nil
	}

	dtos := make([]MessageDTO, 0, len(messages))
	for _, message := range messages {
		if err := message.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(message))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// FetchPending retrieves up to limit unpublished messages, oldest first.
func (r *GormOutboxRepository) FetchPending(ctx context.Context, limit int) ([]*outbox.Message, error) {
	var dtos []MessageDTO
	err := r.db.WithContext(ctx).
		Where("published_at IS NULL").
		Order("occurred_on").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]*outbox.Message, 0, len(dtos))
	for _, dto := range dtos {
		message, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}

	return messages, nil
}

// MarkPublished stamps a message as published. Messages already carrying a
// stamp are left untouched, so re-marking after a relay restart is harmless.
func (r *GormOutboxRepository) MarkPublished(ctx context.Context, id kernel.UUID, at time.Time) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Model(&MessageDTO{}).
		Where("id = ? AND published_at IS NULL", id.Bytes()).
		Update("published_at", at.UTC()).Error
}
