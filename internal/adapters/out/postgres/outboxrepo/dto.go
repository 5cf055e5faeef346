// Package outboxrepo persists outbox messages. Messages are written in the
// same transaction as the aggregate change that produced them and later
// published by the relay job.
package outboxrepo

import (
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/outbox"

	"github.com/google/uuid"
)

// MessageDTO represents the database structure for outbox messages.
// published_at stays NULL until the relay publishes the message; pending
// messages are fetched oldest first.
type MessageDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	EventName   string    `gorm:"type:varchar(64)"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	TenantID    uuid.UUID `gorm:"type:uuid"`
	Payload     []byte    `gorm:"type:jsonb"`
	OccurredOn  time.Time
	PublishedAt *time.Time `gorm:"index"`
}

// TableName specifies the database table name for outbox messages.
func (MessageDTO) TableName() string {
	return "outbox_messages"
}

// fromDomain converts an outbox message to its database representation.
func fromDomain(message *outbox.Message) MessageDTO {
	return MessageDTO{
		ID:          message.ID().Bytes(),
		EventName:   message.EventName(),
		OrderID:     message.OrderID().UUID().Bytes(),
		TenantID:    message.TenantID().UUID().Bytes(),
		Payload:     message.Payload(),
		OccurredOn:  message.OccurredOn(),
		PublishedAt: message.PublishedAt(),
	}
}

// toDomain converts a database DTO to an outbox message.
func toDomain(dto MessageDTO) (*outbox.Message, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	rawOrderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.OrderIDFromUUID(rawOrderID)
	if err != nil {
		return nil, err
	}

	rawTenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.TenantIDFromUUID(rawTenantID)
	if err != nil {
		return nil, err
	}

	return outbox.RestoreMessage(
		id,
		dto.EventName,
		orderID,
		tenantID,
		dto.Payload,
		dto.OccurredOn,
		dto.PublishedAt,
	)
}
