package ports

import (
	"context"

	"ordermanagement/internal/core/domain/model/outbox"
)

// EventPublisher delivers outbox messages to the message bus. Publication
// must be idempotent from the consumer's point of view: the relay may publish
// the same message again after a crash, and consumers deduplicate on the
// message ID.
type EventPublisher interface {
	Publish(ctx context.Context, message *outbox.Message) error
}
