package ports

import (
	"context"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/outbox"
)

// OutboxRepository defines the persistence contract for outbox messages.
// Messages are added inside the unit of work's transaction, together with the
// aggregate change that produced them; the relay job fetches and marks them
// outside any business transaction.
type OutboxRepository interface {
	// Add persists captured messages. Adding no messages is a no-op.
	Add(ctx context.Context, messages []*outbox.Message) error

	// FetchPending retrieves up to limit unpublished messages, oldest
	// first, so events leave the service in the order they occurred.
	FetchPending(ctx context.Context, limit int) ([]*outbox.Message, error)

	// MarkPublished stamps a message as published at the given time.
	// Marking an already published message is a no-op.
	MarkPublished(ctx context.Context, id kernel.UUID, at time.Time) error
}
