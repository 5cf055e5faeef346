package jobs

import (
	"context"
	"log/slog"
	"time"

	"ordermanagement/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// relayBatchSize caps how many pending messages one tick publishes.
const relayBatchSize = 50

// OutboxRelayJob periodically publishes pending outbox messages to the
// message bus and marks them published. Messages are processed oldest first;
// a failed publish aborts the batch so nothing overtakes it.
type OutboxRelayJob struct {
	outboxRepository ports.OutboxRepository
	publisher        ports.EventPublisher
	cron             *cron.Cron
	logger           *slog.Logger
}

// NewOutboxRelayJob creates a relay over the given outbox and publisher.
func NewOutboxRelayJob(
	outboxRepository ports.OutboxRepository,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) *OutboxRelayJob {
	return &OutboxRelayJob{
		outboxRepository: outboxRepository,
		publisher:        publisher,
		cron:             cron.New(cron.WithSeconds()),
		logger:           logger.With("component", "outbox_relay_job"),
	}
}

// Start begins the relay job to run every second.
func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		if err := j.RelayOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Outbox relay tick failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Outbox relay job started (running every second)")
	return nil
}

// Stop stops the relay job.
func (j *OutboxRelayJob) Stop() {
	j.cron.Stop()
	j.logger.Info("Outbox relay job stopped")
}

// RelayOnce publishes one batch of pending messages. The published stamp is
// written after the broker acknowledged the message, so a crash in between
// causes a re-publish rather than a lost event. Consumers deduplicate on the
// message ID carried in the headers.
func (j *OutboxRelayJob) RelayOnce(ctx context.Context) error {
	messages, err := j.outboxRepository.FetchPending(ctx, relayBatchSize)
	if err != nil {
		return err
	}

	for _, message := range messages {
		if err := j.publisher.Publish(ctx, message); err != nil {
			return err
		}

		if err := j.outboxRepository.MarkPublished(ctx, message.ID(), time.Now().UTC()); err != nil {
			return err
		}
	}

	return nil
}
