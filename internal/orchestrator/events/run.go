package events

import (
	"context"
	"encoding/json"
	"time"

	"app/internal/config"
	"app/internal/model"
	"app/internal/pgmq"
	"app/internal/pubsub"

	"github.com/rs/zerolog"
)

// Run drains the ledger event outbox. Events are written to the queue inside
// the same database transaction as the state change they describe; this
// worker publishes them to Pub/Sub at least once, in queue order. Messages
// that exhaust their publish retries are moved to the dead-letter queue so a
// poison event can never wedge the stream.
func Run(ctx context.Context, cfg *config.Config, logger zerolog.Logger, client *pgmq.Client, publisher pubsub.Publisher) error {
	queue := cfg.EventsQueueName
	topic := cfg.PubSubLedgerTopic
	logger.Info().Str("queue", queue).Str("topic", topic).Msg("Starting events orchestrator")

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("Shutting down events orchestrator")
			return nil
		default:
		}

		msgs, err := client.ReadWithPoll(ctx, queue, cfg.EventsPollTimeoutSec, cfg.EventsPollMaxMsg)
		if err != nil {
			if ctx.Err() != nil {
				logger.Info().Msg("Shutting down events orchestrator")
				return nil
			}
			logger.Error().Err(err).Msg("Error reading events queue")
			time.Sleep(time.Second)
			continue
		}

		for _, msg := range msgs {
			var event model.LedgerEvent
			if err := json.Unmarshal(msg.Data, &event); err != nil {
				// Malformed outbox rows are unrecoverable; park them in the
				// DLQ for inspection instead of retrying forever.
				logger.Error().Err(err).Int64("msg_id", msg.ID).Msg("Failed to unmarshal ledger event; moving to DLQ")
				deadLetter(ctx, logger, client, cfg.EventsDeadLetterQueueName, msg.Data)
				if err := client.Delete(ctx, queue, []int64{msg.ID}); err != nil {
					logger.Error().Err(err).Msg("Error deleting malformed event message")
				}
				continue
			}

			attributes := map[string]string{"event_type": event.EventType}

			// Publish with exponential backoff
			backoff := time.Duration(cfg.EventsBackoffInitialSec) * time.Second
			var pubErr error
			for attempt := 1; attempt <= cfg.EventsMaxRetries; attempt++ {
				ctxPub, cancel := context.WithTimeout(ctx, 10*time.Second)
				msgID, err := publisher.Publish(ctxPub, topic, msg.Data, attributes)
				cancel()
				if err == nil {
					logger.Info().
						Str("event_type", event.EventType).
						Str("pubsub_id", msgID).
						Int64("msg_id", msg.ID).
						Msg("Ledger event published")
					pubErr = nil
					break
				}
				pubErr = err
				logger.Error().Err(err).Int("attempt", attempt).Str("event_type", event.EventType).Msg("Publish failed, retrying")
				time.Sleep(backoff)
				backoff *= 2
				if backoff > time.Duration(cfg.EventsBackoffMaxSec)*time.Second {
					backoff = time.Duration(cfg.EventsBackoffMaxSec) * time.Second
				}
			}
			if pubErr != nil {
				logger.Warn().
					Int("attempts", cfg.EventsMaxRetries).
					Str("event_type", event.EventType).
					Err(pubErr).
					Msg("Exhausted publish retries; moving event to DLQ")
				deadLetter(ctx, logger, client, cfg.EventsDeadLetterQueueName, msg.Data)
			}

			// Acknowledge the message either way; DLQ holds the failures.
			if err := client.Delete(ctx, queue, []int64{msg.ID}); err != nil {
				logger.Error().Err(err).Int64("msg_id", msg.ID).Msg("Error deleting event message")
			}
		}
	}
}

func deadLetter(ctx context.Context, logger zerolog.Logger, client *pgmq.Client, dlq string, payload []byte) {
	if err := client.Send(ctx, dlq, payload); err != nil {
		logger.Error().Err(err).Str("dlq", dlq).Msg("Failed to send message to dead-letter queue")
	}
}
