package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"app/internal/model"
	"app/internal/pgmq"

	"github.com/jackc/pgx/v5"
)

// enqueueEvent serializes a ledger event and pushes it onto the outbox queue
// inside the caller's transaction. The event is only visible to the
// orchestrator once the surrounding transaction commits, so observers never
// see events for state that was rolled back.
func enqueueEvent(ctx context.Context, tx pgx.Tx, queue, eventType string, payload any) error {
	event, err := model.NewLedgerEvent(eventType, payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", eventType, err)
	}
	raw, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s envelope: %w", eventType, err)
	}
	if err := pgmq.SendTx(ctx, tx, queue, raw); err != nil {
		return fmt.Errorf("enqueue %s event: %w", eventType, err)
	}
	return nil
}
