package repository

import (
	"context"
	"errors"
	"fmt"

	"app/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DLQRepository interface {
	Create(ctx context.Context, message *model.DeadLetterMessage) error
	ListUnprocessed(ctx context.Context, limit int) ([]model.DeadLetterMessage, error)
	// GetByID returns (nil, nil) when no such message exists.
	GetByID(ctx context.Context, id string) (*model.DeadLetterMessage, error)
	MarkProcessed(ctx context.Context, id string) error
}

type dlqRepository struct {
	pool *pgxpool.Pool
}

func NewDLQRepository(pool *pgxpool.Pool) DLQRepository {
	return &dlqRepository{pool: pool}
}

func (r *dlqRepository) Create(ctx context.Context, message *model.DeadLetterMessage) error {
	const q = `
        INSERT INTO dead_letter_messages (subscription_name, message_id, payload, attributes, status)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.pool.Exec(
		ctx,
		q,
		message.SubscriptionName,
		message.MessageID,
		message.Payload,
		message.Attributes,
		message.Status,
	)
	if err != nil {
		return fmt.Errorf("inserting dead letter message %s: %w", message.MessageID, err)
	}
	return nil
}

func (r *dlqRepository) ListUnprocessed(ctx context.Context, limit int) ([]model.DeadLetterMessage, error) {
	const q = `
        SELECT id, subscription_name, message_id, payload, attributes, status, created_at, updated_at
        FROM dead_letter_messages
        WHERE status = 'unprocessed'
        ORDER BY created_at ASC
        LIMIT $1
    `
	rows, err := r.pool.Query(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("listing dead letter messages: %w", err)
	}
	defer rows.Close()

	var msgs []model.DeadLetterMessage
	for rows.Next() {
		var m model.DeadLetterMessage
		if err := rows.Scan(
			&m.ID,
			&m.SubscriptionName,
			&m.MessageID,
			&m.Payload,
			&m.Attributes,
			&m.Status,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning dead letter row: %w", err)
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dead letter rows: %w", err)
	}
	return msgs, nil
}

func (r *dlqRepository) GetByID(ctx context.Context, id string) (*model.DeadLetterMessage, error) {
	const q = `
        SELECT id, subscription_name, message_id, payload, attributes, status, created_at, updated_at
        FROM dead_letter_messages
        WHERE id = $1
    `
	var m model.DeadLetterMessage
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&m.ID,
		&m.SubscriptionName,
		&m.MessageID,
		&m.Payload,
		&m.Attributes,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch dead letter message %s: %w", id, err)
	}
	return &m, nil
}

func (r *dlqRepository) MarkProcessed(ctx context.Context, id string) error {
	const q = `
        UPDATE dead_letter_messages
        SET status = 'processed', updated_at = NOW()
        WHERE id = $1
    `
	if _, err := r.pool.Exec(ctx, q, id); err != nil {
		return fmt.Errorf("marking dead letter message %s processed: %w", id, err)
	}
	return nil
}
