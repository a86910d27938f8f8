package repository

import (
	"context"
	"fmt"

	"app/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FeeRepository stores the single process-wide protocol fee rate.
type FeeRepository interface {
	// GetFeeRate returns the current protocol fee in basis points.
	GetFeeRate(ctx context.Context) (int32, error)
	// UpdateFeeRate replaces the stored rate and enqueues the
	// protocol.fee_updated event in the same transaction.
	UpdateFeeRate(ctx context.Context, feeBps int32) error
}

type feeRepo struct {
	pool        *pgxpool.Pool
	eventsQueue string
}

// NewFeeRepo creates a new FeeRepository.
func NewFeeRepo(pool *pgxpool.Pool, eventsQueue string) FeeRepository {
	return &feeRepo{pool: pool, eventsQueue: eventsQueue}
}

func (r *feeRepo) GetFeeRate(ctx context.Context) (int32, error) {
	const q = `SELECT fee_bps FROM protocol_config WHERE singleton`
	var feeBps int32
	if err := r.pool.QueryRow(ctx, q).Scan(&feeBps); err != nil {
		return 0, fmt.Errorf("fetch protocol fee rate: %w", err)
	}
	return feeBps, nil
}

func (r *feeRepo) UpdateFeeRate(ctx context.Context, feeBps int32) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("starting transaction for fee update: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	const q = `UPDATE protocol_config SET fee_bps = $1, updated_at = NOW() WHERE singleton`
	if _, err := tx.Exec(ctx, q, feeBps); err != nil {
		return fmt.Errorf("updating protocol fee rate: %w", err)
	}

	err = enqueueEvent(ctx, tx, r.eventsQueue, model.EventProtocolFeeUpdated, model.ProtocolFeeUpdatedEvent{
		FeeBps: feeBps,
	})
	if err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing fee update: %w", err)
	}
	return nil
}
