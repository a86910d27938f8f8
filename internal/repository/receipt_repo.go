package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReceiptRepository reads the receipt ledger. Receipts are only ever written
// by the purchase transaction; there is deliberately no method here that
// moves a balance between holders.
type ReceiptRepository interface {
	// BalanceOf returns the receipt quantity a holder has for a course.
	// Holders with no receipt have a balance of zero.
	BalanceOf(ctx context.Context, holderAddress string, courseID int64) (int64, error)
	// BalanceOfBatch returns balances for parallel (holder, course) pairs,
	// in input order.
	BalanceOfBatch(ctx context.Context, holderAddresses []string, courseIDs []int64) ([]int64, error)
}

type receiptRepo struct {
	pool *pgxpool.Pool
}

// NewReceiptRepo creates a new ReceiptRepository.
func NewReceiptRepo(pool *pgxpool.Pool) ReceiptRepository {
	return &receiptRepo{pool: pool}
}

func (r *receiptRepo) BalanceOf(ctx context.Context, holderAddress string, courseID int64) (int64, error) {
	const q = `
		SELECT quantity
		FROM receipts
		WHERE holder_address = $1 AND course_id = $2
	`
	var quantity int64
	err := r.pool.QueryRow(ctx, q, holderAddress, courseID).Scan(&quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("fetch receipt balance for %s on course %d: %w", holderAddress, courseID, err)
	}
	return quantity, nil
}

func (r *receiptRepo) BalanceOfBatch(ctx context.Context, holderAddresses []string, courseIDs []int64) ([]int64, error) {
	const q = `
		SELECT COALESCE(r.quantity, 0)
		FROM unnest($1::text[], $2::bigint[]) WITH ORDINALITY AS q(holder_address, course_id, ord)
		LEFT JOIN receipts r
			ON r.holder_address = q.holder_address AND r.course_id = q.course_id
		ORDER BY q.ord
	`
	rows, err := r.pool.Query(ctx, q, holderAddresses, courseIDs)
	if err != nil {
		return nil, fmt.Errorf("fetch batch receipt balances: %w", err)
	}
	defer rows.Close()

	balances := make([]int64, 0, len(holderAddresses))
	for rows.Next() {
		var quantity int64
		if err := rows.Scan(&quantity); err != nil {
			return nil, fmt.Errorf("scanning receipt balance: %w", err)
		}
		balances = append(balances, quantity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating receipt balances: %w", err)
	}
	return balances, nil
}
