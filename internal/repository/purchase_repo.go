package repository

import (
	"context"
	"fmt"

	"app/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PurchaseRepository records completed sales. ExecutePurchase is the single
// write path into the receipt ledger.
type PurchaseRepository interface {
	// ExecutePurchase runs the whole purchase as one serializable
	// transaction: read the committed fee rate and set p.FeeCents, mint
	// the buyer's receipt, record the purchase, enqueue the ledger events,
	// then invoke disburse while the transaction is still open. If
	// disburse (or anything before it) fails, the transaction is rolled
	// back and no trace of the purchase remains.
	//
	// The receipt mint is recorded before disburse runs, so any code
	// re-entering the ledger from inside the disbursement sees the buyer's
	// receipt already present within this transaction.
	ExecutePurchase(ctx context.Context, p *model.Purchase, disburse func(context.Context) error) error
	// GetPurchasesByBuyer lists a buyer's purchases, newest first.
	GetPurchasesByBuyer(ctx context.Context, buyerAddress string) ([]model.Purchase, error)
}

type purchaseRepo struct {
	pool        *pgxpool.Pool
	eventsQueue string
}

// NewPurchaseRepo creates a new PurchaseRepository.
func NewPurchaseRepo(pool *pgxpool.Pool, eventsQueue string) PurchaseRepository {
	return &purchaseRepo{pool: pool, eventsQueue: eventsQueue}
}

func (r *purchaseRepo) ExecutePurchase(ctx context.Context, p *model.Purchase, disburse func(context.Context) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("starting purchase transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	// The fee rate is read inside the transaction so the split always
	// matches the rate committed at purchase time, even if the operator
	// changes it concurrently.
	const feeQ = `SELECT fee_bps FROM protocol_config WHERE singleton`
	var feeBps int32
	if err := tx.QueryRow(ctx, feeQ).Scan(&feeBps); err != nil {
		return fmt.Errorf("fetch protocol fee rate: %w", err)
	}
	p.FeeCents = p.AmountCents * int64(feeBps) / model.MaxFeeBps

	// Mint first. Buying the same course twice is allowed and accumulates.
	const mintQ = `
		INSERT INTO receipts (course_id, holder_address, quantity)
		VALUES ($1, $2, 1)
		ON CONFLICT (course_id, holder_address)
		DO UPDATE SET quantity = receipts.quantity + 1, updated_at = NOW()
	`
	if _, err := tx.Exec(ctx, mintQ, p.CourseID, p.BuyerAddress); err != nil {
		return fmt.Errorf("minting receipt for %s on course %d: %w", p.BuyerAddress, p.CourseID, err)
	}

	const purchaseQ = `
		INSERT INTO purchases (course_id, buyer_address, amount_cents, fee_cents)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	if err := tx.QueryRow(ctx, purchaseQ, p.CourseID, p.BuyerAddress, p.AmountCents, p.FeeCents).
		Scan(&p.PurchaseID, &p.CreatedAt); err != nil {
		return fmt.Errorf("recording purchase of course %d: %w", p.CourseID, err)
	}

	err = enqueueEvent(ctx, tx, r.eventsQueue, model.EventReceiptIssued, model.ReceiptIssuedEvent{
		CourseID:    p.CourseID,
		FromAddress: "",
		ToAddress:   p.BuyerAddress,
		Quantity:    1,
	})
	if err != nil {
		return err
	}
	err = enqueueEvent(ctx, tx, r.eventsQueue, model.EventCourseBought, model.CourseBoughtEvent{
		CourseID:     p.CourseID,
		BuyerAddress: p.BuyerAddress,
		AmountCents:  p.AmountCents,
		FeeCents:     p.FeeCents,
	})
	if err != nil {
		return err
	}

	// External fund transfers run last, with the mint already recorded.
	// Their failure aborts the whole transaction.
	if err := disburse(ctx); err != nil {
		return fmt.Errorf("disbursing purchase funds: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing purchase of course %d: %w", p.CourseID, err)
	}
	return nil
}

func (r *purchaseRepo) GetPurchasesByBuyer(ctx context.Context, buyerAddress string) ([]model.Purchase, error) {
	const q = `
		SELECT id, course_id, buyer_address, amount_cents, fee_cents, created_at
		FROM purchases
		WHERE buyer_address = $1
		ORDER BY id DESC
	`
	rows, err := r.pool.Query(ctx, q, buyerAddress)
	if err != nil {
		return nil, fmt.Errorf("listing purchases for %s: %w", buyerAddress, err)
	}
	defer rows.Close()

	var purchases []model.Purchase
	for rows.Next() {
		var p model.Purchase
		if err := rows.Scan(
			&p.PurchaseID,
			&p.CourseID,
			&p.BuyerAddress,
			&p.AmountCents,
			&p.FeeCents,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning purchase row: %w", err)
		}
		purchases = append(purchases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating purchase rows: %w", err)
	}

	if len(purchases) == 0 {
		return []model.Purchase{}, nil
	}
	return purchases, nil
}
