package model

import "time"

// Purchase is the immutable record of a completed sale: who bought which
// course, what they paid, and how the payment was split between the seller
// and the protocol treasury.
type Purchase struct {
	PurchaseID   int64     `db:"id" json:"purchase_id"`
	CourseID     int64     `db:"course_id" json:"course_id"`
	BuyerAddress string    `db:"buyer_address" json:"buyer_address"`
	AmountCents  int64     `db:"amount_cents" json:"amount_cents"`
	FeeCents     int64     `db:"fee_cents" json:"fee_cents"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
