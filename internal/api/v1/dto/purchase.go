package dto

import "time"

// PurchaseCreateDTO is used for incoming purchase requests. The amount must
// equal the course's listed price exactly.
type PurchaseCreateDTO struct {
	CourseID    int64  `json:"course_id" validate:"required,min=1"`
	AmountCents *int64 `json:"amount_cents" validate:"required,min=0"`
}

// PurchaseResponseDTO is returned after a successful purchase and in
// purchase history listings.
type PurchaseResponseDTO struct {
	PurchaseID   int64     `json:"purchase_id"`
	CourseID     int64     `json:"course_id"`
	BuyerAddress string    `json:"buyer_address"`
	AmountCents  int64     `json:"amount_cents"`
	FeeCents     int64     `json:"fee_cents"`
	CreatedAt    time.Time `json:"created_at"`
}
