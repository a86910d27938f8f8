package model

import "time"

// Receipt is a (course, holder) balance entry in the receipt ledger.
// Receipts are mint-only: the quantity increases on every purchase and is
// never decremented or moved between holders.
type Receipt struct {
	CourseID      int64     `db:"course_id" json:"course_id"`
	HolderAddress string    `db:"holder_address" json:"holder_address"`
	Quantity      int64     `db:"quantity" json:"quantity"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}
