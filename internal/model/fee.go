package model

import "time"

// MaxFeeBps is the upper bound of the protocol fee rate (100%).
const MaxFeeBps = 10000

// FeePolicy holds the process-wide protocol fee rate in basis points.
// There is exactly one row of this in the database.
type FeePolicy struct {
	FeeBps    int32     `db:"fee_bps" json:"fee_bps"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
