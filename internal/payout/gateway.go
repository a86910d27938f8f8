package payout

import "context"

// Gateway moves funds to a destination account. Implementations talk to an
// external money-movement provider, so any call can fail; the purchase
// transaction treats a Gateway failure as fatal and rolls back.
type Gateway interface {
	// Transfer sends amountCents to the destination account and returns the
	// provider's transfer identifier.
	Transfer(ctx context.Context, destination string, amountCents int64, transferGroup string) (string, error)
	// Reverse undoes a previously successful transfer. Used to compensate
	// the seller leg when the fee leg fails mid-purchase.
	Reverse(ctx context.Context, transferID string) error
}
