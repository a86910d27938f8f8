package payout

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/transfer"
	"github.com/stripe/stripe-go/v82/transferreversal"
)

// StripeGateway implements Gateway with Stripe Connect transfers.
// Destinations are connected account IDs resolved by the identity service.
type StripeGateway struct {
	currency string
	logger   zerolog.Logger
}

// NewStripeGateway sets the Stripe API key and returns the gateway with a
// scoped logger.
func NewStripeGateway(apiKey, currency string, logger zerolog.Logger) *StripeGateway {
	stripe.Key = apiKey
	lg := logger.With().Str("service", "StripeGateway").Logger()
	return &StripeGateway{currency: currency, logger: lg}
}

func (g *StripeGateway) Transfer(ctx context.Context, destination string, amountCents int64, transferGroup string) (string, error) {
	params := &stripe.TransferParams{
		Amount:        stripe.Int64(amountCents),
		Currency:      stripe.String(g.currency),
		Destination:   stripe.String(destination),
		TransferGroup: stripe.String(transferGroup),
	}
	params.Context = ctx
	tr, err := transfer.New(params)
	if err != nil {
		g.logger.Error().Err(err).Str("destination", destination).Int64("amount_cents", amountCents).Msg("Stripe transfer failed")
		return "", fmt.Errorf("stripe transfer to %s: %w", destination, err)
	}
	return tr.ID, nil
}

func (g *StripeGateway) Reverse(ctx context.Context, transferID string) error {
	params := &stripe.TransferReversalParams{
		ID: stripe.String(transferID),
	}
	params.Context = ctx
	if _, err := transferreversal.New(params); err != nil {
		g.logger.Error().Err(err).Str("transfer_id", transferID).Msg("Stripe transfer reversal failed")
		return fmt.Errorf("stripe reversal of %s: %w", transferID, err)
	}
	return nil
}
