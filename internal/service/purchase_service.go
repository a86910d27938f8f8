package service

import (
	"context"
	"fmt"

	"app/internal/identity"
	"app/internal/model"
	"app/internal/payout"
	"app/internal/repository"

	"github.com/rs/zerolog"
)

// PurchaseService is the purchase engine: it validates the payment against
// the listed price, splits the funds between seller and protocol treasury,
// and mints the buyer's ownership receipt — all or nothing.
type PurchaseService interface {
	// BuyCourse executes a purchase. The payment must equal the listed
	// price exactly. On success the buyer's receipt balance increases by
	// one, the seller receives price minus fee, and the treasury receives
	// the fee, where fee = floor(price * feeBps / 10000).
	BuyCourse(ctx context.Context, buyerAddress string, courseID, paymentCents int64) (*model.Purchase, error)
	// ListPurchases returns the buyer's purchase history, newest first.
	ListPurchases(ctx context.Context, buyerAddress string) ([]model.Purchase, error)
}

type purchaseService struct {
	purchases repository.PurchaseRepository
	courses   repository.CourseRepository
	resolver  identity.Resolver
	gateway   payout.Gateway
	treasury  string
	logger    zerolog.Logger
}

// NewPurchaseService creates a new PurchaseService with a scoped logger.
func NewPurchaseService(
	purchases repository.PurchaseRepository,
	courses repository.CourseRepository,
	resolver identity.Resolver,
	gateway payout.Gateway,
	treasuryAccount string,
	logger zerolog.Logger,
) PurchaseService {
	return &purchaseService{
		purchases: purchases,
		courses:   courses,
		resolver:  resolver,
		gateway:   gateway,
		treasury:  treasuryAccount,
		logger:    logger.With().Str("service", "PurchaseService").Logger(),
	}
}

func (s *purchaseService) BuyCourse(ctx context.Context, buyerAddress string, courseID, paymentCents int64) (*model.Purchase, error) {
	course, err := s.courses.GetCourseByID(ctx, courseID)
	if err != nil {
		s.logger.Error().Err(err).Int64("course_id", courseID).Msg("Failed to fetch course")
		return nil, err
	}
	if course == nil {
		// Unknown IDs are rejected outright; they are never treated as
		// zero-priced courses.
		return nil, ErrCourseNotFound
	}

	// No partial fill, no refund of excess: the payment must match exactly.
	if paymentCents != course.PriceCents {
		return nil, ErrIncorrectPayment
	}

	// Resolve the payout address at purchase time so the sale pays whoever
	// controls the profile now, not whoever listed the course.
	sellerAccount, err := s.resolver.ResolveAddress(ctx, course.ProfileID)
	if err != nil {
		s.logger.Error().Err(err).Uint64("profile_id", course.ProfileID).Msg("Failed to resolve seller payout address")
		return nil, fmt.Errorf("resolving seller payout address: %w", err)
	}

	// FeeCents is computed inside the purchase transaction from the
	// committed rate, so a concurrent rate change can never produce a split
	// inconsistent with the recorded purchase.
	purchase := &model.Purchase{
		CourseID:     courseID,
		BuyerAddress: buyerAddress,
		AmountCents:  paymentCents,
	}

	var disburseErr error
	var completedTransfers []string
	err = s.purchases.ExecutePurchase(ctx, purchase, func(ctx context.Context) error {
		completedTransfers, disburseErr = s.disburse(ctx, purchase, sellerAccount)
		return disburseErr
	})
	if err != nil {
		if disburseErr != nil {
			s.logger.Error().Err(disburseErr).Int64("course_id", courseID).Str("buyer", buyerAddress).Msg("Purchase rolled back: fund transfer failed")
			return nil, fmt.Errorf("disbursement of %d cents: %w", paymentCents, ErrPaymentTransferFailed)
		}
		// The transaction failed after the transfers went through (a
		// commit-time serialization failure or a dropped connection). The
		// ledger rolled back, so the transfers are compensated before the
		// error is surfaced: money never stays moved without a receipt.
		s.reverseTransfers(ctx, completedTransfers)
		s.logger.Error().Err(err).Int64("course_id", courseID).Str("buyer", buyerAddress).Msg("Purchase transaction failed")
		return nil, err
	}

	s.logger.Info().
		Int64("course_id", courseID).
		Str("buyer", buyerAddress).
		Int64("amount_cents", purchase.AmountCents).
		Int64("fee_cents", purchase.FeeCents).
		Msg("Course purchased")
	return purchase, nil
}

// disburse moves price minus fee to the seller and the fee to the treasury.
// It returns the IDs of the transfers that stand so the caller can
// compensate them if the surrounding transaction aborts later. If the fee
// leg fails after the seller leg succeeded, the seller transfer is reversed
// here and no IDs are returned.
func (s *purchaseService) disburse(ctx context.Context, p *model.Purchase, sellerAccount string) ([]string, error) {
	group := fmt.Sprintf("purchase-%d", p.PurchaseID)

	sellerTransferID, err := s.gateway.Transfer(ctx, sellerAccount, p.AmountCents-p.FeeCents, group)
	if err != nil {
		return nil, fmt.Errorf("seller transfer: %w", err)
	}
	if p.FeeCents == 0 {
		return []string{sellerTransferID}, nil
	}
	treasuryTransferID, err := s.gateway.Transfer(ctx, s.treasury, p.FeeCents, group)
	if err != nil {
		if rerr := s.gateway.Reverse(ctx, sellerTransferID); rerr != nil {
			s.logger.Error().Err(rerr).Str("transfer_id", sellerTransferID).Msg("Failed to reverse seller transfer; manual reconciliation required")
		}
		return nil, fmt.Errorf("treasury transfer: %w", err)
	}
	return []string{sellerTransferID, treasuryTransferID}, nil
}

// reverseTransfers compensates transfers whose surrounding purchase
// transaction did not commit.
func (s *purchaseService) reverseTransfers(ctx context.Context, transferIDs []string) {
	for _, id := range transferIDs {
		if err := s.gateway.Reverse(ctx, id); err != nil {
			s.logger.Error().Err(err).Str("transfer_id", id).Msg("Failed to reverse transfer after aborted purchase; manual reconciliation required")
		}
	}
}

func (s *purchaseService) ListPurchases(ctx context.Context, buyerAddress string) ([]model.Purchase, error) {
	purchases, err := s.purchases.GetPurchasesByBuyer(ctx, buyerAddress)
	if err != nil {
		s.logger.Error().Err(err).Str("buyer", buyerAddress).Msg("Failed to list purchases")
		return nil, err
	}
	return purchases, nil
}
