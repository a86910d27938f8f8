package service

import (
	"context"

	"app/internal/repository"

	"github.com/rs/zerolog"
)

// ReceiptService exposes the receipt ledger. Receipts are proof-of-purchase,
// not a tradable asset: every transfer operation fails unconditionally.
type ReceiptService interface {
	BalanceOf(ctx context.Context, holderAddress string, courseID int64) (int64, error)
	BalanceOfBatch(ctx context.Context, holderAddresses []string, courseIDs []int64) ([]int64, error)
	// Transfer always fails with ErrTransferNotAllowed, for any caller,
	// including the holder themselves.
	Transfer(ctx context.Context, callerAddress, fromAddress, toAddress string, courseID, quantity int64) error
	// BatchTransfer always fails with ErrTransferNotAllowed.
	BatchTransfer(ctx context.Context, callerAddress, fromAddress, toAddress string, courseIDs, quantities []int64) error
}

type receiptService struct {
	repo   repository.ReceiptRepository
	logger zerolog.Logger
}

// NewReceiptService creates a new ReceiptService with a scoped logger.
func NewReceiptService(repo repository.ReceiptRepository, logger zerolog.Logger) ReceiptService {
	return &receiptService{
		repo:   repo,
		logger: logger.With().Str("service", "ReceiptService").Logger(),
	}
}

func (s *receiptService) BalanceOf(ctx context.Context, holderAddress string, courseID int64) (int64, error) {
	balance, err := s.repo.BalanceOf(ctx, holderAddress, courseID)
	if err != nil {
		s.logger.Error().Err(err).Str("holder", holderAddress).Int64("course_id", courseID).Msg("Failed to fetch receipt balance")
		return 0, err
	}
	return balance, nil
}

func (s *receiptService) BalanceOfBatch(ctx context.Context, holderAddresses []string, courseIDs []int64) ([]int64, error) {
	if len(holderAddresses) != len(courseIDs) {
		return nil, ErrBatchLengthMismatch
	}
	if len(holderAddresses) == 0 {
		return []int64{}, nil
	}
	balances, err := s.repo.BalanceOfBatch(ctx, holderAddresses, courseIDs)
	if err != nil {
		s.logger.Error().Err(err).Int("pairs", len(holderAddresses)).Msg("Failed to fetch batch receipt balances")
		return nil, err
	}
	return balances, nil
}

func (s *receiptService) Transfer(ctx context.Context, callerAddress, fromAddress, toAddress string, courseID, quantity int64) error {
	s.logger.Warn().
		Str("caller", callerAddress).
		Str("from", fromAddress).
		Str("to", toAddress).
		Int64("course_id", courseID).
		Msg("Receipt transfer attempt rejected")
	return ErrTransferNotAllowed
}

func (s *receiptService) BatchTransfer(ctx context.Context, callerAddress, fromAddress, toAddress string, courseIDs, quantities []int64) error {
	s.logger.Warn().
		Str("caller", callerAddress).
		Str("from", fromAddress).
		Str("to", toAddress).
		Int("courses", len(courseIDs)).
		Msg("Batch receipt transfer attempt rejected")
	return ErrTransferNotAllowed
}
