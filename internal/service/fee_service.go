package service

import (
	"context"

	"app/internal/model"
	"app/internal/repository"

	"github.com/rs/zerolog"
)

// FeeService governs the protocol fee rate. Only the configured operator
// address may change it.
type FeeService interface {
	GetProtocolFee(ctx context.Context) (int32, error)
	// SetProtocolFee replaces the rate. Rates above 100% (10000 bps) or
	// below zero are rejected; subsequent purchases use the new rate
	// immediately.
	SetProtocolFee(ctx context.Context, actorAddress string, feeBps int32) error
}

type feeService struct {
	repo            repository.FeeRepository
	operatorAddress string
	logger          zerolog.Logger
}

// NewFeeService creates a new FeeService with a scoped logger.
func NewFeeService(repo repository.FeeRepository, operatorAddress string, logger zerolog.Logger) FeeService {
	return &feeService{
		repo:            repo,
		operatorAddress: operatorAddress,
		logger:          logger.With().Str("service", "FeeService").Logger(),
	}
}

func (s *feeService) GetProtocolFee(ctx context.Context) (int32, error) {
	feeBps, err := s.repo.GetFeeRate(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to fetch protocol fee")
		return 0, err
	}
	return feeBps, nil
}

func (s *feeService) SetProtocolFee(ctx context.Context, actorAddress string, feeBps int32) error {
	if actorAddress != s.operatorAddress {
		return ErrUnauthorized
	}
	if feeBps < 0 || feeBps > model.MaxFeeBps {
		return ErrInvalidFeeRate
	}
	if err := s.repo.UpdateFeeRate(ctx, feeBps); err != nil {
		s.logger.Error().Err(err).Int32("fee_bps", feeBps).Msg("Failed to update protocol fee")
		return err
	}
	s.logger.Info().Int32("fee_bps", feeBps).Msg("Protocol fee updated")
	return nil
}
