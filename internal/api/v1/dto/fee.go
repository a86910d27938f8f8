package dto

// FeeResponseDTO is the current protocol fee rate.
type FeeResponseDTO struct {
	FeeBps int32 `json:"fee_bps"`
}

// FeeUpdateDTO is used for incoming fee changes by the protocol operator.
type FeeUpdateDTO struct {
	FeeBps *int32 `json:"fee_bps" validate:"required,min=0,max=10000"`
}
