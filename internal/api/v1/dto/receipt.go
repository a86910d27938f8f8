package dto

// BalanceResponseDTO is the receipt balance for one (holder, course) pair.
type BalanceResponseDTO struct {
	HolderAddress string `json:"holder_address"`
	CourseID      int64  `json:"course_id"`
	Quantity      int64  `json:"quantity"`
}

// BatchBalanceRequestDTO queries balances for parallel holder/course arrays.
type BatchBalanceRequestDTO struct {
	HolderAddresses []string `json:"holder_addresses" validate:"required,min=1"`
	CourseIDs       []int64  `json:"course_ids" validate:"required,min=1"`
}

// BatchBalanceResponseDTO returns quantities in input order.
type BatchBalanceResponseDTO struct {
	Quantities []int64 `json:"quantities"`
}

// TransferRequestDTO is the (always rejected) receipt transfer request.
type TransferRequestDTO struct {
	FromAddress string `json:"from_address" validate:"required"`
	ToAddress   string `json:"to_address" validate:"required"`
	CourseID    int64  `json:"course_id" validate:"required,min=1"`
	Quantity    int64  `json:"quantity" validate:"required,min=1"`
}

// BatchTransferRequestDTO is the (always rejected) batch transfer request.
type BatchTransferRequestDTO struct {
	FromAddress string  `json:"from_address" validate:"required"`
	ToAddress   string  `json:"to_address" validate:"required"`
	CourseIDs   []int64 `json:"course_ids" validate:"required,min=1"`
	Quantities  []int64 `json:"quantities" validate:"required,min=1"`
}
