package service

import "errors"

// Ledger error kinds. Every failure aborts the whole operation with no
// partial state change; handlers map these onto HTTP status codes.
var (
	// ErrUnauthorized is returned when the actor lacks the required
	// ownership/delegation relationship, or is not the protocol operator.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotCourseOwner is returned when an authorized actor tries to modify
	// a course owned by a different profile.
	ErrNotCourseOwner = errors.New("not_course_owner")
	// ErrCourseNotFound is returned for operations on unknown course IDs.
	ErrCourseNotFound = errors.New("course_not_found")
	// ErrIncorrectPayment is returned when the payment does not equal the
	// listed price exactly, in either direction.
	ErrIncorrectPayment = errors.New("incorrect_payment")
	// ErrPaymentTransferFailed is returned when a downstream fund transfer
	// did not complete; the purchase, including the mint, is rolled back.
	ErrPaymentTransferFailed = errors.New("payment_transfer_failed")
	// ErrTransferNotAllowed is returned for any attempt to move a receipt
	// between holders, regardless of caller.
	ErrTransferNotAllowed = errors.New("transfer_not_allowed")
	// ErrInvalidFeeRate is returned for fee rates outside 0-10000 bps.
	ErrInvalidFeeRate = errors.New("invalid_fee_rate")
	// ErrBatchLengthMismatch is returned when batch balance queries pass
	// arrays of different lengths.
	ErrBatchLengthMismatch = errors.New("batch_length_mismatch")
	// ErrDLQMessageNotFound is returned when redriving an unknown
	// dead-letter message ID.
	ErrDLQMessageNotFound = errors.New("dlq_message_not_found")
)
