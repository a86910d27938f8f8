package handler

import (
	"errors"
	"net/http"

	"app/internal/service"
)

// writeServiceError maps ledger error kinds onto HTTP status codes. Unknown
// errors are reported as internal without leaking details.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		http.Error(w, service.ErrUnauthorized.Error(), http.StatusForbidden)
	case errors.Is(err, service.ErrNotCourseOwner):
		http.Error(w, service.ErrNotCourseOwner.Error(), http.StatusForbidden)
	case errors.Is(err, service.ErrTransferNotAllowed):
		http.Error(w, service.ErrTransferNotAllowed.Error(), http.StatusForbidden)
	case errors.Is(err, service.ErrCourseNotFound):
		http.Error(w, service.ErrCourseNotFound.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrDLQMessageNotFound):
		http.Error(w, service.ErrDLQMessageNotFound.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrIncorrectPayment):
		http.Error(w, service.ErrIncorrectPayment.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidFeeRate):
		http.Error(w, service.ErrInvalidFeeRate.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrBatchLengthMismatch):
		http.Error(w, service.ErrBatchLengthMismatch.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrPaymentTransferFailed):
		http.Error(w, service.ErrPaymentTransferFailed.Error(), http.StatusBadGateway)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
