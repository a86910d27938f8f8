package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"app/internal/api/v1/dto"
	"app/internal/middleware"
	"app/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// ReceiptHandler handles receipt ledger endpoints
type ReceiptHandler struct {
	receiptService service.ReceiptService
	validate       *validator.Validate
	logger         zerolog.Logger
}

// NewReceiptHandler creates a new ReceiptHandler
func NewReceiptHandler(receiptService service.ReceiptService, validate *validator.Validate, logger zerolog.Logger) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
		validate:       validate,
		logger:         logger,
	}
}

// RegisterRoutes mounts receipt routes
func (h *ReceiptHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("/receipts/", authMw(http.HandlerFunc(h.getBalance)))
	mux.Handle("/receipts/batch", authMw(http.HandlerFunc(h.getBatchBalance)))
	mux.Handle("/receipts/transfer", authMw(http.HandlerFunc(h.transfer)))
	mux.Handle("/receipts/batch-transfer", authMw(http.HandlerFunc(h.batchTransfer)))
}

// getBalance godoc
// @Summary Get a receipt balance
// @Description Returns how many receipts the holder has for the course. Unknown pairs return zero.
// @Tags receipts
// @Produce json
// @Param holderAddress path string true "Holder address"
// @Param courseId path int true "Course ID"
// @Success 200 {object} dto.BalanceResponseDTO
// @Router /receipts/{holderAddress}/{courseId} [get]
func (h *ReceiptHandler) getBalance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, "/receipts/")
	parts := strings.Split(rest, "/")
	if len(parts) != 2 {
		http.NotFound(w, r)
		return
	}
	holder := parts[0]
	courseID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || courseID < 1 {
		http.Error(w, "Invalid course ID", http.StatusBadRequest)
		return
	}
	balance, err := h.receiptService.BalanceOf(r.Context(), holder, courseID)
	if err != nil {
		h.logger.Error().Err(err).Str("holder", holder).Int64("course_id", courseID).Msg("failed to fetch balance")
		http.Error(w, "Failed to fetch balance", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dto.BalanceResponseDTO{
		HolderAddress: holder,
		CourseID:      courseID,
		Quantity:      balance,
	})
}

// getBatchBalance godoc
// @Summary Get receipt balances in bulk
// @Description Returns the balances for parallel holder/course arrays, in input order.
// @Tags receipts
// @Accept json
// @Produce json
// @Param query body dto.BatchBalanceRequestDTO true "Batch balance query"
// @Success 200 {object} dto.BatchBalanceResponseDTO
// @Failure 400 {string} string "batch_length_mismatch"
// @Router /receipts/batch [post]
func (h *ReceiptHandler) getBatchBalance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.BatchBalanceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}
	balances, err := h.receiptService.BalanceOfBatch(r.Context(), req.HolderAddresses, req.CourseIDs)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dto.BatchBalanceResponseDTO{Quantities: balances})
}

// transfer godoc
// @Summary Transfer a receipt (always rejected)
// @Description Receipts are non-transferable proof-of-purchase. This endpoint exists for API completeness and always fails.
// @Tags receipts
// @Accept json
// @Param transfer body dto.TransferRequestDTO true "Transfer request"
// @Failure 403 {string} string "transfer_not_allowed"
// @Router /receipts/transfer [post]
func (h *ReceiptHandler) transfer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	actor, ok := r.Context().Value(middleware.ActorContextKey).(string)
	if !ok || actor == "" {
		http.Error(w, "Unauthorized: actor not found in context", http.StatusUnauthorized)
		return
	}
	var req dto.TransferRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}
	err := h.receiptService.Transfer(r.Context(), actor, req.FromAddress, req.ToAddress, req.CourseID, req.Quantity)
	writeServiceError(w, err)
}

// batchTransfer godoc
// @Summary Transfer receipts in bulk (always rejected)
// @Description Receipts are non-transferable proof-of-purchase. This endpoint exists for API completeness and always fails.
// @Tags receipts
// @Accept json
// @Param transfer body dto.BatchTransferRequestDTO true "Batch transfer request"
// @Failure 403 {string} string "transfer_not_allowed"
// @Router /receipts/batch-transfer [post]
func (h *ReceiptHandler) batchTransfer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	actor, ok := r.Context().Value(middleware.ActorContextKey).(string)
	if !ok || actor == "" {
		http.Error(w, "Unauthorized: actor not found in context", http.StatusUnauthorized)
		return
	}
	var req dto.BatchTransferRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}
	err := h.receiptService.BatchTransfer(r.Context(), actor, req.FromAddress, req.ToAddress, req.CourseIDs, req.Quantities)
	writeServiceError(w, err)
}
