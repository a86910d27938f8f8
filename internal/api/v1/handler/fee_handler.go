package handler

import (
	"encoding/json"
	"net/http"

	"app/internal/api/v1/dto"
	"app/internal/middleware"
	"app/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// FeeHandler handles protocol fee endpoints
type FeeHandler struct {
	feeService service.FeeService
	validate   *validator.Validate
	logger     zerolog.Logger
}

// NewFeeHandler creates a new FeeHandler
func NewFeeHandler(feeService service.FeeService, validate *validator.Validate, logger zerolog.Logger) *FeeHandler {
	return &FeeHandler{
		feeService: feeService,
		validate:   validate,
		logger:     logger,
	}
}

// RegisterRoutes mounts fee routes
func (h *FeeHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("/protocol/fee", authMw(http.HandlerFunc(h.handleFee)))
}

func (h *FeeHandler) handleFee(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.getFee(w, r)
	case http.MethodPut:
		h.updateFee(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// getFee godoc
// @Summary Get the protocol fee rate
// @Description Returns the current protocol fee in basis points.
// @Tags protocol
// @Produce json
// @Success 200 {object} dto.FeeResponseDTO
// @Router /protocol/fee [get]
func (h *FeeHandler) getFee(w http.ResponseWriter, r *http.Request) {
	feeBps, err := h.feeService.GetProtocolFee(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to fetch protocol fee")
		http.Error(w, "Failed to fetch protocol fee", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dto.FeeResponseDTO{FeeBps: feeBps})
}

// updateFee godoc
// @Summary Update the protocol fee rate
// @Description Replaces the fee rate. Only the protocol operator may call this; rates outside 0..10000 bps are rejected.
// @Tags protocol
// @Accept json
// @Produce json
// @Param fee body dto.FeeUpdateDTO true "Fee update request"
// @Success 200 {object} dto.FeeResponseDTO
// @Failure 400 {string} string "invalid_fee_rate"
// @Failure 403 {string} string "unauthorized"
// @Router /protocol/fee [put]
func (h *FeeHandler) updateFee(w http.ResponseWriter, r *http.Request) {
	actor, ok := r.Context().Value(middleware.ActorContextKey).(string)
	if !ok || actor == "" {
		http.Error(w, "Unauthorized: actor not found in context", http.StatusUnauthorized)
		return
	}
	var req dto.FeeUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.feeService.SetProtocolFee(r.Context(), actor, *req.FeeBps); err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dto.FeeResponseDTO{FeeBps: *req.FeeBps})
}
