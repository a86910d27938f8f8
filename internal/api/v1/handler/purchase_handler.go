package handler

import (
	"encoding/json"
	"net/http"

	"app/internal/api/v1/dto"
	"app/internal/middleware"
	"app/internal/model"
	"app/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// PurchaseHandler handles purchase endpoints
type PurchaseHandler struct {
	purchaseService service.PurchaseService
	validate        *validator.Validate
	logger          zerolog.Logger
}

// NewPurchaseHandler creates a new PurchaseHandler
func NewPurchaseHandler(purchaseService service.PurchaseService, validate *validator.Validate, logger zerolog.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
		validate:        validate,
		logger:          logger,
	}
}

// RegisterRoutes mounts purchase routes
func (h *PurchaseHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("/purchases", authMw(http.HandlerFunc(h.handlePurchases)))
}

func purchaseToResponse(p *model.Purchase) dto.PurchaseResponseDTO {
	return dto.PurchaseResponseDTO{
		PurchaseID:   p.PurchaseID,
		CourseID:     p.CourseID,
		BuyerAddress: p.BuyerAddress,
		AmountCents:  p.AmountCents,
		FeeCents:     p.FeeCents,
		CreatedAt:    p.CreatedAt,
	}
}

func (h *PurchaseHandler) handlePurchases(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.buyCourse(w, r)
	case http.MethodGet:
		h.listPurchases(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// buyCourse godoc
// @Summary Buy a course
// @Description Executes an atomic purchase: the payment must equal the listed price, funds are split between seller and treasury, and an ownership receipt is issued to the caller.
// @Tags purchases
// @Accept json
// @Produce json
// @Param purchase body dto.PurchaseCreateDTO true "Purchase request"
// @Success 201 {object} dto.PurchaseResponseDTO
// @Failure 400 {string} string "incorrect_payment"
// @Failure 404 {string} string "course_not_found"
// @Failure 502 {string} string "payment_transfer_failed"
// @Router /purchases [post]
func (h *PurchaseHandler) buyCourse(w http.ResponseWriter, r *http.Request) {
	actor, ok := r.Context().Value(middleware.ActorContextKey).(string)
	if !ok || actor == "" {
		http.Error(w, "Unauthorized: actor not found in context", http.StatusUnauthorized)
		return
	}
	var req dto.PurchaseCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}
	purchase, err := h.purchaseService.BuyCourse(r.Context(), actor, req.CourseID, *req.AmountCents)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	resp := purchaseToResponse(purchase)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resp)
}

// listPurchases godoc
// @Summary List the caller's purchases
// @Description Returns the caller's purchase history, newest first.
// @Tags purchases
// @Produce json
// @Success 200 {array} dto.PurchaseResponseDTO
// @Router /purchases [get]
func (h *PurchaseHandler) listPurchases(w http.ResponseWriter, r *http.Request) {
	actor, ok := r.Context().Value(middleware.ActorContextKey).(string)
	if !ok || actor == "" {
		http.Error(w, "Unauthorized: actor not found in context", http.StatusUnauthorized)
		return
	}
	purchases, err := h.purchaseService.ListPurchases(r.Context(), actor)
	if err != nil {
		h.logger.Error().Err(err).Str("buyer", actor).Msg("failed to list purchases")
		http.Error(w, "Failed to list purchases", http.StatusInternalServerError)
		return
	}
	resp := make([]dto.PurchaseResponseDTO, 0, len(purchases))
	for i := range purchases {
		resp = append(resp, purchaseToResponse(&purchases[i]))
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
