package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"app/internal/api/v1/dto"
	"app/internal/service"

	"github.com/rs/zerolog"
)

// DLQHandler receives dead-lettered ledger events pushed back by Pub/Sub and
// exposes them for operator inspection.
type DLQHandler struct {
	service service.DLQService
	logger  zerolog.Logger
}

// NewDLQHandler creates a new DLQHandler
func NewDLQHandler(s service.DLQService, logger zerolog.Logger) *DLQHandler {
	return &DLQHandler{service: s, logger: logger}
}

// RegisterRoutes mounts DLQ routes. The push endpoint is guarded by Pub/Sub
// OIDC auth, not user auth.
func (h *DLQHandler) RegisterRoutes(mux *http.ServeMux, pushAuthMw, authMw func(http.Handler) http.Handler) {
	mux.Handle("/dlq", pushAuthMw(http.HandlerFunc(h.recordMessage)))
	mux.Handle("/dlq/messages", authMw(http.HandlerFunc(h.listMessages)))
	mux.Handle("/dlq/messages/", authMw(http.HandlerFunc(h.redriveMessage)))
}

func (h *DLQHandler) recordMessage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.PubSubPushRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Message.MessageID == "" {
		http.Error(w, "Invalid Pub/Sub message format: missing message ID", http.StatusBadRequest)
		return
	}

	h.logger.Info().
		Str("messageId", req.Message.MessageID).
		Str("subscription", req.Subscription).
		Msg("Processing dead-letter queue message")

	if err := h.service.ProcessAndSave(r.Context(), &req); err != nil {
		// Still acknowledge so Pub/Sub does not redeliver a message that is
		// already dead-lettered. The error is logged for offline analysis.
		h.logger.Error().Err(err).Msg("Failed to save DLQ message to database")
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *DLQHandler) listMessages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	messages, err := h.service.ListUnprocessed(r.Context(), limit)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list DLQ messages")
		http.Error(w, "Failed to list DLQ messages", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(messages)
}

func (h *DLQHandler) redriveMessage(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/dlq/messages/")
	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[1] != "redrive" || r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	id := parts[0]
	if err := h.service.Redrive(r.Context(), id); err != nil {
		h.logger.Error().Err(err).Str("id", id).Msg("Failed to redrive DLQ message")
		writeServiceError(w, err)
		return
	}
	h.logger.Info().Str("id", id).Msg("DLQ message redriven")
	w.WriteHeader(http.StatusAccepted)
}
