package chat

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	chatModel "github.com/zoralabs/zora/backend/internal/model/chat"
	"github.com/zoralabs/zora/backend/internal/service/relay"
	"github.com/zoralabs/zora/backend/pkg/utils"
)

// Handler exposes the relay service over HTTP.
type Handler struct {
	relaySvc *relay.Service
}

// New creates the chat handler.
func New(relaySvc *relay.Service) *Handler {
	return &Handler{relaySvc: relaySvc}
}

// RegisterRoutes mounts the chat endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload chatModel.Request
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "invalid request body")
		return
	}

	resp, err := h.relaySvc.Handle(r.Context(), payload)
	if err != nil {
		log.Printf("[chat] relay failed: %v", err)
		status, message := errorEnvelope(err)
		utils.RespondError(w, status, message)
		return
	}

	utils.RespondJSON(w, http.StatusOK, resp)
}

// errorEnvelope maps typed relay failures onto the wire contract: 429 and 402
// pass through from the gateway, everything else collapses to 500.
func errorEnvelope(err error) (int, string) {
	var relayErr *relay.Error
	if !errors.As(err, &relayErr) {
		return http.StatusInternalServerError, "An error occurred"
	}

	switch relayErr.Code {
	case relay.ErrorRateLimited:
		return http.StatusTooManyRequests, "Rate limit exceeded. Please try again in a moment."
	case relay.ErrorQuotaExhausted:
		return http.StatusPaymentRequired, "AI credits depleted. Please add more credits."
	default:
		return http.StatusInternalServerError, relayErr.Reason
	}
}
