// internal/adapters/in/http/handlers/webhook_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	usecase "github.com/rakess70/mintomatic/internal/application/usecase"
	"github.com/rakess70/mintomatic/internal/domain/referral"
)

const webhookMaxBody = 1 << 20 // 1MB

// WebhookHandler receives mint-confirmation callbacks from the payment
// processor and hands them to the referral relay. The caller always gets
// 200 {} unless the body is not JSON or the server is misconfigured.
type WebhookHandler struct {
	referralUC *usecase.ReferralUsecase
}

func NewWebhookHandler(referralUC *usecase.ReferralUsecase) *WebhookHandler {
	return &WebhookHandler{referralUC: referralUC}
}

// Post handles POST /api/webhook.
func (h *WebhookHandler) Post(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.referralUC == nil {
		writeJSONError(w, http.StatusInternalServerError, "webhook handler is not configured")
		return
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, webhookMaxBody))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "failed to read body")
		return
	}
	_ = r.Body.Close()

	// Loosely-structured sender, but not lawless: non-JSON bodies are
	// rejected instead of silently coerced.
	var payload usecase.WebhookPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Printf("[webhook_handler] rejected malformed payload err=%v", err)
		writeJSONError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	log.Printf("[webhook_handler] received mintAddress=%q txId=%q referrer=%q",
		payload.MintAddress, payload.TxID, payload.PassThroughArgs.Referer)

	if err := h.referralUC.HandleMintConfirmation(ctx, payload); err != nil {
		if errors.Is(err, referral.ErrNotConfigured) {
			writeJSONError(w, http.StatusInternalServerError, "referral relay is not configured")
			return
		}
		// HandleMintConfirmation swallows delivery errors itself; anything
		// else is still a server problem.
		writeJSONError(w, http.StatusInternalServerError, "webhook handler error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{})
}
