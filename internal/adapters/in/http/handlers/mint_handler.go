// internal/adapters/in/http/handlers/mint_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	usecase "github.com/rakess70/mintomatic/internal/application/usecase"
	mintdom "github.com/rakess70/mintomatic/internal/domain/mint"
)

// MintHandler accepts one mint intent per request and reports the submitted
// transaction signature.
type MintHandler struct {
	mintUC *usecase.MintUsecase
}

func NewMintHandler(mintUC *usecase.MintUsecase) *MintHandler {
	return &MintHandler{mintUC: mintUC}
}

type mintRequestBody struct {
	WalletAddress string `json:"walletAddress"`
}

// Post handles POST /api/mint.
func (h *MintHandler) Post(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.mintUC == nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"message": "mint usecase is not configured",
		})
		return
	}

	var body mintRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "invalid request body"})
		return
	}

	idemKey := strings.TrimSpace(r.Header.Get("Idempotency-Key"))

	start := time.Now()
	result, err := h.mintUC.Mint(ctx, body.WalletAddress, idemKey)
	elapsed := time.Since(start)

	if err != nil {
		switch {
		case errors.Is(err, mintdom.ErrMissingParams), errors.Is(err, mintdom.ErrInvalidWallet):
			writeJSON(w, http.StatusBadRequest, map[string]any{"message": "Missing required parameters"})
		case errors.Is(err, mintdom.ErrInProgress):
			writeJSON(w, http.StatusConflict, map[string]any{"message": "mint already in progress"})
		default:
			log.Printf("[mint_handler] mint failed wallet=%s elapsed=%s err=%v", body.WalletAddress, elapsed, err)
			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"success": false,
				"message": "Minting failed",
				"error":   err.Error(),
			})
		}
		return
	}

	log.Printf("[mint_handler] mint ok wallet=%s tx=%s elapsed=%s", body.WalletAddress, result.Signature, elapsed)
	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"signature":   result.Signature,
		"mintAddress": result.MintAddress,
	})
}
