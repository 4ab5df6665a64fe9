// internal/adapters/in/http/handlers/nft_handler.go
package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	usecase "github.com/rakess70/mintomatic/internal/application/usecase"
)

// NFTHandler serves the auxiliary storefront queries: metadata passthrough
// and transaction cost.
type NFTHandler struct {
	nftUC *usecase.NFTUsecase
}

func NewNFTHandler(nftUC *usecase.NFTUsecase) *NFTHandler {
	return &NFTHandler{nftUC: nftUC}
}

// GetMetadata handles GET /api/nft/{mintAddress}. Soft-fail to null.
func (h *NFTHandler) GetMetadata(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.nftUC == nil {
		writeJSONError(w, http.StatusInternalServerError, "nft usecase is not configured")
		return
	}

	mintAddress := strings.TrimSpace(chi.URLParam(r, "mintAddress"))
	if mintAddress == "" {
		writeJSONError(w, http.StatusBadRequest, "mintAddress is empty")
		return
	}

	doc, err := h.nftUC.Metadata(ctx, mintAddress)
	if err != nil {
		log.Printf("[nft_handler] metadata fetch failed mint=%s err=%v", mintAddress, err)
		writeNull(w)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// GetTransactionCost handles GET /api/transaction/{txId}/cost.
func (h *NFTHandler) GetTransactionCost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.nftUC == nil {
		writeJSONError(w, http.StatusInternalServerError, "nft usecase is not configured")
		return
	}

	txID := strings.TrimSpace(chi.URLParam(r, "txId"))
	if txID == "" {
		writeJSONError(w, http.StatusBadRequest, "txId is empty")
		return
	}

	cost := h.nftUC.TransactionCost(ctx, txID)
	writeJSON(w, http.StatusOK, map[string]any{"cost": cost})
}
