// internal/adapters/in/http/handlers/config_handler.go
package handlers

import (
	"net/http"

	"github.com/rakess70/mintomatic/internal/infra/config"
)

// ConfigHandler exposes the public subset of configuration the browser
// needs to connect wallets and tag referrals. Secrets never pass through
// here.
type ConfigHandler struct {
	cfg *config.Config
}

func NewConfigHandler(cfg *config.Config) *ConfigHandler {
	return &ConfigHandler{cfg: cfg}
}

// Get handles GET /api/config.
func (h *ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h.cfg == nil {
		writeJSONError(w, http.StatusInternalServerError, "config is not loaded")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"rpcUrl":                 h.cfg.SolanaRPCURL,
		"candyMachineId":         h.cfg.CandyMachineID,
		"collectionMintId":       h.cfg.CollectionMintID,
		"walletConnectProjectId": h.cfg.WalletConnectProjectID,
		"defaultReferralCode":    h.cfg.DefaultReferralCode,
	})
}
