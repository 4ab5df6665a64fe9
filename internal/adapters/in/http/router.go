// internal/adapters/in/http/router.go
package httpin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rakess70/mintomatic/internal/adapters/in/http/handlers"
	usecase "github.com/rakess70/mintomatic/internal/application/usecase"
	"github.com/rakess70/mintomatic/internal/infra/config"
)

// RouterDeps collects the usecases (and config) injected from main.go.
// Handlers are mounted only when their usecase is wired, so a partially
// configured server still serves what it can.
type RouterDeps struct {
	Cfg *config.Config

	MachineUC  *usecase.MachineUsecase
	MintUC     *usecase.MintUsecase
	ReferralUC *usecase.ReferralUsecase
	NFTUC      *usecase.NFTUsecase
}

// NewRouter sets up HTTP routing for the storefront API.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if deps.Cfg != nil {
		r.Get("/api/config", handlers.NewConfigHandler(deps.Cfg).Get)
	}

	if deps.MachineUC != nil && deps.Cfg != nil {
		r.Get("/api/machine", handlers.NewMachineHandler(deps.MachineUC, deps.Cfg.CandyMachineID).Get)
	}

	if deps.MintUC != nil {
		r.Post("/api/mint", handlers.NewMintHandler(deps.MintUC).Post)
	}

	if deps.ReferralUC != nil {
		r.Post("/api/webhook", handlers.NewWebhookHandler(deps.ReferralUC).Post)
	}

	if deps.NFTUC != nil {
		nft := handlers.NewNFTHandler(deps.NFTUC)
		r.Get("/api/nft/{mintAddress}", nft.GetMetadata)
		r.Get("/api/transaction/{txId}/cost", nft.GetTransactionCost)
	}

	return r
}
