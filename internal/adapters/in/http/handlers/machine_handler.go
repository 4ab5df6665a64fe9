// internal/adapters/in/http/handlers/machine_handler.go
package handlers

import (
	"log"
	"net/http"
	"time"

	usecase "github.com/rakess70/mintomatic/internal/application/usecase"
)

// MachineHandler serves the storefront's pricing/inventory view of the
// configured candy machine.
type MachineHandler struct {
	machineUC      *usecase.MachineUsecase
	machineAddress string
}

func NewMachineHandler(machineUC *usecase.MachineUsecase, machineAddress string) *MachineHandler {
	return &MachineHandler{machineUC: machineUC, machineAddress: machineAddress}
}

// Get handles GET /api/machine. Resolution failures degrade to a null body;
// the page must always be able to render something.
func (h *MachineHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.machineUC == nil {
		writeJSONError(w, http.StatusInternalServerError, "machine usecase is not configured")
		return
	}

	start := time.Now()
	summary, err := h.machineUC.Resolve(ctx, h.machineAddress)
	elapsed := time.Since(start)

	if err != nil {
		log.Printf("[machine_handler] resolve failed machine=%s elapsed=%s err=%v", h.machineAddress, elapsed, err)
		writeNull(w)
		return
	}

	log.Printf(
		"[machine_handler] resolved machine=%s elapsed=%s remaining=%d price=%.4f %s",
		h.machineAddress, elapsed, summary.ItemsRemaining, summary.Price, summary.Currency,
	)
	writeJSON(w, http.StatusOK, summary)
}
