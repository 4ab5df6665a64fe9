// internal/application/usecase/machine_usecase.go
package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/rakess70/mintomatic/internal/domain/candymachine"
)

// MachineUsecase resolves everything the storefront needs to render a candy
// machine: inventory, price and collection display data.
type MachineUsecase struct {
	reader  candymachine.MachineReader
	display candymachine.DisplayFetcher
}

func NewMachineUsecase(reader candymachine.MachineReader, display candymachine.DisplayFetcher) *MachineUsecase {
	return &MachineUsecase{reader: reader, display: display}
}

// Resolve fetches the machine record, the collection display document and the
// active payment guard, and folds them into one summary.
//
// Display resolution is best-effort: any failure on that path leaves the
// display fields empty so pricing still renders. Machine and guard fetch
// failures are returned to the caller, which degrades them to "data
// unavailable" at the HTTP boundary.
func (u *MachineUsecase) Resolve(ctx context.Context, machineAddress string) (*candymachine.MachineSummary, error) {
	if u == nil || u.reader == nil {
		return nil, fmt.Errorf("machine usecase is not configured")
	}
	addr := strings.TrimSpace(machineAddress)
	if addr == "" {
		return nil, candymachine.ErrNotFound
	}

	cfg, err := u.reader.ReadMachine(ctx, addr)
	if err != nil {
		return nil, err
	}

	display := u.resolveDisplay(ctx, cfg.CollectionMint)

	guards, err := u.reader.ReadGuards(ctx, cfg.MintAuthority)
	if err != nil {
		return nil, err
	}
	if guards == nil || (guards.SolPayment == nil && guards.TokenPayment == nil) {
		log.Printf("[machine_usecase] no payment guard on machine=%s; using placeholder price", addr)
	}
	quote := candymachine.ResolvePrice(guards)

	return &candymachine.MachineSummary{
		CollectionName:  display.Name,
		CollectionImage: display.ImageURL,
		ItemsAvailable:  cfg.ItemsAvailable,
		ItemsMinted:     cfg.ItemsMinted,
		ItemsRemaining:  cfg.ItemsRemaining(),
		Price:           quote.Amount,
		Currency:        quote.Currency,
	}, nil
}

// resolveDisplay follows collection mint -> metadata URI -> JSON document.
// Soft-fail at every step.
func (u *MachineUsecase) resolveDisplay(ctx context.Context, collectionMint string) candymachine.CollectionDisplay {
	var empty candymachine.CollectionDisplay

	if collectionMint == "" {
		log.Printf("[machine_usecase] machine has no collection mint; skipping display fetch")
		return empty
	}

	uri, err := u.reader.ReadMetadataURI(ctx, collectionMint)
	if err != nil {
		log.Printf("[machine_usecase] collection metadata read failed: %v", err)
		return empty
	}
	if uri == "" {
		log.Printf("[machine_usecase] collection metadata has no uri")
		return empty
	}

	if u.display == nil {
		return empty
	}
	display, err := u.display.FetchDisplay(ctx, uri)
	if err != nil {
		log.Printf("[machine_usecase] collection display fetch failed: %v", err)
		return empty
	}
	return display
}
