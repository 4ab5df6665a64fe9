// internal/application/usecase/mint_usecase.go
package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"strings"

	"github.com/mr-tron/base58"

	"github.com/rakess70/mintomatic/internal/domain/mint"
	"github.com/rakess70/mintomatic/internal/infra/idempotency"
)

// MintUsecase turns one user mint intent into at most one submitted
// transaction. The dedup store guards the window in which a flaky client can
// re-send the same intent; a replayed key returns the cached signature
// without touching the chain again.
type MintUsecase struct {
	minter mint.Minter
	keys   *idempotency.MemoryStore

	machineAddress        string
	collectionMintAddress string
}

func NewMintUsecase(minter mint.Minter, keys *idempotency.MemoryStore, machineAddress, collectionMintAddress string) *MintUsecase {
	return &MintUsecase{
		minter:                minter,
		keys:                  keys,
		machineAddress:        strings.TrimSpace(machineAddress),
		collectionMintAddress: strings.TrimSpace(collectionMintAddress),
	}
}

// Mint validates the request, claims the idempotency key and submits.
// idempotencyKey may be empty; the fallback key is derived from
// wallet+machine so a double-click double-submit still dedups.
func (u *MintUsecase) Mint(ctx context.Context, walletAddress, idempotencyKey string) (*mint.Result, error) {
	if u == nil || u.minter == nil {
		return nil, fmt.Errorf("mint usecase is not configured")
	}

	wallet := strings.TrimSpace(walletAddress)
	if wallet == "" || u.machineAddress == "" || u.collectionMintAddress == "" {
		return nil, mint.ErrMissingParams
	}
	if b, err := base58.Decode(wallet); err != nil || len(b) != 32 {
		return nil, mint.ErrInvalidWallet
	}

	key := strings.TrimSpace(idempotencyKey)
	if key == "" {
		key = intentKey(wallet, u.machineAddress)
	}

	if u.keys != nil {
		entry, fresh := u.keys.Begin(key)
		if !fresh {
			if entry.State == idempotency.StateComplete && entry.Result != nil {
				log.Printf("[mint_usecase] replaying cached mint result key=%s tx=%s", maskKey(key), entry.Result.Signature)
				return entry.Result, nil
			}
			return nil, mint.ErrInProgress
		}
	}

	res, err := u.minter.Mint(ctx, mint.Request{
		WalletAddress:         wallet,
		MachineAddress:        u.machineAddress,
		CollectionMintAddress: u.collectionMintAddress,
	})
	if err != nil {
		if u.keys != nil {
			u.keys.Release(key)
		}
		return nil, err
	}

	if u.keys != nil {
		u.keys.Complete(key, res)
	}
	return res, nil
}

func intentKey(wallet, machine string) string {
	sum := sha256.Sum256([]byte(wallet + "|" + machine))
	return hex.EncodeToString(sum[:])
}

// maskKey shortens a key for logging. Client-supplied keys can be any length.
func maskKey(s string) string {
	if len(s) <= 10 {
		return s
	}
	return s[:4] + "***" + s[len(s)-4:]
}
