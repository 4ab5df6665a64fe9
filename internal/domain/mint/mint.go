// internal/domain/mint/mint.go
package mint

import (
	"context"
	"errors"
)

var (
	// ErrMissingParams means the caller (or the server configuration) did not
	// supply every identifier a mint needs.
	ErrMissingParams = errors.New("mint: missing required parameters")

	// ErrInvalidWallet means the destination wallet is not a valid base58
	// 32-byte public key.
	ErrInvalidWallet = errors.New("mint: invalid wallet address")

	// ErrInProgress means another request with the same idempotency key is
	// still in flight.
	ErrInProgress = errors.New("mint: identical mint already in progress")
)

// Request is one user mint intent. Ephemeral: lives for a single HTTP request.
type Request struct {
	WalletAddress         string
	MachineAddress        string
	CollectionMintAddress string
}

// Result is the confirmed outcome of a submitted mint transaction.
type Result struct {
	Signature   string `json:"signature"`
	MintAddress string `json:"mintAddress"`
}

// Minter submits a mint transaction against the candy machine and waits for
// the signature. Implementations own transaction building and signing.
type Minter interface {
	Mint(ctx context.Context, req Request) (*Result, error)
}
