// internal/domain/candymachine/machine.go
package candymachine

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no account exists at the machine address.
	ErrNotFound = errors.New("candymachine: machine account not found")
)

// MachineConfig is the decoded on-chain state of a candy machine that the
// storefront cares about. Invariant: ItemsMinted <= ItemsAvailable (enforced
// on-chain; ItemsRemaining clamps anyway so a stale read never goes negative).
type MachineConfig struct {
	Address        string
	ItemsAvailable uint64
	ItemsMinted    uint64

	// CollectionMint is the collection NFT mint, empty when the machine has
	// no collection configured.
	CollectionMint string

	// MintAuthority doubles as the candy guard account address when a guard
	// is attached to the machine.
	MintAuthority string
}

// ItemsRemaining returns ItemsAvailable - ItemsMinted, clamped at zero.
func (c MachineConfig) ItemsRemaining() uint64 {
	if c.ItemsMinted >= c.ItemsAvailable {
		return 0
	}
	return c.ItemsAvailable - c.ItemsMinted
}

// SolPaymentGuard gates minting behind a lamport payment.
type SolPaymentGuard struct {
	Lamports    uint64
	Destination string
}

// TokenPaymentGuard gates minting behind an SPL token payment.
type TokenPaymentGuard struct {
	Amount         uint64
	Mint           string
	DestinationATA string
}

// GuardSet holds the payment guards decoded from the candy guard account.
// Guards the storefront does not price (bot tax, dates, allow lists, ...) are
// not represented here.
type GuardSet struct {
	SolPayment   *SolPaymentGuard
	TokenPayment *TokenPaymentGuard
}

// CollectionDisplay is the off-chain display document for the collection.
// Best-effort only: both fields may be empty and the storefront still renders.
type CollectionDisplay struct {
	Name     string `json:"name"`
	ImageURL string `json:"image"`
}

// MachineSummary is the single payload the storefront UI consumes.
// Field names mirror the frontend contract.
type MachineSummary struct {
	CollectionName  string  `json:"collectionName"`
	CollectionImage string  `json:"collectionImage,omitempty"`
	ItemsAvailable  uint64  `json:"itemsAvailable"`
	ItemsMinted     uint64  `json:"itemsMinted"`
	ItemsRemaining  uint64  `json:"itemsRemaining"`
	Price           float64 `json:"price"`
	Currency        string  `json:"currency"`
}

// MachineReader reads candy machine state from the chain.
type MachineReader interface {
	ReadMachine(ctx context.Context, address string) (*MachineConfig, error)
	ReadGuards(ctx context.Context, guardAddress string) (*GuardSet, error)

	// ReadMetadataURI resolves the off-chain metadata URI of a token mint
	// via its Metaplex metadata account.
	ReadMetadataURI(ctx context.Context, mintAddress string) (string, error)
}

// DisplayFetcher fetches the off-chain display JSON behind a metadata URI.
type DisplayFetcher interface {
	FetchDisplay(ctx context.Context, uri string) (CollectionDisplay, error)
}
