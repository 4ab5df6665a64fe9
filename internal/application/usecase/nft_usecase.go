// internal/application/usecase/nft_usecase.go
package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// Minimal ports for the passthrough queries; the solana reader and the
// metadata client satisfy them.
type MetadataURIReader interface {
	ReadMetadataURI(ctx context.Context, mintAddress string) (string, error)
}

type DocumentFetcher interface {
	FetchDocument(ctx context.Context, uri string) (map[string]any, error)
}

type TransactionCostReader interface {
	TransactionCost(ctx context.Context, signature string) (float64, error)
}

// NFTUsecase serves the storefront's auxiliary queries: NFT metadata by mint
// address, and the fee a confirmed transaction paid.
type NFTUsecase struct {
	meta MetadataURIReader
	docs DocumentFetcher
	cost TransactionCostReader
}

func NewNFTUsecase(meta MetadataURIReader, docs DocumentFetcher, cost TransactionCostReader) *NFTUsecase {
	return &NFTUsecase{meta: meta, docs: docs, cost: cost}
}

// Metadata resolves mint -> on-chain URI -> off-chain JSON document.
func (u *NFTUsecase) Metadata(ctx context.Context, mintAddress string) (map[string]any, error) {
	if u == nil || u.meta == nil || u.docs == nil {
		return nil, fmt.Errorf("nft usecase is not configured")
	}
	mintAddr := strings.TrimSpace(mintAddress)
	if mintAddr == "" {
		return nil, fmt.Errorf("mint address is empty")
	}

	uri, err := u.meta.ReadMetadataURI(ctx, mintAddr)
	if err != nil {
		return nil, err
	}
	if uri == "" {
		return nil, fmt.Errorf("metadata uri is missing for mint %s", mintAddr)
	}
	return u.docs.FetchDocument(ctx, uri)
}

// TransactionCost returns the fee in SOL, 0 when the lookup fails. The UI
// treats the cost as decoration, so this never errors out.
func (u *NFTUsecase) TransactionCost(ctx context.Context, signature string) float64 {
	if u == nil || u.cost == nil {
		return 0
	}
	cost, err := u.cost.TransactionCost(ctx, signature)
	if err != nil {
		log.Printf("[nft_usecase] transaction cost lookup failed sig=%s err=%v", strings.TrimSpace(signature), err)
		return 0
	}
	return cost
}
