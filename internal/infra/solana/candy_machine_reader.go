// internal/infra/solana/candy_machine_reader.go
package solana

import (
	"context"
	"fmt"
	"strings"

	"github.com/blocto/solana-go-sdk/client"
	"github.com/blocto/solana-go-sdk/program/metaplex/token_metadata"

	"github.com/rakess70/mintomatic/internal/domain/candymachine"
)

// CandyMachineReader reads candy machine, candy guard and token-metadata
// accounts over JSON-RPC. Read-only; it never mutates ledger state.
type CandyMachineReader struct {
	RPC *client.Client
}

var _ candymachine.MachineReader = (*CandyMachineReader)(nil)

func NewCandyMachineReader(rpc *client.Client) *CandyMachineReader {
	return &CandyMachineReader{RPC: rpc}
}

// ReadMachine fetches and decodes the candy machine core account.
// Returns candymachine.ErrNotFound when no account exists at the address.
func (r *CandyMachineReader) ReadMachine(ctx context.Context, address string) (*candymachine.MachineConfig, error) {
	if r == nil || r.RPC == nil {
		return nil, fmt.Errorf("candy machine reader: not configured")
	}
	addr := strings.TrimSpace(address)
	if addr == "" {
		return nil, candymachine.ErrNotFound
	}

	info, err := r.RPC.GetAccountInfo(ctx, addr)
	if err != nil {
		if isNotFoundRPC(err) {
			return nil, candymachine.ErrNotFound
		}
		return nil, fmt.Errorf("candy machine reader: GetAccountInfo: %w", err)
	}
	if len(info.Data) == 0 {
		return nil, candymachine.ErrNotFound
	}

	acc, err := decodeCandyMachineAccount(info.Data)
	if err != nil {
		return nil, fmt.Errorf("candy machine reader: %w", err)
	}

	cfg := &candymachine.MachineConfig{
		Address:        addr,
		ItemsAvailable: acc.Data.ItemsAvailable,
		ItemsMinted:    acc.ItemsRedeemed,
		MintAuthority:  pubkeyToBase58(acc.MintAuthority),
	}
	if !isZeroPubkey(acc.CollectionMint) {
		cfg.CollectionMint = pubkeyToBase58(acc.CollectionMint)
	}
	return cfg, nil
}

// ReadGuards fetches the candy guard account sitting at the machine's mint
// authority. A missing account means the machine runs without a guard; that
// is reported as (nil, nil), not an error.
func (r *CandyMachineReader) ReadGuards(ctx context.Context, guardAddress string) (*candymachine.GuardSet, error) {
	if r == nil || r.RPC == nil {
		return nil, fmt.Errorf("candy machine reader: not configured")
	}
	addr := strings.TrimSpace(guardAddress)
	if addr == "" {
		return nil, nil
	}

	info, err := r.RPC.GetAccountInfo(ctx, addr)
	if err != nil {
		if isNotFoundRPC(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("candy machine reader: GetAccountInfo(guard): %w", err)
	}
	if len(info.Data) == 0 {
		return nil, nil
	}

	set, err := parseGuardSet(info.Data)
	if err != nil {
		return nil, fmt.Errorf("candy machine reader: %w", err)
	}
	return set, nil
}

// ReadMetadataURI resolves the off-chain metadata URI of a token mint via its
// Metaplex metadata PDA.
func (r *CandyMachineReader) ReadMetadataURI(ctx context.Context, mintAddress string) (string, error) {
	if r == nil || r.RPC == nil {
		return "", fmt.Errorf("candy machine reader: not configured")
	}
	mint := strings.TrimSpace(mintAddress)
	if mint == "" {
		return "", fmt.Errorf("candy machine reader: mint address is empty")
	}

	metaPubkey, err := token_metadata.GetTokenMetaPubkey(parsePubkey(mint))
	if err != nil {
		return "", fmt.Errorf("candy machine reader: GetTokenMetaPubkey: %w", err)
	}

	info, err := r.RPC.GetAccountInfo(ctx, metaPubkey.ToBase58())
	if err != nil {
		return "", fmt.Errorf("candy machine reader: GetAccountInfo(metadata): %w", err)
	}
	if len(info.Data) == 0 {
		return "", fmt.Errorf("candy machine reader: metadata account not found for mint %s", maskShort(mint))
	}

	meta, err := decodeMetadataAccount(info.Data)
	if err != nil {
		return "", fmt.Errorf("candy machine reader: %w", err)
	}
	return trimPadded(meta.URI), nil
}

// TransactionCost returns the fee the given transaction paid, in SOL.
func (r *CandyMachineReader) TransactionCost(ctx context.Context, signature string) (float64, error) {
	if r == nil || r.RPC == nil {
		return 0, fmt.Errorf("candy machine reader: not configured")
	}
	sig := strings.TrimSpace(signature)
	if sig == "" {
		return 0, fmt.Errorf("candy machine reader: signature is empty")
	}

	tx, err := r.RPC.GetTransaction(ctx, sig)
	if err != nil {
		return 0, fmt.Errorf("candy machine reader: GetTransaction: %w", err)
	}
	if tx == nil || tx.Meta == nil {
		return 0, fmt.Errorf("candy machine reader: transaction not found")
	}
	return float64(tx.Meta.Fee) / 1e9, nil
}

func isNotFoundRPC(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "not found") ||
		strings.Contains(msg, "could not find account") ||
		strings.Contains(msg, "account does not exist")
}
