// internal/infra/solana/minter.go
package solana

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/blocto/solana-go-sdk/client"
	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/program/compute_budget"
	"github.com/blocto/solana-go-sdk/program/metaplex/token_metadata"
	"github.com/blocto/solana-go-sdk/rpc"
	"github.com/blocto/solana-go-sdk/types"

	mintdom "github.com/rakess70/mintomatic/internal/domain/mint"
)

// mintV2 needs more compute than the default budget; the storefront requests
// the same limit the hosted mint flow uses.
const mintComputeUnitLimit = 800_000

const (
	confirmPollInterval = 2 * time.Second
	confirmTimeout      = 45 * time.Second
)

// Minter builds and submits candy-guard mintV2 transactions. The mint
// authority wallet pays fees and signs together with the fresh NFT mint
// keypair. One call, one transaction; nothing is retried here.
type Minter struct {
	RPC       *client.Client
	Authority types.Account
}

var _ mintdom.Minter = (*Minter)(nil)

func NewMinter(rpc *client.Client, authority *MintAuthority) *Minter {
	m := &Minter{RPC: rpc}
	if authority != nil {
		m.Authority = authority.Account
	}
	return m
}

// Mint submits one mint transaction for req.WalletAddress and waits until the
// cluster confirms it. Submission and confirmation errors are returned raw for
// the handler to wrap.
func (m *Minter) Mint(ctx context.Context, req mintdom.Request) (*mintdom.Result, error) {
	if m == nil || m.RPC == nil {
		return nil, fmt.Errorf("minter: not configured")
	}
	if len(m.Authority.PrivateKey) == 0 {
		return nil, fmt.Errorf("minter: mint authority key is not loaded")
	}
	if !ValidAddress(req.WalletAddress) {
		return nil, mintdom.ErrInvalidWallet
	}

	owner := parsePubkey(req.WalletAddress)
	machine := parsePubkey(req.MachineAddress)
	collectionMint := parsePubkey(req.CollectionMintAddress)
	feePayer := m.Authority

	// The candy guard account lives at the machine's mint authority; the
	// machine account also carries the collection update authority the
	// instruction needs.
	machineInfo, err := m.RPC.GetAccountInfo(ctx, machine.ToBase58())
	if err != nil {
		return nil, fmt.Errorf("minter: GetAccountInfo(machine): %w", err)
	}
	if len(machineInfo.Data) == 0 {
		return nil, fmt.Errorf("minter: candy machine account not found at %s", maskShort(req.MachineAddress))
	}
	machineAcc, err := decodeCandyMachineAccount(machineInfo.Data)
	if err != nil {
		return nil, fmt.Errorf("minter: %w", err)
	}
	candyGuard := common.PublicKeyFromBytes(machineAcc.MintAuthority[:])
	collectionUpdateAuthority := common.PublicKeyFromBytes(machineAcc.Authority[:])

	// Fresh mint keypair per mint action.
	nftMint := types.NewAccount()

	// Machine authority PDA from the fixed "candy_machine" seed.
	authorityPDA, _, err := common.FindProgramAddress(
		[][]byte{[]byte("candy_machine"), machine.Bytes()},
		candyMachineProgramID,
	)
	if err != nil {
		return nil, fmt.Errorf("minter: FindProgramAddress: %w", err)
	}

	nftMetadata, err := token_metadata.GetTokenMetaPubkey(nftMint.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("minter: GetTokenMetaPubkey(nft): %w", err)
	}
	nftMasterEdition, err := token_metadata.GetMasterEdition(nftMint.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("minter: GetMasterEdition(nft): %w", err)
	}
	collectionMetadata, err := token_metadata.GetTokenMetaPubkey(collectionMint)
	if err != nil {
		return nil, fmt.Errorf("minter: GetTokenMetaPubkey(collection): %w", err)
	}
	collectionMasterEdition, err := token_metadata.GetMasterEdition(collectionMint)
	if err != nil {
		return nil, fmt.Errorf("minter: GetMasterEdition(collection): %w", err)
	}

	token, _, err := common.FindAssociatedTokenAddress(owner, nftMint.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("minter: FindAssociatedTokenAddress: %w", err)
	}

	delegateRecord, err := findCollectionDelegateRecord(collectionMint, collectionUpdateAuthority, authorityPDA)
	if err != nil {
		return nil, fmt.Errorf("minter: derive collection delegate record: %w", err)
	}

	mintIx := buildMintV2Instruction(mintV2Accounts{
		CandyGuard:                candyGuard,
		CandyMachine:              machine,
		CandyMachineAuthorityPDA:  authorityPDA,
		Payer:                     feePayer.PublicKey,
		Minter:                    owner,
		NFTMint:                   nftMint.PublicKey,
		NFTMintAuthority:          feePayer.PublicKey,
		NFTMetadata:               nftMetadata,
		NFTMasterEdition:          nftMasterEdition,
		Token:                     token,
		CollectionDelegateRecord:  delegateRecord,
		CollectionMint:            collectionMint,
		CollectionMetadata:        collectionMetadata,
		CollectionMasterEdition:   collectionMasterEdition,
		CollectionUpdateAuthority: collectionUpdateAuthority,
	})

	recent, err := m.RPC.GetLatestBlockhash(ctx)
	if err != nil {
		return nil, fmt.Errorf("minter: GetLatestBlockhash: %w", err)
	}

	tx, err := types.NewTransaction(types.NewTransactionParam{
		Signers: []types.Account{feePayer, nftMint},
		Message: types.NewMessage(types.NewMessageParam{
			FeePayer:        feePayer.PublicKey,
			RecentBlockhash: recent.Blockhash,
			Instructions: []types.Instruction{
				compute_budget.SetComputeUnitLimit(compute_budget.SetComputeUnitLimitParam{
					Units: mintComputeUnitLimit,
				}),
				mintIx,
			},
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("minter: NewTransaction: %w", err)
	}

	sig, err := m.RPC.SendTransaction(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("minter: SendTransaction: %w", err)
	}

	// The result is only handed back once the cluster confirmed the
	// transaction; callers cache it for idempotent replay.
	confirmCtx, cancel := context.WithTimeout(ctx, confirmTimeout)
	defer cancel()
	if err := awaitConfirmation(confirmCtx, m.RPC, sig); err != nil {
		return nil, fmt.Errorf("minter: %w", err)
	}

	log.Printf(
		"[minter] confirmed mint tx=%s nftMint=%s wallet=%s machine=%s",
		maskShort(sig),
		maskShort(nftMint.PublicKey.ToBase58()),
		maskShort(req.WalletAddress),
		maskShort(req.MachineAddress),
	)

	return &mintdom.Result{
		Signature:   sig,
		MintAddress: nftMint.PublicKey.ToBase58(),
	}, nil
}

// signatureStatusReader is the slice of the RPC client confirmation polling
// needs.
type signatureStatusReader interface {
	GetSignatureStatus(ctx context.Context, signature string) (*rpc.SignatureStatus, error)
}

// awaitConfirmation polls the signature status until the cluster reports the
// transaction confirmed (or failed). Transient status-fetch errors are
// retried; ctx bounds the total wait.
func awaitConfirmation(ctx context.Context, statuses signatureStatusReader, sig string) error {
	ticker := time.NewTicker(confirmPollInterval)
	defer ticker.Stop()

	for {
		status, err := statuses.GetSignatureStatus(ctx, sig)
		if err == nil && status != nil {
			if status.Err != nil {
				return fmt.Errorf("transaction %s failed on chain: %v", maskShort(sig), status.Err)
			}
			if s := status.ConfirmationStatus; s != nil &&
				(*s == rpc.CommitmentConfirmed || *s == rpc.CommitmentFinalized) {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for confirmation of %s: %w", maskShort(sig), ctx.Err())
		case <-ticker.C:
		}
	}
}

// findCollectionDelegateRecord derives the metadata delegate record PDA the
// candy machine authority PDA holds over the collection.
func findCollectionDelegateRecord(collectionMint, updateAuthority, delegate common.PublicKey) (common.PublicKey, error) {
	pda, _, err := common.FindProgramAddress(
		[][]byte{
			[]byte("metadata"),
			common.MetaplexTokenMetaProgramID.Bytes(),
			collectionMint.Bytes(),
			[]byte("collection_delegate"),
			updateAuthority.Bytes(),
			delegate.Bytes(),
		},
		common.MetaplexTokenMetaProgramID,
	)
	if err != nil {
		return common.PublicKey{}, err
	}
	return pda, nil
}
