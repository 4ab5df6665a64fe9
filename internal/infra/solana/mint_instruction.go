// internal/infra/solana/mint_instruction.go
package solana

import (
	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/types"
)

// Anchor discriminator for the candy guard program's mint_v2 instruction.
var mintV2Discriminator = [8]byte{120, 121, 23, 146, 173, 110, 199, 205}

type mintV2Accounts struct {
	CandyGuard                common.PublicKey
	CandyMachine              common.PublicKey
	CandyMachineAuthorityPDA  common.PublicKey
	Payer                     common.PublicKey
	Minter                    common.PublicKey
	NFTMint                   common.PublicKey
	NFTMintAuthority          common.PublicKey
	NFTMetadata               common.PublicKey
	NFTMasterEdition          common.PublicKey
	Token                     common.PublicKey
	CollectionDelegateRecord  common.PublicKey
	CollectionMint            common.PublicKey
	CollectionMetadata        common.PublicKey
	CollectionMasterEdition   common.PublicKey
	CollectionUpdateAuthority common.PublicKey
}

// buildMintV2Instruction assembles the candy guard mint_v2 instruction by
// hand; the SDK has no candy machine program support. Account order follows
// the program IDL. Optional accounts the storefront never uses (token record
// for pNFTs) are passed as the candy guard program id, the convention for
// omitted optionals.
//
// Minter is listed non-signer: the storefront submits with the authority
// wallet only, the destination wallet never co-signs the server-side flow.
func buildMintV2Instruction(a mintV2Accounts) types.Instruction {
	// mint_v2 args: mint_args bytes (empty for the default guard set) and an
	// absent group label.
	data := make([]byte, 0, 13)
	data = append(data, mintV2Discriminator[:]...)
	data = append(data, 0, 0, 0, 0) // mint_args: empty vec<u8>
	data = append(data, 0)          // label: Option::None

	return types.Instruction{
		ProgramID: candyGuardProgramID,
		Accounts: []types.AccountMeta{
			{PubKey: a.CandyGuard, IsSigner: false, IsWritable: false},
			{PubKey: candyMachineProgramID, IsSigner: false, IsWritable: false},
			{PubKey: a.CandyMachine, IsSigner: false, IsWritable: true},
			{PubKey: a.CandyMachineAuthorityPDA, IsSigner: false, IsWritable: true},
			{PubKey: a.Payer, IsSigner: true, IsWritable: true},
			{PubKey: a.Minter, IsSigner: false, IsWritable: true},
			{PubKey: a.NFTMint, IsSigner: true, IsWritable: true},
			{PubKey: a.NFTMintAuthority, IsSigner: true, IsWritable: false},
			{PubKey: a.NFTMetadata, IsSigner: false, IsWritable: true},
			{PubKey: a.NFTMasterEdition, IsSigner: false, IsWritable: true},
			{PubKey: a.Token, IsSigner: false, IsWritable: true},
			{PubKey: candyGuardProgramID, IsSigner: false, IsWritable: false}, // token record: none
			{PubKey: a.CollectionDelegateRecord, IsSigner: false, IsWritable: false},
			{PubKey: a.CollectionMint, IsSigner: false, IsWritable: false},
			{PubKey: a.CollectionMetadata, IsSigner: false, IsWritable: true},
			{PubKey: a.CollectionMasterEdition, IsSigner: false, IsWritable: false},
			{PubKey: a.CollectionUpdateAuthority, IsSigner: false, IsWritable: false},
			{PubKey: common.MetaplexTokenMetaProgramID, IsSigner: false, IsWritable: false},
			{PubKey: common.TokenProgramID, IsSigner: false, IsWritable: false},
			{PubKey: common.SPLAssociatedTokenAccountProgramID, IsSigner: false, IsWritable: false},
			{PubKey: common.SystemProgramID, IsSigner: false, IsWritable: false},
			{PubKey: common.SysVarInstructionsPubkey, IsSigner: false, IsWritable: false},
			{PubKey: common.SysVarSlotHashesPubkey, IsSigner: false, IsWritable: false},
		},
		Data: data,
	}
}
