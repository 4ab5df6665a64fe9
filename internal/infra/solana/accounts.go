// internal/infra/solana/accounts.go
package solana

import (
	"fmt"
	"strings"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/near/borsh-go"
)

// On-chain account layouts, decoded with borsh. Only the leading fields the
// storefront needs are modeled; trailing bytes (config lines, edition data)
// are left unread.

type candyMachineAccount struct {
	Discriminator  [8]uint8
	Features       uint64
	Authority      [32]uint8
	MintAuthority  [32]uint8
	CollectionMint [32]uint8
	ItemsRedeemed  uint64
	Data           candyMachineData
}

type candyMachineData struct {
	ItemsAvailable       uint64
	Symbol               string
	SellerFeeBasisPoints uint16
	MaxSupply            uint64
	IsMutable            bool
	Creators             []machineCreator
	ConfigLineSettings   *configLineSettings
	HiddenSettings       *hiddenSettings
}

type machineCreator struct {
	Address         [32]uint8
	Verified        bool
	PercentageShare uint8
}

type configLineSettings struct {
	PrefixName   string
	NameLength   uint32
	PrefixURI    string
	URILength    uint32
	IsSequential bool
}

type hiddenSettings struct {
	Name string
	URI  string
	Hash [32]uint8
}

// metadataAccount is the leading slice of a Metaplex token-metadata account,
// enough to reach the off-chain URI.
type metadataAccount struct {
	Key             uint8
	UpdateAuthority [32]uint8
	Mint            [32]uint8
	Name            string
	Symbol          string
	URI             string
}

func decodeCandyMachineAccount(data []byte) (*candyMachineAccount, error) {
	var acc candyMachineAccount
	if err := borsh.Deserialize(&acc, data); err != nil {
		return nil, fmt.Errorf("decode candy machine account: %w", err)
	}
	return &acc, nil
}

func decodeMetadataAccount(data []byte) (*metadataAccount, error) {
	var acc metadataAccount
	if err := borsh.Deserialize(&acc, data); err != nil {
		return nil, fmt.Errorf("decode metadata account: %w", err)
	}
	return &acc, nil
}

// trimPadded strips the zero padding token-metadata stores inside its
// fixed-capacity strings.
func trimPadded(s string) string {
	return strings.TrimRight(s, "\x00")
}

func pubkeyToBase58(b [32]uint8) string {
	return common.PublicKeyFromBytes(b[:]).ToBase58()
}

func isZeroPubkey(b [32]uint8) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
