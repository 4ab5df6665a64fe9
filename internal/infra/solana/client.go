// internal/infra/solana/client.go
package solana

import (
	"os"
	"strings"

	"github.com/blocto/solana-go-sdk/client"
	"github.com/blocto/solana-go-sdk/common"
)

const defaultDevnetRPC = "https://api.devnet.solana.com"

// Program ids the storefront talks to. The candy machine / candy guard
// programs are not covered by the SDK, so their instructions and accounts are
// handled by hand in this package.
var (
	candyMachineProgramID = common.PublicKeyFromString("CndyV3LdqHUfDLmE5naZjVN8rBZz4tqhdefbAnjHG3JR")
	candyGuardProgramID   = common.PublicKeyFromString("Guard1JwRhJkVH6XZhzoYxeBVQe872VH6QggF4BWmS9g")
)

// NewClient builds the process-wide RPC client. The caller owns it and
// injects it into readers and the minter; nothing in this package keeps
// package-level connection state.
// RPC URL resolves from SOLANA_RPC_URL if url is empty.
func NewClient(rpcURL string) *client.Client {
	u := strings.TrimSpace(rpcURL)
	if u == "" {
		u = strings.TrimSpace(os.Getenv("SOLANA_RPC_URL"))
	}
	if u == "" {
		u = defaultDevnetRPC
	}
	return client.NewClient(u)
}
