// internal/infra/solana/helpers.go
package solana

import (
	"strings"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/mr-tron/base58"
)

func parsePubkey(s string) common.PublicKey {
	return common.PublicKeyFromString(strings.TrimSpace(s))
}

// ValidAddress reports whether s is a base58-encoded 32-byte public key.
// common.PublicKeyFromString silently truncates bad input, so boundary code
// validates with this first.
func ValidAddress(s string) bool {
	b, err := base58.Decode(strings.TrimSpace(s))
	return err == nil && len(b) == 32
}

func maskShort(s string) string {
	t := strings.TrimSpace(s)
	if t == "" {
		return ""
	}
	if len(t) <= 10 {
		return t
	}
	return t[:4] + "***" + t[len(t)-4:]
}
