// internal/domain/referral/referral.go
package referral

import (
	"context"
	"errors"
)

// ErrNotConfigured means the affiliate API credentials are absent. This is
// the only webhook failure surfaced to the caller.
var ErrNotConfigured = errors.New("referral: affiliate API is not configured")

// Record is one referral credit, built from a mint-confirmation webhook and
// sent once. Fire-and-forget: no retry, no persistence.
type Record struct {
	ReferrerID    string  `json:"referrerId"`
	NFTID         string  `json:"nftId"`
	TransactionID string  `json:"transactionId,omitempty"`
	WalletAddress string  `json:"walletAddress,omitempty"`
	Amount        float64 `json:"amount"`
	ProductID     string  `json:"productId"`
}

// Sink delivers a referral record to the affiliate tracking API.
type Sink interface {
	Log(ctx context.Context, rec Record) error
}
