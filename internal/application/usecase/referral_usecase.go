// internal/application/usecase/referral_usecase.go
package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/rakess70/mintomatic/internal/domain/referral"
)

// WebhookPayload is the mint-confirmation callback the payment processor
// sends. Loosely structured by the sender; the handler rejects non-JSON
// bodies, everything beyond that is optional by design.
type WebhookPayload struct {
	MintAddress     string `json:"mintAddress"`
	PassThroughArgs struct {
		// Referer keeps the sender's spelling.
		Referer string `json:"referer"`
	} `json:"passThroughArgs"`
	TxID          string `json:"txId"`
	WalletAddress string `json:"walletAddress"`
}

// ReferralUsecase relays mint confirmations to the affiliate API.
// Best-effort: delivery failures are logged and swallowed, only missing
// server configuration is surfaced.
type ReferralUsecase struct {
	sink referral.Sink

	apiKeyConfigured bool
	productID        string
	amount           float64
}

func NewReferralUsecase(sink referral.Sink, apiKeyConfigured bool, productID string, amount float64) *ReferralUsecase {
	return &ReferralUsecase{
		sink:             sink,
		apiKeyConfigured: apiKeyConfigured,
		productID:        strings.TrimSpace(productID),
		amount:           amount,
	}
}

// HandleMintConfirmation builds a referral record from the payload and sends
// it once. No referrer or no mint address means there is nothing to credit;
// that is a normal ack, not an error.
func (u *ReferralUsecase) HandleMintConfirmation(ctx context.Context, p WebhookPayload) error {
	if u == nil || u.sink == nil || !u.apiKeyConfigured || u.productID == "" {
		return referral.ErrNotConfigured
	}

	referrer := strings.TrimSpace(p.PassThroughArgs.Referer)
	mintAddr := strings.TrimSpace(p.MintAddress)
	if referrer == "" || mintAddr == "" {
		log.Printf("[referral_usecase] skip: referrer=%q mintAddress present=%t", referrer, mintAddr != "")
		return nil
	}

	rec := referral.Record{
		ReferrerID:    referrer,
		NFTID:         mintAddr,
		TransactionID: strings.TrimSpace(p.TxID),
		WalletAddress: strings.TrimSpace(p.WalletAddress),
		Amount:        u.amount,
		ProductID:     u.productID,
	}

	// Event id correlates the delivery attempt in logs; lost referral credit
	// is an accepted risk, so this is the only trace a failure leaves.
	evt := uuid.NewString()
	if err := u.sink.Log(ctx, rec); err != nil {
		log.Printf("[referral_usecase] delivery failed evt=%s referrer=%s nft=%s err=%v", evt, referrer, mintAddr, err)
		return nil
	}
	log.Printf("[referral_usecase] delivered evt=%s referrer=%s nft=%s", evt, referrer, mintAddr)
	return nil
}
