// internal/infra/solana/candy_guard.go
package solana

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/rakess70/mintomatic/internal/domain/candymachine"
)

// The candy guard account is a 73-byte header (discriminator, base, bump,
// authority) followed by the default guard set: a u64 feature bitmask, then
// the enabled guards serialized back to back in bit order. Only the guards
// up to tokenPayment have to be walked; everything after it is irrelevant to
// pricing and is left unread.
const candyGuardHeaderLen = 8 + 32 + 1 + 32

// Feature bit positions, in serialization order.
const (
	guardBitBotTax       = 0
	guardBitSolPayment   = 1
	guardBitTokenPayment = 2
)

// Serialized guard sizes for the guards that must be skipped or read.
const (
	botTaxLen       = 8 + 1       // lamports + lastInstruction
	solPaymentLen   = 8 + 32      // lamports + destination
	tokenPaymentLen = 8 + 32 + 32 // amount + mint + destination ATA
)

var errGuardTruncated = errors.New("candy guard: account data truncated")

// parseGuardSet decodes the payment guards from raw candy guard account data.
func parseGuardSet(data []byte) (*candymachine.GuardSet, error) {
	if len(data) < candyGuardHeaderLen+8 {
		return nil, errGuardTruncated
	}

	cur := candyGuardHeaderLen
	features := binary.LittleEndian.Uint64(data[cur:])
	cur += 8

	set := &candymachine.GuardSet{}

	if features&(1<<guardBitBotTax) != 0 {
		cur += botTaxLen
	}

	if features&(1<<guardBitSolPayment) != 0 {
		if len(data) < cur+solPaymentLen {
			return nil, fmt.Errorf("%w: solPayment", errGuardTruncated)
		}
		lamports := binary.LittleEndian.Uint64(data[cur:])
		dest := pubkeyAt(data, cur+8)
		set.SolPayment = &candymachine.SolPaymentGuard{
			Lamports:    lamports,
			Destination: dest,
		}
		cur += solPaymentLen
	}

	if features&(1<<guardBitTokenPayment) != 0 {
		if len(data) < cur+tokenPaymentLen {
			return nil, fmt.Errorf("%w: tokenPayment", errGuardTruncated)
		}
		amount := binary.LittleEndian.Uint64(data[cur:])
		mint := pubkeyAt(data, cur+8)
		destATA := pubkeyAt(data, cur+40)
		set.TokenPayment = &candymachine.TokenPaymentGuard{
			Amount:         amount,
			Mint:           mint,
			DestinationATA: destATA,
		}
	}

	return set, nil
}

func pubkeyAt(data []byte, off int) string {
	var b [32]uint8
	copy(b[:], data[off:off+32])
	return pubkeyToBase58(b)
}
