// internal/infra/solana/candy_guard_test.go
package solana

import (
	"encoding/binary"
	"errors"
	"testing"
)

// systemProgramBase58 is the base58 form of an all-zero pubkey, convenient
// for asserting decoded addresses from synthetic account data.
const systemProgramBase58 = "11111111111111111111111111111111"

func guardAccountData(features uint64, guardBytes []byte) []byte {
	data := make([]byte, candyGuardHeaderLen, candyGuardHeaderLen+8+len(guardBytes))
	data = binary.LittleEndian.AppendUint64(data, features)
	return append(data, guardBytes...)
}

func TestParseGuardSetSolPayment(t *testing.T) {
	body := make([]byte, solPaymentLen)
	binary.LittleEndian.PutUint64(body, 1_000_000_000)

	set, err := parseGuardSet(guardAccountData(1<<guardBitSolPayment, body))
	if err != nil {
		t.Fatalf("parseGuardSet: %v", err)
	}
	if set.SolPayment == nil {
		t.Fatal("solPayment guard not decoded")
	}
	if set.SolPayment.Lamports != 1_000_000_000 {
		t.Errorf("lamports = %d, want 1000000000", set.SolPayment.Lamports)
	}
	if set.SolPayment.Destination != systemProgramBase58 {
		t.Errorf("destination = %q, want %q", set.SolPayment.Destination, systemProgramBase58)
	}
	if set.TokenPayment != nil {
		t.Error("tokenPayment decoded from sol-only guard set")
	}
}

func TestParseGuardSetTokenPayment(t *testing.T) {
	body := make([]byte, tokenPaymentLen)
	binary.LittleEndian.PutUint64(body, 20_000_000)

	set, err := parseGuardSet(guardAccountData(1<<guardBitTokenPayment, body))
	if err != nil {
		t.Fatalf("parseGuardSet: %v", err)
	}
	if set.TokenPayment == nil {
		t.Fatal("tokenPayment guard not decoded")
	}
	if set.TokenPayment.Amount != 20_000_000 {
		t.Errorf("amount = %d, want 20000000", set.TokenPayment.Amount)
	}
}

func TestParseGuardSetBotTaxSkipped(t *testing.T) {
	// botTax (9 bytes) precedes solPayment in the serialized guard set; the
	// parser has to hop over it to land on the right offset.
	body := make([]byte, botTaxLen+solPaymentLen)
	binary.LittleEndian.PutUint64(body, 10_000_000) // bot tax lamports
	binary.LittleEndian.PutUint64(body[botTaxLen:], 2_500_000_000)

	features := uint64(1<<guardBitBotTax | 1<<guardBitSolPayment)
	set, err := parseGuardSet(guardAccountData(features, body))
	if err != nil {
		t.Fatalf("parseGuardSet: %v", err)
	}
	if set.SolPayment == nil {
		t.Fatal("solPayment guard not decoded")
	}
	if set.SolPayment.Lamports != 2_500_000_000 {
		t.Errorf("lamports = %d, want 2500000000 (bot tax value leaked in?)", set.SolPayment.Lamports)
	}
}

func TestParseGuardSetBothPayments(t *testing.T) {
	body := make([]byte, solPaymentLen+tokenPaymentLen)
	binary.LittleEndian.PutUint64(body, 1_000_000_000)
	binary.LittleEndian.PutUint64(body[solPaymentLen:], 5_000_000)

	features := uint64(1<<guardBitSolPayment | 1<<guardBitTokenPayment)
	set, err := parseGuardSet(guardAccountData(features, body))
	if err != nil {
		t.Fatalf("parseGuardSet: %v", err)
	}
	if set.SolPayment == nil || set.TokenPayment == nil {
		t.Fatalf("expected both guards, got sol=%v token=%v", set.SolPayment, set.TokenPayment)
	}
	if set.TokenPayment.Amount != 5_000_000 {
		t.Errorf("token amount = %d, want 5000000", set.TokenPayment.Amount)
	}
}

func TestParseGuardSetLaterGuardsIgnored(t *testing.T) {
	// startDate (bit 3) enabled but absent from our model; parsing must not
	// fail because of trailing guards it does not read.
	body := make([]byte, tokenPaymentLen+8)
	binary.LittleEndian.PutUint64(body, 7_000_000)

	features := uint64(1<<guardBitTokenPayment | 1<<3)
	set, err := parseGuardSet(guardAccountData(features, body))
	if err != nil {
		t.Fatalf("parseGuardSet: %v", err)
	}
	if set.TokenPayment == nil || set.TokenPayment.Amount != 7_000_000 {
		t.Errorf("tokenPayment = %+v, want amount 7000000", set.TokenPayment)
	}
}

func TestParseGuardSetTruncated(t *testing.T) {
	_, err := parseGuardSet(make([]byte, candyGuardHeaderLen)) // no feature word
	if !errors.Is(err, errGuardTruncated) {
		t.Errorf("err = %v, want errGuardTruncated", err)
	}

	// Feature word claims a solPayment but the bytes are missing.
	_, err = parseGuardSet(guardAccountData(1<<guardBitSolPayment, nil))
	if !errors.Is(err, errGuardTruncated) {
		t.Errorf("err = %v, want errGuardTruncated", err)
	}
}
