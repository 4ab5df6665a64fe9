// internal/application/usecase/mint_usecase_test.go
package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rakess70/mintomatic/internal/domain/mint"
	"github.com/rakess70/mintomatic/internal/infra/idempotency"
)

// validWallet is the base58 form of an all-zero 32-byte pubkey.
const validWallet = "11111111111111111111111111111111"

type fakeMinter struct {
	result *mint.Result
	err    error
	calls  int
}

func (f *fakeMinter) Mint(ctx context.Context, req mint.Request) (*mint.Result, error) {
	f.calls++
	return f.result, f.err
}

func newMintUC(m mint.Minter) *MintUsecase {
	return NewMintUsecase(m, idempotency.NewMemoryStore(time.Minute), "Machine111", "CollMint111")
}

func TestMintMissingWallet(t *testing.T) {
	m := &fakeMinter{}
	u := newMintUC(m)

	if _, err := u.Mint(context.Background(), "  ", ""); !errors.Is(err, mint.ErrMissingParams) {
		t.Errorf("err = %v, want ErrMissingParams", err)
	}
	if m.calls != 0 {
		t.Errorf("minter called %d times on missing wallet", m.calls)
	}
}

func TestMintMissingServerConfig(t *testing.T) {
	u := NewMintUsecase(&fakeMinter{}, nil, "", "")
	if _, err := u.Mint(context.Background(), validWallet, ""); !errors.Is(err, mint.ErrMissingParams) {
		t.Errorf("err = %v, want ErrMissingParams", err)
	}
}

func TestMintInvalidWallet(t *testing.T) {
	m := &fakeMinter{}
	u := newMintUC(m)

	for _, w := range []string{"not-base58-0OIl", "abc"} {
		if _, err := u.Mint(context.Background(), w, ""); !errors.Is(err, mint.ErrInvalidWallet) {
			t.Errorf("Mint(%q) err = %v, want ErrInvalidWallet", w, err)
		}
	}
	if m.calls != 0 {
		t.Errorf("minter called %d times on invalid wallet", m.calls)
	}
}

func TestMintSubmitsOnceAndReplays(t *testing.T) {
	m := &fakeMinter{result: &mint.Result{Signature: "sig123", MintAddress: "mintabc"}}
	u := newMintUC(m)

	first, err := u.Mint(context.Background(), validWallet, "key-1")
	if err != nil {
		t.Fatalf("first Mint: %v", err)
	}

	second, err := u.Mint(context.Background(), validWallet, "key-1")
	if err != nil {
		t.Fatalf("replayed Mint: %v", err)
	}
	if m.calls != 1 {
		t.Errorf("minter called %d times, want 1", m.calls)
	}
	if second.Signature != first.Signature {
		t.Errorf("replayed signature = %q, want %q", second.Signature, first.Signature)
	}
}

func TestMintReplayShortKey(t *testing.T) {
	// Client-supplied keys can be arbitrarily short; replay must not assume a
	// minimum length.
	m := &fakeMinter{result: &mint.Result{Signature: "sig123", MintAddress: "mintabc"}}
	u := newMintUC(m)

	if _, err := u.Mint(context.Background(), validWallet, "abc"); err != nil {
		t.Fatalf("first Mint: %v", err)
	}
	res, err := u.Mint(context.Background(), validWallet, "abc")
	if err != nil {
		t.Fatalf("replayed Mint: %v", err)
	}
	if res.Signature != "sig123" {
		t.Errorf("replayed signature = %q, want sig123", res.Signature)
	}
	if m.calls != 1 {
		t.Errorf("minter called %d times, want 1", m.calls)
	}
}

func TestMintFallbackKeyDedups(t *testing.T) {
	m := &fakeMinter{result: &mint.Result{Signature: "sig123", MintAddress: "mintabc"}}
	u := newMintUC(m)

	// No client key on either request: the wallet+machine derived key has to
	// collapse them into one submission.
	if _, err := u.Mint(context.Background(), validWallet, ""); err != nil {
		t.Fatalf("first Mint: %v", err)
	}
	if _, err := u.Mint(context.Background(), validWallet, ""); err != nil {
		t.Fatalf("second Mint: %v", err)
	}
	if m.calls != 1 {
		t.Errorf("minter called %d times, want 1", m.calls)
	}
}

func TestMintInProgress(t *testing.T) {
	keys := idempotency.NewMemoryStore(time.Minute)
	keys.Begin("key-1") // simulate an in-flight request holding the key

	m := &fakeMinter{result: &mint.Result{Signature: "sig123"}}
	u := NewMintUsecase(m, keys, "Machine111", "CollMint111")

	if _, err := u.Mint(context.Background(), validWallet, "key-1"); !errors.Is(err, mint.ErrInProgress) {
		t.Errorf("err = %v, want ErrInProgress", err)
	}
	if m.calls != 0 {
		t.Errorf("minter called %d times while key in flight", m.calls)
	}
}

func TestMintFailureReleasesKey(t *testing.T) {
	m := &fakeMinter{err: errors.New("rpc: blockhash not found")}
	u := newMintUC(m)

	if _, err := u.Mint(context.Background(), validWallet, "key-1"); err == nil {
		t.Fatal("expected minter error to propagate")
	}

	// Key must be free again so the user can retry after a transient failure.
	m.err = nil
	m.result = &mint.Result{Signature: "sig456"}
	res, err := u.Mint(context.Background(), validWallet, "key-1")
	if err != nil {
		t.Fatalf("retry after failure: %v", err)
	}
	if res.Signature != "sig456" {
		t.Errorf("signature = %q, want sig456", res.Signature)
	}
	if m.calls != 2 {
		t.Errorf("minter called %d times, want 2", m.calls)
	}
}
