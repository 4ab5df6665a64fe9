// internal/domain/candymachine/machine_test.go
package candymachine

import "testing"

func TestItemsRemaining(t *testing.T) {
	cases := []struct {
		name      string
		available uint64
		minted    uint64
		want      uint64
	}{
		{"fresh machine", 1000, 0, 1000},
		{"partially minted", 1000, 250, 750},
		{"sold out", 1000, 1000, 0},
		{"stale read past available", 1000, 1001, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := MachineConfig{ItemsAvailable: tc.available, ItemsMinted: tc.minted}
			if got := cfg.ItemsRemaining(); got != tc.want {
				t.Errorf("ItemsRemaining() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestResolvePriceTokenPayment(t *testing.T) {
	q := ResolvePrice(&GuardSet{
		TokenPayment: &TokenPaymentGuard{Amount: 20_000_000},
	})
	if q.Amount != 20.0 {
		t.Errorf("amount = %v, want 20.0", q.Amount)
	}
	if q.Currency != CurrencyUSDC {
		t.Errorf("currency = %q, want %q", q.Currency, CurrencyUSDC)
	}
}

func TestResolvePriceSolPayment(t *testing.T) {
	q := ResolvePrice(&GuardSet{
		SolPayment: &SolPaymentGuard{Lamports: 1_000_000_000},
	})
	if q.Amount != 1.0 {
		t.Errorf("amount = %v, want 1.0", q.Amount)
	}
	if q.Currency != CurrencySOL {
		t.Errorf("currency = %q, want %q", q.Currency, CurrencySOL)
	}
}

func TestResolvePriceTokenBeforeSol(t *testing.T) {
	// Both guards present: tokenPayment wins by precedence.
	q := ResolvePrice(&GuardSet{
		SolPayment:   &SolPaymentGuard{Lamports: 5_000_000_000},
		TokenPayment: &TokenPaymentGuard{Amount: 12_500_000},
	})
	if q.Currency != CurrencyUSDC {
		t.Fatalf("currency = %q, want %q", q.Currency, CurrencyUSDC)
	}
	if q.Amount != 12.5 {
		t.Errorf("amount = %v, want 12.5", q.Amount)
	}
}

func TestResolvePricePlaceholder(t *testing.T) {
	for _, g := range []*GuardSet{nil, {}} {
		q := ResolvePrice(g)
		if q.Amount != 20 || q.Currency != CurrencySOL {
			t.Errorf("ResolvePrice(%v) = %+v, want placeholder 20 SOL", g, q)
		}
	}
}
