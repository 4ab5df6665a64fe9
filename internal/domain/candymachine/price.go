// internal/domain/candymachine/price.go
package candymachine

const (
	CurrencySOL = "SOL"
	// CurrencyUSDC labels token payments. The storefront only sells against
	// the USDC stablecoin (6 decimals), so the mint on the guard is not
	// resolved to a symbol dynamically.
	CurrencyUSDC = "USDC"

	lamportsPerSOL  = 1_000_000_000
	usdcMinorUnits  = 1_000_000
	placeholderCost = 20
)

// PriceQuote is the human-readable mint price derived from the active guard.
type PriceQuote struct {
	Amount   float64
	Currency string
}

// ResolvePrice picks the active payment guard and converts it to a quote.
// Precedence: tokenPayment before solPayment. With no payment guard present
// the placeholder quote is returned so the UI always has something to show.
func ResolvePrice(g *GuardSet) PriceQuote {
	if g != nil {
		if g.TokenPayment != nil {
			return PriceQuote{
				Amount:   float64(g.TokenPayment.Amount) / usdcMinorUnits,
				Currency: CurrencyUSDC,
			}
		}
		if g.SolPayment != nil {
			return PriceQuote{
				Amount:   float64(g.SolPayment.Lamports) / lamportsPerSOL,
				Currency: CurrencySOL,
			}
		}
	}
	return PriceQuote{Amount: placeholderCost, Currency: CurrencySOL}
}
