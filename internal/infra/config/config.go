// internal/infra/config/config.go
package config

import (
	"os"
	"strconv"
)

// Config はアプリケーション全体の環境変数設定を保持します。
// Required keys are validated where they are used (mint / webhook), not at
// startup, so the server always boots far enough to serve /healthz.
type Config struct {
	Port          string
	AllowedOrigin string

	// Solana
	SolanaRPCURL     string
	CandyMachineID   string
	CollectionMintID string

	// Mint authority keypair: inline JSON array, or a Secret Manager
	// version path ("projects/<id>/secrets/<id>/versions/latest").
	MintAuthorityKey       string
	MintAuthorityKeySecret string

	// ReferralRadius affiliate API
	ReferralRadiusAPIKey    string
	ReferralRadiusProductID string
	ReferralAmount          float64
	DefaultReferralCode     string

	// Exposed to the browser via /api/config
	WalletConnectProjectID string
}

// Load は環境変数を読み込み Config を返します。
func Load() *Config {
	return &Config{
		Port:          getenvDefault("PORT", "8080"),
		AllowedOrigin: getenvDefault("ALLOWED_ORIGIN", "*"),

		SolanaRPCURL:     getenvDefault("SOLANA_RPC_URL", "https://api.devnet.solana.com"),
		CandyMachineID:   os.Getenv("CANDY_MACHINE_ID"),
		CollectionMintID: os.Getenv("COLLECTION_MINT_ID"),

		MintAuthorityKey:       os.Getenv("MINT_AUTHORITY_KEY"),
		MintAuthorityKeySecret: os.Getenv("MINT_AUTHORITY_KEY_SECRET"),

		ReferralRadiusAPIKey:    os.Getenv("REFERRAL_RADIUS_API_KEY"),
		ReferralRadiusProductID: os.Getenv("REFERRAL_RADIUS_PRODUCT_ID"),
		ReferralAmount:          getenvFloat("REFERRAL_AMOUNT", 1),
		DefaultReferralCode:     os.Getenv("DEFAULT_REFERRAL_CODE"),

		WalletConnectProjectID: os.Getenv("WALLETCONNECT_PROJECT_ID"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
