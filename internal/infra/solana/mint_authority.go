// internal/infra/solana/mint_authority.go
package solana

import (
	"context"
	"crypto/ed25519"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	secretspb "cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/blocto/solana-go-sdk/types"
)

// MintAuthority は、ストアが唯一保持するミント権限 (兼 fee payer) ウォレットです。
type MintAuthority struct {
	Account types.Account
}

// LoadMintAuthority restores the mint authority keypair. Resolution order:
//
//  1. keyJSON — an inline solana-keygen keypair (JSON array) from the
//     environment, used for local runs;
//  2. secretName — a Secret Manager version path
//     ("projects/<PROJECT_ID>/secrets/<SECRET_ID>/versions/latest").
//
// Both empty is a configuration error surfaced to the caller; the server
// still boots and serves read-only endpoints without a mint authority.
func LoadMintAuthority(ctx context.Context, keyJSON, secretName string) (*MintAuthority, error) {
	keyJSON = strings.TrimSpace(keyJSON)
	secretName = strings.TrimSpace(secretName)

	var raw []byte
	switch {
	case keyJSON != "":
		raw = []byte(keyJSON)
	case secretName != "":
		client, err := secretmanager.NewClient(ctx)
		if err != nil {
			return nil, fmt.Errorf("secretmanager.NewClient: %w", err)
		}
		defer client.Close()

		resp, err := client.AccessSecretVersion(ctx, &secretspb.AccessSecretVersionRequest{
			Name: secretName,
		})
		if err != nil {
			return nil, fmt.Errorf("AccessSecretVersion: %w", err)
		}
		raw = resp.Payload.Data
	default:
		return nil, fmt.Errorf("mint authority key is not configured (MINT_AUTHORITY_KEY / MINT_AUTHORITY_KEY_SECRET)")
	}

	keyBytes, err := decodeKeypairJSON(raw)
	if err != nil {
		return nil, err
	}

	acc, err := types.AccountFromBytes(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("AccountFromBytes: %w", err)
	}

	log.Printf("[mint_authority] loaded mint authority pubkey=%s", acc.PublicKey.ToBase58())

	return &MintAuthority{Account: acc}, nil
}

// decodeKeypairJSON は keypair JSON から 64 バイトの鍵配列を復元します。
// - 正: [u8;64] を []byte で受け取る
// - 互換: [int,...] を []int で受けてから []byte に変換
func decodeKeypairJSON(data []byte) ([]byte, error) {
	var keyBytes []byte
	if err := json.Unmarshal(data, &keyBytes); err == nil {
		if len(keyBytes) == ed25519.PrivateKeySize {
			return keyBytes, nil
		}
	}

	var ints []int
	if err := json.Unmarshal(data, &ints); err != nil {
		return nil, fmt.Errorf("unmarshal keypair json: %w", err)
	}
	if len(ints) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("unexpected secret key length: got %d, want %d", len(ints), ed25519.PrivateKeySize)
	}

	keyBytes = make([]byte, len(ints))
	for i, v := range ints {
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("keypair byte out of range at %d: %d", i, v)
		}
		keyBytes[i] = byte(v)
	}
	return keyBytes, nil
}
