// internal/adapters/out/http/referral_client.go
package httpout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rakess70/mintomatic/internal/domain/referral"
)

const defaultReferralRadiusURL = "https://www.referralradius.com/api/referrals"

// ReferralRadiusClient posts referral records to the ReferralRadius API.
// Best-effort: the usecase logs and swallows delivery failures.
type ReferralRadiusClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

var _ referral.Sink = (*ReferralRadiusClient)(nil)

// baseURL is overridable for tests; empty means the production endpoint.
func NewReferralRadiusClient(baseURL, apiKey string) *ReferralRadiusClient {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = defaultReferralRadiusURL
	}
	return &ReferralRadiusClient{
		baseURL: baseURL,
		apiKey:  strings.TrimSpace(apiKey),
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

type referralRadiusPayload struct {
	referral.Record
	APIKey string `json:"apiKey"`
}

// Log sends one referral record. Exactly one POST; no retry.
func (c *ReferralRadiusClient) Log(ctx context.Context, rec referral.Record) error {
	if c == nil {
		return fmt.Errorf("referral client is nil")
	}
	if c.apiKey == "" {
		return referral.ErrNotConfigured
	}

	b, _ := json.Marshal(referralRadiusPayload{Record: rec, APIKey: c.apiKey})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 200 && res.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	return fmt.Errorf("referral call failed status=%d body=%s", res.StatusCode, strings.TrimSpace(string(body)))
}
