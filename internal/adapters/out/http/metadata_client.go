// internal/adapters/out/http/metadata_client.go
package httpout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rakess70/mintomatic/internal/domain/candymachine"
)

const metadataMaxBody = 1 << 20 // 1MB

// MetadataClient fetches the off-chain JSON documents that on-chain metadata
// URIs point at. One GET, explicit timeout, no retry; callers treat every
// failure as "no display data".
type MetadataClient struct {
	client *http.Client
}

var _ candymachine.DisplayFetcher = (*MetadataClient)(nil)

func NewMetadataClient() *MetadataClient {
	return &MetadataClient{
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

// FetchDisplay GETs uri and extracts the collection display fields.
func (c *MetadataClient) FetchDisplay(ctx context.Context, uri string) (candymachine.CollectionDisplay, error) {
	var out candymachine.CollectionDisplay

	doc, err := c.FetchDocument(ctx, uri)
	if err != nil {
		return out, err
	}

	if v, ok := doc["name"].(string); ok {
		out.Name = strings.TrimSpace(v)
	}
	if v, ok := doc["image"].(string); ok {
		out.ImageURL = strings.TrimSpace(v)
	}
	return out, nil
}

// FetchDocument GETs uri and returns the parsed JSON object as-is. Used for
// the NFT metadata passthrough endpoint.
func (c *MetadataClient) FetchDocument(ctx context.Context, uri string) (map[string]any, error) {
	if c == nil || c.client == nil {
		return nil, fmt.Errorf("metadata client is not configured")
	}
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return nil, fmt.Errorf("metadata uri is empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("metadata fetch: new request: %w", err)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("metadata fetch: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("metadata fetch: status=%d uri=%s", res.StatusCode, uri)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, metadataMaxBody))
	if err != nil {
		return nil, fmt.Errorf("metadata fetch: read body: %w", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("metadata fetch: decode json: %w", err)
	}
	return doc, nil
}
