// Package subscriber talks to the third-party newsletter service that
// stores signups.
package subscriber

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"portfolio-backend/domain/newsletter"

	"go.uber.org/zap"
)

const (
	DefaultEndpoint     = "https://api.kit.com/v4/subscribers"
	DefaultAPIKeyHeader = "X-Kit-Api-Key"

	// maxResponseBytes bounds how much of the upstream reply is relayed.
	maxResponseBytes = 1 << 20
)

// KitClient creates subscribers through the Kit v4 REST API.
type KitClient struct {
	httpClient   *http.Client
	endpoint     string
	apiKey       string
	apiKeyHeader string
	logger       *zap.Logger
}

// NewKitClient creates a new client. An empty apiKey is allowed; every call
// then fails with newsletter.ErrMissingCredential.
func NewKitClient(httpClient *http.Client, endpoint, apiKey, apiKeyHeader string, logger *zap.Logger) *KitClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if apiKeyHeader == "" {
		apiKeyHeader = DefaultAPIKeyHeader
	}
	return &KitClient{
		httpClient:   httpClient,
		endpoint:     endpoint,
		apiKey:       apiKey,
		apiKeyHeader: apiKeyHeader,
		logger:       logger,
	}
}

// CreateSubscriber posts sub to the subscriber endpoint once and returns the
// upstream status and JSON body. Non-2xx replies are not errors.
func (c *KitClient) CreateSubscriber(ctx context.Context, sub newsletter.Subscriber) (*newsletter.UpstreamResponse, error) {
	if c.apiKey == "" {
		return nil, newsletter.ErrMissingCredential
	}

	payload, err := json.Marshal(sub)
	if err != nil {
		return nil, fmt.Errorf("failed to encode subscriber: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build upstream request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(c.apiKeyHeader, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read upstream response: %w", err)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("upstream returned non-JSON body with status %d", resp.StatusCode)
	}

	c.logger.Debug("Upstream subscriber response",
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
	)

	return &newsletter.UpstreamResponse{
		StatusCode: resp.StatusCode,
		Body:       json.RawMessage(body),
	}, nil
}
