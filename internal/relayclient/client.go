package relayclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/zoralabs/zora/backend/internal/model/chat"
	"github.com/zoralabs/zora/backend/internal/service/relay"
)

// Client calls the relay endpoint over HTTP. It maps error envelopes back to
// the relay's typed codes so a conversation session behaves the same whether
// it talks to the service in-process or over the wire.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// New creates a client for the relay at baseURL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Relay posts one utterance and decodes the structured reply.
func (c *Client) Relay(ctx context.Context, req chat.Request) (chat.Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return chat.Response{}, fmt.Errorf("relayclient: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return chat.Response{}, fmt.Errorf("relayclient: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(httpReq)
	if err != nil {
		return chat.Response{}, relay.NewError(relay.ErrorUpstream, "relay request failed", err)
	}
	defer func() { _ = res.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return chat.Response{}, fmt.Errorf("relayclient: read response body: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		return chat.Response{}, decodeError(res.StatusCode, raw)
	}

	var resp chat.Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return chat.Response{}, fmt.Errorf("relayclient: decode response: %w", err)
	}
	return resp, nil
}

func decodeError(status int, raw []byte) *relay.Error {
	var envelope struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(raw, &envelope)

	reason := envelope.Error
	if reason == "" {
		reason = fmt.Sprintf("unexpected status %d", status)
	}

	code := relay.ErrorUpstream
	switch status {
	case http.StatusTooManyRequests:
		code = relay.ErrorRateLimited
	case http.StatusPaymentRequired:
		code = relay.ErrorQuotaExhausted
	}

	return relay.NewError(code, reason, nil)
}
