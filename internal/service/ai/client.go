package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/zoralabs/zora/backend/internal/config"
)

// StatusError surfaces the gateway's HTTP status so the relay can map 429/402
// to typed outcomes.
type StatusError struct {
	Status int
	Err    error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("ai gateway: status %d: %v", e.Status, e.Err)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

// HTTPStatusCode implements the status-aware error contract consumed by the
// relay service.
func (e *StatusError) HTTPStatusCode() int {
	return e.Status
}

// Client is a thin chat-completion client for the configured AI gateway.
type Client struct {
	client openai.Client
	cfg    config.AIConfig
}

// NewClient builds the gateway client. Retries are disabled so each relay
// invocation performs exactly one upstream round trip.
func NewClient(cfg config.AIConfig) *Client {
	httpClient := &http.Client{Timeout: time.Duration(cfg.Timeout) * time.Second}

	client := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
		option.WithHTTPClient(httpClient),
		option.WithMaxRetries(0),
	)

	return &Client{client: client, cfg: cfg}
}

// Complete issues a single blocking chat completion and returns the reply
// text. An empty string with a nil error means the gateway answered without
// content; callers decide the fallback.
func (c *Client) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.cfg.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userMessage),
		},
		Temperature: openai.Float(c.cfg.Temperature),
		MaxTokens:   openai.Int(int64(c.cfg.MaxTokens)),
	})
	if err != nil {
		var apierr *openai.Error
		if errors.As(err, &apierr) {
			return "", &StatusError{Status: apierr.StatusCode, Err: err}
		}
		return "", fmt.Errorf("ai gateway request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
