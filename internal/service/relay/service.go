package relay

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/zoralabs/zora/backend/internal/analysis/emotion"
	"github.com/zoralabs/zora/backend/internal/analysis/music"
	"github.com/zoralabs/zora/backend/internal/config"
	"github.com/zoralabs/zora/backend/internal/model/chat"
	"github.com/zoralabs/zora/backend/internal/service/ai"
)

// FallbackReply stands in for a successful gateway response with no content.
const FallbackReply = "I'm here with you!"

// Completer abstracts the upstream chat-completion gateway.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// Service is the stateless request relay: it validates input, assembles the
// system prompt, performs exactly one upstream call, and interprets the reply.
// Safe for unlimited concurrent use; it holds no mutable state.
type Service struct {
	completer Completer
	apiKey    string
}

// NewService wires the relay to its gateway.
func NewService(completer Completer, cfg config.AIConfig) *Service {
	return &Service{completer: completer, apiKey: cfg.APIKey}
}

// Handle turns one user utterance plus context into a structured reply.
func (s *Service) Handle(ctx context.Context, req chat.Request) (chat.Response, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return chat.Response{}, NewError(ErrorInvalidRequest, "message is required", nil)
	}

	// Checked per request, before any network call.
	if strings.TrimSpace(s.apiKey) == "" {
		return chat.Response{}, NewError(ErrorConfiguration, "AI gateway API key is not configured", nil)
	}

	mood := emotion.Default
	if label, ok := emotion.Parse(req.Emotion); ok {
		mood = label
	}
	languageName := ai.LanguageName(req.Language)

	now := time.Now()
	systemPrompt := ai.BuildSystemPrompt(ai.PromptContext{
		Emotion:      mood,
		LanguageName: languageName,
		Date:         now.Format("Monday, January 2, 2006"),
		Time:         now.Format("03:04 PM"),
		Year:         now.Year(),
	})

	log.Printf("[relay] calling AI gateway emotion=%s language=%s", mood, languageName)

	reply, err := s.completer.Complete(ctx, systemPrompt, message)
	if err != nil {
		status, ok := upstreamStatusCode(err)
		switch {
		case ok && status == http.StatusTooManyRequests:
			return chat.Response{}, NewError(ErrorRateLimited, "rate limit exceeded", err)
		case ok && status == http.StatusPaymentRequired:
			return chat.Response{}, NewError(ErrorQuotaExhausted, "AI credits depleted", err)
		default:
			return chat.Response{}, NewError(ErrorUpstream, "AI gateway error", err)
		}
	}

	if strings.TrimSpace(reply) == "" {
		reply = FallbackReply
	}

	return chat.Response{
		Message: reply,
		Emotion: emotion.Classify(reply),
		Music:   music.Extract(reply),
	}, nil
}
