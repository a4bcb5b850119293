package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/zoralabs/zora/backend/internal/config"
	"github.com/zoralabs/zora/backend/internal/service/relay"
)

type stubCompleter struct {
	reply string
	err   error
	calls int
}

func (s *stubCompleter) Complete(context.Context, string, string) (string, error) {
	s.calls++
	return s.reply, s.err
}

type statusErr struct {
	status int
}

func (e *statusErr) Error() string       { return fmt.Sprintf("status %d", e.status) }
func (e *statusErr) HTTPStatusCode() int { return e.status }

func setupRouter(stub *stubCompleter, apiKey string) *chi.Mux {
	svc := relay.NewService(stub, config.AIConfig{APIKey: apiKey})
	handler := New(svc)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func postChat(t *testing.T, r http.Handler, body map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)
	return resp
}

func TestChatSuccess(t *testing.T) {
	stub := &stubCompleter{reply: "🎵 Happy by Pharrell Williams - this will cheer you up!"}
	r := setupRouter(stub, "test-key")

	resp := postChat(t, r, map[string]string{
		"message":  "Play a happy song",
		"emotion":  "calm",
		"language": "en-US",
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body struct {
		Message string `json:"message"`
		Emotion string `json:"emotion"`
		Music   *struct {
			Title       string `json:"title"`
			Artist      string `json:"artist"`
			SearchQuery string `json:"searchQuery"`
		} `json:"music"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Message != stub.reply {
		t.Fatalf("unexpected message: %q", body.Message)
	}
	if body.Emotion != "excited" {
		t.Fatalf("unexpected emotion: %q", body.Emotion)
	}
	if body.Music == nil || body.Music.SearchQuery != "Happy%20Pharrell%20Williams" {
		t.Fatalf("unexpected music payload: %+v", body.Music)
	}
}

func TestChatMusicFieldNullWithoutCue(t *testing.T) {
	stub := &stubCompleter{reply: "The capital of France is Paris."}
	r := setupRouter(stub, "test-key")

	resp := postChat(t, r, map[string]string{"message": "capital of France?"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if string(body["music"]) != "null" {
		t.Fatalf("expected music to be null, got %s", body["music"])
	}
}

func TestChatEmptyMessage(t *testing.T) {
	stub := &stubCompleter{}
	r := setupRouter(stub, "test-key")

	resp := postChat(t, r, map[string]string{"message": ""})
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if stub.calls != 0 {
		t.Fatalf("expected no upstream call, got %d", stub.calls)
	}
}

func TestChatMissingCredential(t *testing.T) {
	stub := &stubCompleter{}
	r := setupRouter(stub, "")

	resp := postChat(t, r, map[string]string{"message": "hello"})
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if stub.calls != 0 {
		t.Fatalf("expected no upstream call, got %d", stub.calls)
	}
}

func TestChatRateLimited(t *testing.T) {
	stub := &stubCompleter{err: &statusErr{status: http.StatusTooManyRequests}}
	r := setupRouter(stub, "test-key")

	resp := postChat(t, r, map[string]string{"message": "hello"})
	if resp.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", resp.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["error"] == "" {
		t.Fatal("expected an error message")
	}
	if _, ok := body["emotion"]; ok {
		t.Fatal("error envelope must not carry an emotion field")
	}
}

func TestChatQuotaExhausted(t *testing.T) {
	stub := &stubCompleter{err: &statusErr{status: http.StatusPaymentRequired}}
	r := setupRouter(stub, "test-key")

	resp := postChat(t, r, map[string]string{"message": "hello"})
	if resp.Code != http.StatusPaymentRequired {
		t.Fatalf("expected 402, got %d", resp.Code)
	}
}

func TestChatUpstreamFailure(t *testing.T) {
	stub := &stubCompleter{err: &statusErr{status: http.StatusServiceUnavailable}}
	r := setupRouter(stub, "test-key")

	resp := postChat(t, r, map[string]string{"message": "hello"})
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
}

func TestChatInvalidBody(t *testing.T) {
	r := setupRouter(&stubCompleter{}, "test-key")

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader([]byte("not json")))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
}
