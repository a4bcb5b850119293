package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/zoralabs/zora/backend/internal/config"
	"github.com/zoralabs/zora/backend/internal/service/relay"
)

type fixedCompleter struct {
	reply string
}

func (f fixedCompleter) Complete(context.Context, string, string) (string, error) {
	return f.reply, nil
}

func TestPreflightShortCircuits(t *testing.T) {
	router := NewRouter(relay.NewService(fixedCompleter{}, config.AIConfig{APIKey: "test-key"}))

	req := httptest.NewRequest(http.MethodOptions, "/api/chat", nil)
	req.Header.Set("Origin", "https://example.test")
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
	if resp.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatal("missing CORS allow-origin header")
	}
}

func TestChatRouteMounted(t *testing.T) {
	router := NewRouter(relay.NewService(fixedCompleter{reply: "Hello!"}, config.AIConfig{APIKey: "test-key"}))

	body := bytes.NewReader([]byte(`{"message":"hi"}`))
	req := httptest.NewRequest(http.MethodPost, "/api/chat", body)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if resp.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatal("missing CORS allow-origin header on actual request")
	}
}
