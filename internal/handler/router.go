package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zoralabs/zora/backend/internal/handler/chat"
	middlewarePkg "github.com/zoralabs/zora/backend/internal/middleware"
	"github.com/zoralabs/zora/backend/internal/service/relay"
)

// NewRouter wires HTTP routes to the relay service.
func NewRouter(relaySvc *relay.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	chatHandler := chat.New(relaySvc)

	r.Route("/api", func(api chi.Router) {
		chatHandler.RegisterRoutes(api)
	})

	return r
}
