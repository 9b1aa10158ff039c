package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Routes builds the REST router. The realtime websocket endpoint is mounted
// separately by the caller so this package stays free of the hub.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.handleRegister)

		// The key lookup stays public: a sender resolves the recipient's key
		// before any chat exists between them.
		r.Get("/users/{userID}/public-key", h.handleGetPublicKey)

		r.Group(func(r chi.Router) {
			r.Use(h.AuthMiddleware)

			r.Get("/auth/me", h.handleMe)
			r.Put("/users/{userID}/public-key", h.handlePublishPublicKey)

			r.Get("/chats", h.handleListChats)
			r.Post("/chats", h.handleCreateChat)
			r.Get("/chats/{chatID}", h.handleGetChat)
			r.Get("/chats/{chatID}/messages", h.handleListMessages)
			r.Post("/chats/{chatID}/messages", h.handleSendMessage)

			r.Put("/messages/{messageID}/read", h.handleMarkRead)
			r.Get("/messages/{messageID}/receipts", h.handleListReceipts)
		})
	})

	return r
}
