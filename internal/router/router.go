package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"minichat-backend/internal/handlers"
	"minichat-backend/internal/middleware"
	"minichat-backend/internal/websocket"
)

func New(
	chatHandler *handlers.ChatHandler,
	conversationHandler *handlers.ConversationHandler,
	wsHub *websocket.Hub,
	storagePath string,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Chat rate limiter (30 req/min per IP): each request is a blocking
	// model round trip.
	chatLimiter := middleware.NewRateLimiter(30, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Uploaded images
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(storagePath))))

	r.Route("/api/v1", func(r chi.Router) {

		// ──── Chat ────
		r.Group(func(r chi.Router) {
			r.Use(chatLimiter.Middleware)
			r.Post("/chat", chatHandler.Send)
		})

		// ──── Conversations ────
		r.Route("/conversations", func(r chi.Router) {
			r.Get("/", conversationHandler.List)
			r.Post("/new", conversationHandler.Create)
			r.Get("/{id}", conversationHandler.Get)
			r.Get("/{id}/messages", conversationHandler.Messages)
			r.Put("/{id}", conversationHandler.Update)
			r.Delete("/{id}", conversationHandler.Delete)
		})

		// ──── WebSocket ────
		r.Get("/ws", wsHub.HandleWebSocket)
	})

	return r
}
