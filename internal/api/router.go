package api

import (
	"net/http"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "promptpilot/backend/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"promptpilot/backend/internal/auth"
)

// NewRouter creates and configures a chi router with all the
// application's routes. Every /v1 route requires a bearer credential.
func NewRouter(chatHandler *ChatHandler, commitHandler *CommitHandler, verifier auth.TokenVerifier) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Serves the auto-generated Swagger UI for API documentation.
	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	// Health check endpoint for container orchestration probes.
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/v1", func(r chi.Router) {
		r.Use(RequireAuth(verifier))

		// Standard JSON routes get a request timeout so client
		// connections cannot hang indefinitely.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(60 * time.Second))

			// Chats.
			r.Get("/chat/list", chatHandler.ListChats)
			r.Post("/chat/new", chatHandler.CreateChat)
			r.Get("/chat/{chatID}/messages", chatHandler.GetMessages)

			// Commits.
			r.Post("/commits/commit", commitHandler.CreateCommit)
			r.Post("/commits/fetch/{commitID}", commitHandler.FetchCommit)
			r.Get("/commits/{chatID}", commitHandler.GetHistory)
		})

		// The message round trip carries its own reply-generation
		// deadline, so it is not wrapped in the router timeout.
		r.Group(func(r chi.Router) {
			r.Post("/chat", chatHandler.SendMessage)
		})
	})

	return r
}
