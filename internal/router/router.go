package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"studyaid-backend/internal/handlers"
	"studyaid-backend/internal/middleware"
	"studyaid-backend/internal/websocket"
)

// maxJSONBody caps non-upload request bodies.
const maxJSONBody = 1 << 20

func New(
	sessionAuth *middleware.SessionAuth,
	sessionHandler *handlers.SessionHandler,
	contentHandler *handlers.ContentHandler,
	studyHandler *handlers.StudyHandler,
	quizHandler *handlers.QuizHandler,
	flashcardHandler *handlers.FlashcardHandler,
	wsHub *websocket.Hub,
	sessionLimiter *middleware.RateLimiter,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// ──── Sessions (public) ────
		r.With(sessionLimiter.Middleware).Post("/sessions", sessionHandler.Create)
		r.Get("/content/supported-formats", contentHandler.SupportedFormats)

		// ──── WebSocket (token in query) ────
		r.Get("/ws", wsHub.HandleWebSocket)

		r.Group(func(r chi.Router) {
			r.Use(sessionAuth.Middleware)

			r.Delete("/sessions/current", sessionHandler.End)

			// ──── Content ────
			r.Post("/content/upload", contentHandler.Upload)

			r.Group(func(r chi.Router) {
				r.Use(chimiddleware.RequestSize(maxJSONBody))
				r.Use(chimiddleware.Timeout(15 * time.Second))

				r.Get("/content", contentHandler.Get)
				r.Put("/content", contentHandler.SetText)

				// ──── Study Aids ────
				r.Get("/summary", studyHandler.Summary)
				r.Get("/questions", studyHandler.Questions)

				// ──── Quiz ────
				r.Route("/quiz", func(r chi.Router) {
					r.Get("/", quizHandler.Get)
					r.Put("/selections/{index}", quizHandler.Select)
					r.Delete("/selections/{index}", quizHandler.Clear)
					r.Post("/submit", quizHandler.Submit)
					r.Post("/reset", quizHandler.Reset)
				})

				// ──── Flashcards ────
				r.Route("/flashcards", func(r chi.Router) {
					r.Get("/", flashcardHandler.List)
					r.Post("/", flashcardHandler.Add)
					r.Post("/reset", flashcardHandler.Reset)
					r.Put("/{index}", flashcardHandler.Update)
					r.Delete("/{index}", flashcardHandler.Delete)
					r.Post("/{index}/reviewed", flashcardHandler.MarkReviewed)
				})
			})
		})
	})

	return r
}
