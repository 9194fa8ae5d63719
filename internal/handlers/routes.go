package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"go_vi_dict/internal/config"
	"go_vi_dict/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// Handlers はルーターに登録するハンドラ群
type Handlers struct {
	Auth        *AuthHandler
	Translation *TranslationHandler
	Word        *WordHandler
	Bookmark    *BookmarkHandler
	Flashcard   *FlashcardHandler
	Health      *HealthHandler
}

// RouterOptions はルーター全体に掛けるミドルウェアの設定
type RouterOptions struct {
	Logger         *slog.Logger
	CORS           config.CORSConfig
	RequestTimeout time.Duration
	// RequireAuth は保護されたルートに掛ける認証ミドルウェア
	RequireAuth func(http.Handler) http.Handler
}

func NewRouter(h Handlers, opts RouterOptions) *chi.Mux {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 60 * time.Second
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(opts.Logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   opts.CORS.AllowedOrigins,
		AllowedMethods:   opts.CORS.AllowedMethods,
		AllowedHeaders:   opts.CORS.AllowedHeaders,
		ExposedHeaders:   opts.CORS.ExposedHeaders,
		AllowCredentials: opts.CORS.AllowCredentials,
		MaxAge:           opts.CORS.MaxAge,
		Debug:            false,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(opts.RequestTimeout))

	r.Route("/api", func(r chi.Router) {
		// --- Public routes ---
		r.Post("/auth/signup", h.Auth.Signup)
		r.Post("/auth/login", h.Auth.Login)
		r.Post("/auth/logout", h.Auth.Logout)
		r.Post("/translate", h.Translation.Translate)
		r.Get("/words/suggestions", h.Word.GetSuggestions)

		// --- Protected routes ---
		r.Group(func(r chi.Router) {
			if opts.RequireAuth != nil {
				r.Use(opts.RequireAuth)
			}

			r.Get("/auth/me", h.Auth.Me)

			r.Route("/bookmarks", func(r chi.Router) {
				r.Post("/", h.Bookmark.AddBookmark)
				r.Get("/", h.Bookmark.SearchBookmarks)
				r.Delete("/{id}", h.Bookmark.RemoveBookmark)
			})

			r.Route("/flashcards", func(r chi.Router) {
				r.Get("/daily-set", h.Flashcard.GetDailySet)
				r.Post("/daily-set", h.Flashcard.SaveDailySet)
				r.Get("/progress", h.Flashcard.GetProgress)
				r.Post("/progress", h.Flashcard.SaveProgress)
				r.Post("/selected-words/bulk", h.Flashcard.SaveSelectedWords)
				r.Get("/selected-words", h.Flashcard.GetSelectedWords)
				r.Get("/candidates", h.Flashcard.GetCandidates)
				r.Get("/quiz", h.Flashcard.GetQuiz)
				r.Post("/history/grade", h.Flashcard.GradeHistory)
			})
		})
	})

	r.Get("/words.jsonl", h.Word.GetWordsJSONL)
	if h.Health != nil {
		r.Get("/health", h.Health.Health)
	}

	return r
}
