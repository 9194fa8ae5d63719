package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"go_vi_dict/internal/ai"
	"go_vi_dict/internal/cache"
	"go_vi_dict/internal/config"
	"go_vi_dict/internal/dictionary"
	"go_vi_dict/internal/handlers"
	"go_vi_dict/internal/middleware"
	"go_vi_dict/internal/repository"
	"go_vi_dict/internal/service"
)

func newServeCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), &config.Cfg, migrate || config.Cfg.Database.AutoMigrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply database migrations before serving")
	return cmd
}

func runServer(ctx context.Context, cfg *config.Config, migrate bool) error {
	logger := slog.Default()
	logger.Info("Application starting...", slog.String("version", config.AppVersion))

	// 1. Database
	db, err := repository.NewDB(cfg.Database, logger)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			logger.Error("Error closing database connection", slog.Any("error", err))
		} else {
			logger.Info("Database connection closed.")
		}
	}()
	if migrate {
		if err := repository.RunMigrations(ctx, db, cfg.Database.Driver, logger); err != nil {
			return err
		}
	}

	// 2. Dictionary (読めなくても起動は続ける)
	catalogue, err := dictionary.Load(cfg.Dictionary.Path, logger)
	if err != nil {
		logger.Warn("Dictionary not loaded, candidates and /words.jsonl will be empty",
			slog.String("path", cfg.Dictionary.Path), slog.Any("error", err))
		catalogue = dictionary.New(nil)
	}

	// 3. AI + cache
	generator, err := ai.NewGenerator(ctx, cfg.AI, logger)
	if err != nil {
		return err
	}
	mirror := newTranslationMirror(ctx, cfg.Redis, logger)
	defer mirror.Close()

	router := newRouter(cfg, db, catalogue, ai.NewTranslator(generator, cfg.AI.Timeout), mirror, logger)

	// 4. Start Server
	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.Server.RequestTimeout + 10*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		if err != nil {
			logger.Error("Could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
			return err
		}
	case <-quit:
	}
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", slog.Any("error", err))
		return err
	}
	logger.Info("Server exiting")
	return nil
}

// newTranslationMirror は Redis が設定されていればミラーを、なければ何もしない実装を返します
func newTranslationMirror(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) cache.TranslationCache {
	if cfg.Addr == "" {
		logger.Info("Redis translation mirror disabled")
		return cache.Noop{}
	}
	mirror, err := cache.NewRedisTranslationCache(ctx, cfg, logger)
	if err != nil {
		logger.Warn("Redis unavailable, continuing without translation mirror", slog.Any("error", err))
		return cache.Noop{}
	}
	return mirror
}

// newRouter は依存関係を組み立ててルーターを返します
func newRouter(cfg *config.Config, db *gorm.DB, catalogue *dictionary.Catalogue, translator service.AITranslator, mirror cache.TranslationCache, logger *slog.Logger) http.Handler {
	// Dependency Injection
	userRepo := repository.NewGormUserRepository()
	wordRepo := repository.NewGormWordRepository()
	translationRepo := repository.NewGormTranslationRepository()
	bookmarkRepo := repository.NewGormBookmarkRepository()
	dailySetRepo := repository.NewGormDailySetRepository()
	progressRepo := repository.NewGormProgressRepository()
	selectedRepo := repository.NewGormSelectedWordRepository()

	authService := service.NewAuthService(db, userRepo, cfg)
	translationService := service.NewTranslationService(db, translationRepo, translator, mirror)
	wordService := service.NewWordService(db, wordRepo, cfg.App)
	bookmarkService := service.NewBookmarkService(db, bookmarkRepo)
	flashcardService := service.NewFlashcardService(db, dailySetRepo, progressRepo, selectedRepo, catalogue, cfg.Flashcard)

	requireAuth := middleware.SessionAuthMiddleware(authService, cfg.Auth.CookieName)
	if !cfg.Auth.Enabled {
		logger.Warn("Authentication disabled: using X-User-ID development middleware")
		requireAuth = middleware.DevUserContextMiddleware
	}

	return handlers.NewRouter(handlers.Handlers{
		Auth:        handlers.NewAuthHandler(authService, cfg.Auth),
		Translation: handlers.NewTranslationHandler(translationService),
		Word:        handlers.NewWordHandler(wordService, catalogue),
		Bookmark:    handlers.NewBookmarkHandler(bookmarkService),
		Flashcard:   handlers.NewFlashcardHandler(flashcardService),
		Health:      handlers.NewHealthHandler(db),
	}, handlers.RouterOptions{
		Logger:         logger,
		CORS:           cfg.CORS,
		RequestTimeout: cfg.Server.RequestTimeout,
		RequireAuth:    requireAuth,
	})
}
