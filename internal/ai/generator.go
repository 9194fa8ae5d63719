package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go_vi_dict/internal/config"
)

// ErrEmptyResponse はプロバイダが本文を返さなかった場合のエラー
var ErrEmptyResponse = errors.New("ai: empty response")

// Generator はプロンプトからテキストを生成するプロバイダの抽象です
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// NewGenerator は設定に応じたプロバイダを生成し、必要ならサーキットブレーカーで包みます
func NewGenerator(ctx context.Context, cfg config.AIConfig, logger *slog.Logger) (Generator, error) {
	var (
		gen Generator
		err error
	)
	switch cfg.Provider {
	case "gemini":
		gen, err = NewGeminiGenerator(ctx, cfg.APIKey, cfg.Model)
	case "openai":
		gen, err = NewOpenAIGenerator(cfg.APIKey, cfg.Model)
	default:
		return nil, fmt.Errorf("ai.NewGenerator: unsupported provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("ai.NewGenerator: %w", err)
	}

	if cfg.Breaker.Enabled {
		gen = NewBreakerGenerator(gen, cfg.Provider, cfg.Breaker, logger)
	}
	logger.Info("AI generator initialized", slog.String("provider", cfg.Provider), slog.String("model", cfg.Model), slog.Bool("breaker", cfg.Breaker.Enabled))
	return gen, nil
}
