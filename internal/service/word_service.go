package service

import (
	"context"
	"strings"

	"go_vi_dict/internal/config"
	"go_vi_dict/internal/middleware"
	"go_vi_dict/internal/model"
	"go_vi_dict/internal/repository"

	"gorm.io/gorm"
)

type WordService interface {
	// Suggest は前方一致を優先し、少なければ部分一致で補った候補を返します
	Suggest(ctx context.Context, query, language string) ([]string, error)
}

type wordService struct {
	db       *gorm.DB
	wordRepo repository.WordRepository
	cfg      config.AppConfig
}

func NewWordService(db *gorm.DB, wordRepo repository.WordRepository, cfg config.AppConfig) WordService {
	if cfg.SuggestionLimit <= 0 {
		cfg.SuggestionLimit = config.DefaultSuggestionLimit
	}
	if cfg.SuggestionMinPrefix <= 0 {
		cfg.SuggestionMinPrefix = config.DefaultSuggestionMinPrefix
	}
	return &wordService{
		db:       db,
		wordRepo: wordRepo,
		cfg:      cfg,
	}
}

func (s *wordService) Suggest(ctx context.Context, query, language string) ([]string, error) {
	logger := middleware.GetLogger(ctx)

	if !model.ValidLanguage(language) {
		return nil, model.NewAppError("INVALID_LANGUAGE", "Language must be en or vi", "lang", model.ErrInvalidInput)
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return []string{}, nil
	}

	prefix, err := s.wordRepo.FindByPrefix(ctx, s.db, language, query, s.cfg.SuggestionLimit)
	if err != nil {
		logger.Error("Failed to find words by prefix", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load suggestions", "", err)
	}
	if len(prefix) >= s.cfg.SuggestionMinPrefix {
		return prefix, nil
	}

	containing, err := s.wordRepo.FindContaining(ctx, s.db, language, query, s.cfg.SuggestionLimit)
	if err != nil {
		logger.Error("Failed to find words by substring", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load suggestions", "", err)
	}

	// 順序を保ったまま重複を除く
	seen := make(map[string]struct{}, len(prefix)+len(containing))
	out := make([]string, 0, s.cfg.SuggestionLimit)
	for _, w := range append(prefix, containing...) {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
		if len(out) == s.cfg.SuggestionLimit {
			break
		}
	}
	return out, nil
}
