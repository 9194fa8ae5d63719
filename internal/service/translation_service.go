package service

import (
	"context"
	"errors"
	"strings"

	"go_vi_dict/internal/ai"
	"go_vi_dict/internal/cache"
	"go_vi_dict/internal/middleware"
	"go_vi_dict/internal/model"
	"go_vi_dict/internal/repository"

	"gorm.io/gorm"
)

// AITranslator は AI 翻訳アダプタ (ai.Translator が実装)
type AITranslator interface {
	TranslateWithAI(ctx context.Context, req ai.Request) (string, error)
}

type TranslationService interface {
	Translate(ctx context.Context, req *model.TranslateRequest) (*model.TranslateResult, error)
}

type translationService struct {
	db         *gorm.DB
	repo       repository.TranslationRepository
	translator AITranslator
	mirror     cache.TranslationCache
}

// NewTranslationService は mirror が nil ならミラーなしで動作します
func NewTranslationService(db *gorm.DB, repo repository.TranslationRepository, translator AITranslator, mirror cache.TranslationCache) TranslationService {
	if mirror == nil {
		mirror = cache.Noop{}
	}
	return &translationService{
		db:         db,
		repo:       repo,
		translator: translator,
		mirror:     mirror,
	}
}

func translateFailed(err error) error {
	return model.NewAppError("TRANSLATION_FAILED", "Failed to translate. Please try again.", "", errors.Join(model.ErrUpstream, err))
}

// Translate はキャッシュを参照し、なければ AI で翻訳してキャッシュに保存します
func (s *translationService) Translate(ctx context.Context, req *model.TranslateRequest) (*model.TranslateResult, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, model.NewAppError("EMPTY_TEXT", "Please enter text to translate", "text", model.ErrInvalidInput)
	}
	if !model.ValidLanguage(req.SourceLanguage) || !model.ValidLanguage(req.TargetLanguage) {
		return nil, model.NewAppError("INVALID_LANGUAGE", "Language must be en or vi", "sourceLanguage", model.ErrInvalidInput)
	}

	isWord := ai.IsLikelyWord(text)
	key := model.CacheKey{
		SourceText:     text,
		SourceLanguage: req.SourceLanguage,
		TargetLanguage: req.TargetLanguage,
		PromptVersion:  ai.PromptVersion,
	}
	logger := middleware.GetLogger(ctx).With("source_language", key.SourceLanguage, "target_language", key.TargetLanguage, "is_word", isWord)

	if !req.ForceRegenerate {
		if res, ok := s.lookup(ctx, key, isWord); ok {
			logger.Debug("Translation cache hit")
			return res, nil
		}
	}

	translation, err := s.translator.TranslateWithAI(ctx, ai.Request{
		Text:           text,
		SourceLanguage: req.SourceLanguage,
		TargetLanguage: req.TargetLanguage,
		IsWord:         isWord,
	})
	if err != nil {
		logger.Error("AI translation failed", "error", err)
		return nil, translateFailed(err)
	}

	entry := &model.TranslationCacheEntry{
		SourceText:     key.SourceText,
		SourceLanguage: key.SourceLanguage,
		TargetLanguage: key.TargetLanguage,
		PromptVersion:  key.PromptVersion,
		Translation:    translation,
		IsWord:         isWord,
	}
	if err := s.repo.Upsert(ctx, s.db, entry); err != nil {
		logger.Error("Failed to store translation in cache", "error", err)
		return nil, translateFailed(err)
	}
	s.mirrorSet(ctx, key, translation, isWord)

	logger.Info("Translation generated", "force_regenerate", req.ForceRegenerate)
	return &model.TranslateResult{Translation: translation, IsWord: isWord, FromCache: false}, nil
}

// lookup はミラー、DB の順に探します。DB のヒットはミラーへ書き戻します
func (s *translationService) lookup(ctx context.Context, key model.CacheKey, isWord bool) (*model.TranslateResult, bool) {
	logger := middleware.GetLogger(ctx)

	if res, err := s.mirror.Get(ctx, key); err == nil {
		res.IsWord = isWord
		return res, true
	} else if !errors.Is(err, model.ErrNotFound) {
		logger.Warn("Translation cache mirror unavailable", "error", err)
	}

	entry, err := s.repo.FindByKey(ctx, s.db, key)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			// DB 参照の失敗は未ヒット扱いにして生成へ進む
			logger.Error("Failed to read translation cache", "error", err)
		}
		return nil, false
	}
	s.mirrorSet(ctx, key, entry.Translation, entry.IsWord)
	return &model.TranslateResult{Translation: entry.Translation, IsWord: isWord, FromCache: true}, true
}

func (s *translationService) mirrorSet(ctx context.Context, key model.CacheKey, translation string, isWord bool) {
	if err := s.mirror.Set(ctx, key, translation, isWord); err != nil {
		middleware.GetLogger(ctx).Warn("Failed to update translation cache mirror", "error", err)
	}
}
