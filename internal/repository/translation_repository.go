//go:generate mockery --name TranslationRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_vi_dict/internal/middleware"
	"go_vi_dict/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TranslationRepository は翻訳キャッシュの永続化を担います
type TranslationRepository interface {
	FindByKey(ctx context.Context, db *gorm.DB, key model.CacheKey) (*model.TranslationCacheEntry, error)
	// Upsert はキーが既存なら翻訳を上書きし (IDは不変)、なければ挿入します
	Upsert(ctx context.Context, db *gorm.DB, entry *model.TranslationCacheEntry) error
}

type gormTranslationRepository struct{}

func NewGormTranslationRepository() TranslationRepository {
	return &gormTranslationRepository{}
}

func (r *gormTranslationRepository) FindByKey(ctx context.Context, db *gorm.DB, key model.CacheKey) (*model.TranslationCacheEntry, error) {
	logger := middleware.GetLogger(ctx)
	var entry model.TranslationCacheEntry

	result := db.WithContext(ctx).
		Where("source_hash = ? AND source_language = ? AND target_language = ? AND prompt_version = ? AND source_text = ?",
			key.SourceHash(), key.SourceLanguage, key.TargetLanguage, key.PromptVersion, key.SourceText).
		First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding translation cache entry", "error", result.Error, "source_language", key.SourceLanguage)
		return nil, fmt.Errorf("gormTranslationRepository.FindByKey: %w", result.Error)
	}
	return &entry, nil
}

func (r *gormTranslationRepository) Upsert(ctx context.Context, db *gorm.DB, entry *model.TranslationCacheEntry) error {
	logger := middleware.GetLogger(ctx)
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.SourceHash = model.HashSourceText(entry.SourceText)
	entry.UpdatedAt = time.Now()

	result := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "source_hash"}, {Name: "source_language"}, {Name: "target_language"}, {Name: "prompt_version"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"translation", "is_word", "updated_at"}),
	}).Create(entry)
	if result.Error != nil {
		logger.Error("Error upserting translation cache entry", "error", result.Error, "source_language", entry.SourceLanguage)
		return fmt.Errorf("gormTranslationRepository.Upsert: %w", result.Error)
	}
	return nil
}
