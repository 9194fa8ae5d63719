//go:generate mockery --name WordRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"go_vi_dict/internal/middleware"
	"go_vi_dict/internal/model"

	"gorm.io/gorm"
)

// WordRepository はサジェスト用の辞書語彙を検索します
type WordRepository interface {
	FindByPrefix(ctx context.Context, db *gorm.DB, language, prefix string, limit int) ([]string, error)
	FindContaining(ctx context.Context, db *gorm.DB, language, fragment string, limit int) ([]string, error)
}

type gormWordRepository struct{}

func NewGormWordRepository() WordRepository {
	return &gormWordRepository{}
}

func (r *gormWordRepository) FindByPrefix(ctx context.Context, db *gorm.DB, language, prefix string, limit int) ([]string, error) {
	words, err := r.findLike(ctx, db, language, escapeLike(prefix)+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("gormWordRepository.FindByPrefix: %w", err)
	}
	return words, nil
}

func (r *gormWordRepository) FindContaining(ctx context.Context, db *gorm.DB, language, fragment string, limit int) ([]string, error) {
	words, err := r.findLike(ctx, db, language, "%"+escapeLike(fragment)+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("gormWordRepository.FindContaining: %w", err)
	}
	return words, nil
}

// findLike は大文字小文字を区別せずに LIKE 検索し、アルファベット順で返します
func (r *gormWordRepository) findLike(ctx context.Context, db *gorm.DB, language, pattern string, limit int) ([]string, error) {
	logger := middleware.GetLogger(ctx)
	var words []string

	result := db.WithContext(ctx).
		Model(&model.Word{}).
		Where("language = ? AND LOWER(word) LIKE LOWER(?) ESCAPE '\\'", language, pattern).
		Order("word ASC").
		Limit(limit).
		Pluck("word", &words)
	if result.Error != nil {
		logger.Error("Error searching words in DB", "error", result.Error, "language", language, "pattern", pattern)
		return nil, result.Error
	}
	return words, nil
}
