//go:generate mockery --name SelectedWordRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"go_vi_dict/internal/middleware"
	"go_vi_dict/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const selectedWordBatchSize = 200

type SelectedWordRepository interface {
	CreateBatch(ctx context.Context, tx *gorm.DB, words []*model.SelectedWord) (int64, error)
	// ListWordsByUser はユーザーが過去に選んだ単語 (重複なし) を返します
	ListWordsByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]string, error)
	// Sample はランダムに limit 件の単語を返します。userID が nil なら全ユーザーが対象
	Sample(ctx context.Context, db *gorm.DB, userID *uuid.UUID, limit int) ([]string, error)
}

type gormSelectedWordRepository struct{}

func NewGormSelectedWordRepository() SelectedWordRepository {
	return &gormSelectedWordRepository{}
}

func (r *gormSelectedWordRepository) CreateBatch(ctx context.Context, tx *gorm.DB, words []*model.SelectedWord) (int64, error) {
	logger := middleware.GetLogger(ctx)
	if len(words) == 0 {
		return 0, nil
	}
	for _, w := range words {
		if w.ID == uuid.Nil {
			w.ID = uuid.New()
		}
	}

	result := tx.WithContext(ctx).CreateInBatches(words, selectedWordBatchSize)
	if result.Error != nil {
		logger.Error("Error inserting selected words", "error", result.Error, "count", len(words))
		return 0, fmt.Errorf("gormSelectedWordRepository.CreateBatch: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *gormSelectedWordRepository) ListWordsByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]string, error) {
	logger := middleware.GetLogger(ctx)
	var words []string

	result := db.WithContext(ctx).Model(&model.SelectedWord{}).
		Distinct("word").
		Where("user_id = ?", userID).
		Pluck("word", &words)
	if result.Error != nil {
		logger.Error("Error listing selected words", "error", result.Error)
		return nil, fmt.Errorf("gormSelectedWordRepository.ListWordsByUser: %w", result.Error)
	}
	return words, nil
}

func (r *gormSelectedWordRepository) Sample(ctx context.Context, db *gorm.DB, userID *uuid.UUID, limit int) ([]string, error) {
	logger := middleware.GetLogger(ctx)
	var words []string

	q := db.WithContext(ctx).Model(&model.SelectedWord{})
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}
	result := q.Order("RANDOM()").Limit(limit).Pluck("word", &words)
	if result.Error != nil {
		logger.Error("Error sampling selected words", "error", result.Error)
		return nil, fmt.Errorf("gormSelectedWordRepository.Sample: %w", result.Error)
	}
	return words, nil
}
