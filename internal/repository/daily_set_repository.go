//go:generate mockery --name DailySetRepository --output ./mocks --outpkg mocks --case=underscore
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

type DailySetRepository interface {
	// Upsert は (user, date) の行を作成または word_data を更新し、保存後の行で set を上書きします
	Upsert(ctx context.Context, tx *gorm.DB, set *model.DailyWordSet) error
	FindByDate(ctx context.Context, db *gorm.DB, userID uuid.UUID, date string) (*model.DailyWordSet, error)
	FindAllExceptDate(ctx context.Context, db *gorm.DB, userID uuid.UUID, excludeDate string) ([]*model.DailyWordSet, error)
}

type gormDailySetRepository struct{}

func NewGormDailySetRepository() DailySetRepository {
	return &gormDailySetRepository{}
}

func (r *gormDailySetRepository) Upsert(ctx context.Context, tx *gorm.DB, set *model.DailyWordSet) error {
	logger := middleware.GetLogger(ctx)
	if set.ID == uuid.Nil {
		set.ID = uuid.New()
	}
	set.UpdatedAt = time.Now()

	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"word_data", "updated_at"}),
	}).Create(set)
	if result.Error != nil {
		logger.Error("Error upserting daily word set", "error", result.Error, "date", set.Date)
		return fmt.Errorf("gormDailySetRepository.Upsert: %w", result.Error)
	}

	// 競合時は既存行のIDが残るため読み直す
	stored, err := r.FindByDate(ctx, tx, set.UserID, set.Date)
	if err != nil {
		return fmt.Errorf("gormDailySetRepository.Upsert: reload: %w", err)
	}
	*set = *stored
	return nil
}

func (r *gormDailySetRepository) FindByDate(ctx context.Context, db *gorm.DB, userID uuid.UUID, date string) (*model.DailyWordSet, error) {
	logger := middleware.GetLogger(ctx)
	var set model.DailyWordSet

	result := db.WithContext(ctx).Where("user_id = ? AND date = ?", userID, date).First(&set)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding daily word set", "error", result.Error, "date", date)
		return nil, fmt.Errorf("gormDailySetRepository.FindByDate: %w", result.Error)
	}
	return &set, nil
}

func (r *gormDailySetRepository) FindAllExceptDate(ctx context.Context, db *gorm.DB, userID uuid.UUID, excludeDate string) ([]*model.DailyWordSet, error) {
	logger := middleware.GetLogger(ctx)
	var sets []*model.DailyWordSet

	q := db.WithContext(ctx).Where("user_id = ?", userID)
	if excludeDate != "" {
		q = q.Where("date <> ?", excludeDate)
	}
	result := q.Order("date DESC").Find(&sets)
	if result.Error != nil {
		logger.Error("Error listing daily word sets", "error", result.Error, "exclude_date", excludeDate)
		return nil, fmt.Errorf("gormDailySetRepository.FindAllExceptDate: %w", result.Error)
	}
	return sets, nil
}
