//go:generate mockery --name ProgressRepository --output ./mocks --outpkg mocks --case=underscore
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

type ProgressRepository interface {
	// Upsert は (user, daily_set) の結果を後勝ちで保存し、保存後の行で progress を上書きします
	Upsert(ctx context.Context, tx *gorm.DB, progress *model.UserProgress) error
	FindBySetID(ctx context.Context, db *gorm.DB, userID, dailySetID uuid.UUID) (*model.UserProgress, error)
}

type gormProgressRepository struct{}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

func (r *gormProgressRepository) Upsert(ctx context.Context, tx *gorm.DB, progress *model.UserProgress) error {
	logger := middleware.GetLogger(ctx)
	if progress.ID == uuid.Nil {
		progress.ID = uuid.New()
	}
	progress.UpdatedAt = time.Now()

	result := tx.WithContext(ctx).Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "daily_set_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"correct_answers", "incorrect_answers", "score", "completed_at", "updated_at",
		}),
	}).Create(progress)
	if result.Error != nil {
		logger.Error("Error upserting user progress", "error", result.Error, "daily_set_id", progress.DailySetID.String())
		return fmt.Errorf("gormProgressRepository.Upsert: %w", result.Error)
	}

	stored, err := r.FindBySetID(ctx, tx, progress.UserID, progress.DailySetID)
	if err != nil {
		return fmt.Errorf("gormProgressRepository.Upsert: reload: %w", err)
	}
	*progress = *stored
	return nil
}

func (r *gormProgressRepository) FindBySetID(ctx context.Context, db *gorm.DB, userID, dailySetID uuid.UUID) (*model.UserProgress, error) {
	logger := middleware.GetLogger(ctx)
	var progress model.UserProgress

	result := db.WithContext(ctx).Where("user_id = ? AND daily_set_id = ?", userID, dailySetID).First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding user progress", "error", result.Error, "daily_set_id", dailySetID.String())
		return nil, fmt.Errorf("gormProgressRepository.FindBySetID: %w", result.Error)
	}
	return &progress, nil
}
