// internal/model/progress.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserProgress はデイリーセットの学習結果を表します。(user, daily_set) ごとに1行
type UserProgress struct {
	ID               uuid.UUID                `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           uuid.UUID                `gorm:"type:uuid;not null;uniqueIndex:uq_dict_user_progress_user_set" json:"userId"`
	DailySetID       uuid.UUID                `gorm:"type:uuid;not null;uniqueIndex:uq_dict_user_progress_user_set" json:"dailySetId"`
	CorrectAnswers   datatypes.JSONSlice[int] `gorm:"not null" json:"correctAnswers"`
	IncorrectAnswers datatypes.JSONSlice[int] `gorm:"not null" json:"incorrectAnswers"`
	Score            int                      `gorm:"not null;default:0" json:"score"`
	CompletedAt      time.Time                `gorm:"not null" json:"completedAt"`
	CreatedAt        time.Time                `json:"createdAt"`
	UpdatedAt        time.Time                `json:"updatedAt"`

	// 関連 (Preload用)
	DailySet *DailyWordSet `gorm:"foreignKey:DailySetID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (UserProgress) TableName() string {
	return "dict_user_progress"
}

// SaveProgressRequest は学習結果保存のリクエストボディ
type SaveProgressRequest struct {
	Date             string `json:"date" validate:"required,datetime=2006-01-02"`
	CorrectAnswers   []int  `json:"correctAnswers" validate:"required,dive,min=0"`
	IncorrectAnswers []int  `json:"incorrectAnswers" validate:"required,dive,min=0"`
	Score            *int   `json:"score" validate:"required,min=0,max=100"`
}
