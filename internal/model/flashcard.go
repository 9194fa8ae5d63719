package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DateLayout は日付キーの形式 (YYYY-MM-DD)
const DateLayout = "2006-01-02"

// DailyWordSet はユーザーがその日に選んだ単語セット。(user, date) ごとに1行
type DailyWordSet struct {
	ID        uuid.UUID                      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID                      `gorm:"type:uuid;not null;uniqueIndex:uq_dict_daily_word_sets_user_date" json:"userId"`
	Date      string                         `gorm:"not null;uniqueIndex:uq_dict_daily_word_sets_user_date" json:"date"`
	WordData  datatypes.JSONSlice[WordEntry] `gorm:"not null" json:"wordData"`
	CreatedAt time.Time                      `json:"createdAt"`
	UpdatedAt time.Time                      `json:"updatedAt"`
}

func (DailyWordSet) TableName() string {
	return "dict_daily_word_sets"
}

// SelectedWord は過去に選択した単語の履歴 (追記のみ)
type SelectedWord struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	Word         string    `gorm:"not null" json:"word"`
	SelectedDate string    `gorm:"not null" json:"selectedDate"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (SelectedWord) TableName() string {
	return "dict_selected_words"
}

// SaveDailySetRequest はデイリーセット保存のリクエストボディ
type SaveDailySetRequest struct {
	Date     string      `json:"date"`
	WordData []WordEntry `json:"wordData"`
}

// BulkSelectedWordsRequest は選択履歴の一括保存リクエスト
type BulkSelectedWordsRequest struct {
	Words        []string `json:"words" validate:"required,min=1,dive,required"`
	SelectedDate string   `json:"selectedDate" validate:"required,datetime=2006-01-02"`
}

// QuizQuestion はクイズ1問分。正解は含めない
type QuizQuestion struct {
	Index        int      `json:"index"`
	Word         string   `json:"word"`
	Phonetic     string   `json:"phonetic"`
	PartOfSpeech string   `json:"partOfSpeech"`
	Options      []string `json:"options"`
}

// HistoryAnswer は復習モードの回答
type HistoryAnswer struct {
	Word   string `json:"word" validate:"required"`
	Answer string `json:"answer"`
}

// GradeHistoryRequest は復習モード採点のリクエストボディ
type GradeHistoryRequest struct {
	Answers []HistoryAnswer `json:"answers" validate:"required,min=1,dive"`
}

// GradeResult は採点結果 (インデックスは回答順)
type GradeResult struct {
	CorrectAnswers   []int `json:"correctAnswers"`
	IncorrectAnswers []int `json:"incorrectAnswers"`
	Score            int   `json:"score"`
}
