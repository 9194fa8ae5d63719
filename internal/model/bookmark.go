package model

import (
	"time"

	"github.com/google/uuid"
)

// Bookmark はユーザーが保存した単語
type Bookmark struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_dict_bookmarks_user_word" json:"userId"`
	Word        string    `gorm:"not null;uniqueIndex:uq_dict_bookmarks_user_word" json:"word"`
	Language    string    `gorm:"not null;uniqueIndex:uq_dict_bookmarks_user_word" json:"language"`
	Translation string    `gorm:"not null" json:"translation"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
}

func (Bookmark) TableName() string {
	return "dict_bookmarks"
}

// AddBookmarkRequest はブックマーク追加のリクエストボディ
type AddBookmarkRequest struct {
	Word        string `json:"word" validate:"required,max=200"`
	Language    string `json:"language" validate:"required,oneof=en vi"`
	Translation string `json:"translation" validate:"required"`
}
