package model

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// TranslationCacheEntry は生成済み翻訳のキャッシュ行。期限切れはない
// 本文は索引の行サイズ上限を超え得るので、一意キーには SourceHash を使う
type TranslationCacheEntry struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	SourceText     string    `gorm:"not null"`
	SourceHash     string    `gorm:"not null;uniqueIndex:uq_dict_translation_cache_key"`
	SourceLanguage string    `gorm:"not null;uniqueIndex:uq_dict_translation_cache_key"`
	TargetLanguage string    `gorm:"not null;uniqueIndex:uq_dict_translation_cache_key"`
	PromptVersion  string    `gorm:"not null;uniqueIndex:uq_dict_translation_cache_key"`
	Translation    string    `gorm:"not null"`
	IsWord         bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (TranslationCacheEntry) TableName() string {
	return "dict_translation_cache"
}

// CacheKey はキャッシュ行を一意に特定するキー
type CacheKey struct {
	SourceText     string
	SourceLanguage string
	TargetLanguage string
	PromptVersion  string
}

// HashSourceText は本文の sha256 を16進で返します
func HashSourceText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

func (k CacheKey) SourceHash() string {
	return HashSourceText(k.SourceText)
}

// TranslateRequest は翻訳APIのリクエストボディ
type TranslateRequest struct {
	Text            string `json:"text"`
	SourceLanguage  string `json:"sourceLanguage" validate:"required,oneof=en vi"`
	TargetLanguage  string `json:"targetLanguage" validate:"required,oneof=en vi"`
	ForceRegenerate bool   `json:"forceRegenerate"`
}

// TranslateResult は翻訳結果
type TranslateResult struct {
	Translation string `json:"translation"`
	IsWord      bool   `json:"isWord"`
	FromCache   bool   `json:"fromCache"`
}
