// internal/model/word.go
package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	LanguageEnglish    = "en"
	LanguageVietnamese = "vi"
)

// ValidLanguage は対応言語かどうかを返します
func ValidLanguage(lang string) bool {
	return lang == LanguageEnglish || lang == LanguageVietnamese
}

// LanguageName はプロンプト用の言語名
func LanguageName(lang string) string {
	switch lang {
	case LanguageVietnamese:
		return "Vietnamese"
	default:
		return "English"
	}
}

// Word はサジェスト用の辞書語彙 (読み取り専用)
type Word struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Word      string    `gorm:"not null;uniqueIndex:uq_dict_words_word_language" json:"word"`
	Language  string    `gorm:"not null;uniqueIndex:uq_dict_words_word_language" json:"language"`
	CreatedAt time.Time `json:"created_at"`
}

func (Word) TableName() string {
	return "dict_words"
}

// Example は例文とその訳
type Example struct {
	En string `json:"en"`
	Vi string `json:"vi"`
}

// Definition は語義
type Definition struct {
	ViMeaning    string    `json:"vi_meaning"`
	EnDefinition string    `json:"en_definition"`
	Examples     []Example `json:"examples"`
}

// WordEntry はフラッシュカードと辞書ファイルで共通の単語スキーマ
type WordEntry struct {
	Word         string       `json:"word"`
	Phonetic     string       `json:"phonetic"`
	PartOfSpeech string       `json:"part_of_speech"`
	Definitions  []Definition `json:"definitions"`
}

// FirstMeaning はクイズの正解となる最初の語義 (ベトナム語)
func (e WordEntry) FirstMeaning() string {
	if len(e.Definitions) == 0 {
		return ""
	}
	return e.Definitions[0].ViMeaning
}

// Validate は境界で受け取ったエントリを検証します
func (e WordEntry) Validate() error {
	if strings.TrimSpace(e.Word) == "" {
		return fmt.Errorf("%w: word is required", ErrInvalidInput)
	}
	if len(e.Definitions) == 0 {
		return fmt.Errorf("%w: %q has no definitions", ErrInvalidInput, e.Word)
	}
	if strings.TrimSpace(e.Definitions[0].ViMeaning) == "" {
		return fmt.Errorf("%w: %q has no vi_meaning in its first definition", ErrInvalidInput, e.Word)
	}
	return nil
}

// SuggestionsResponse はサジェストAPIのレスポンス
type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}
