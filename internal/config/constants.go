// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "vi-dict"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort        = ":8080"
	DefaultLogLevel          = "info"
	DefaultDatabaseDriver    = "postgres"
	DefaultAuthEnabled       = true
	DefaultJWTTTL            = 30 * 24 * time.Hour
	DefaultSessionCookieName = "vi_dict_session"
	DefaultAIProvider        = "gemini"
	DefaultGeminiModel       = "gemini-2.5-flash-lite"
	DefaultOpenAIModel       = "gpt-4o-mini"
	DefaultAITimeout         = 60 * time.Second
	DefaultDictionaryPath    = "data/words.jsonl"
)

// フラッシュカード関連
const (
	DefaultDailySetSize        = 20
	DefaultHistorySampleSize   = 100
	DefaultCandidatePoolSize   = 50
	DefaultSelectedWordsSample = 20
	DefaultSuggestionLimit     = 10
	DefaultSuggestionMinPrefix = 5
)
