package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
	return dir
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"APP_DATABASE_URL", "DATABASE_URL", "APP_JWT_SECRET_KEY", "AUTH_SECRET", "APP_AI_API_KEY", "GEMINI_API_KEY", "OPENAI_API_KEY", "APP_AUTH_ENABLED", "AUTH_ENABLED", "APP_AI_PROVIDER"} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig(t *testing.T) {
	clearEnv(t)
	dir := writeConfig(t, `
server:
  port: ":9090"
database:
  driver: sqlite
  url: "file:test.db"
jwt:
  secret_key: "s3cret"
  access_token_ttl: 2h
ai:
  provider: openai
flashcard:
  daily_set_size: 0
`)

	require.NoError(t, LoadConfig(dir))

	assert.Equal(t, ":9090", Cfg.Server.Port)
	assert.Equal(t, "sqlite", Cfg.Database.Driver)
	assert.Equal(t, "file:test.db", Cfg.Database.URL)
	assert.Equal(t, 2*time.Hour, Cfg.JWT.AccessTokenTTL)
	assert.Equal(t, DefaultOpenAIModel, Cfg.AI.Model, "モデル未指定ならプロバイダごとの既定値")
	assert.Equal(t, DefaultDailySetSize, Cfg.Flashcard.DailySetSize, "不正値は既定値に補正")
	assert.Equal(t, DefaultHistorySampleSize, Cfg.Flashcard.HistorySampleSize)
	assert.False(t, Cfg.Flashcard.SelectedWordsUserScoped)
	assert.True(t, Cfg.Auth.Enabled)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	clearEnv(t)
	dir := writeConfig(t, `
database:
  driver: postgres
  url: "postgres://from-file"
jwt:
  secret_key: "file-secret"
`)
	t.Setenv("DATABASE_URL", "postgres://from-env")
	t.Setenv("APP_AI_PROVIDER", "gemini")

	require.NoError(t, LoadConfig(dir))

	assert.Equal(t, "postgres://from-env", Cfg.Database.URL)
	assert.Equal(t, DefaultGeminiModel, Cfg.AI.Model)
}

func TestLoadConfig_APIKeyByProvider(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		appKey   string
		want     string
	}{
		{name: "openai は OPENAI_API_KEY", provider: "openai", want: "openai-key"},
		{name: "gemini は GEMINI_API_KEY", provider: "gemini", want: "gemini-key"},
		{name: "APP_AI_API_KEY が優先", provider: "openai", appKey: "app-key", want: "app-key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			dir := writeConfig(t, `
database:
  driver: sqlite
jwt:
  secret_key: "s3cret"
`)
			t.Setenv("APP_AI_PROVIDER", tt.provider)
			t.Setenv("GEMINI_API_KEY", "gemini-key")
			t.Setenv("OPENAI_API_KEY", "openai-key")
			t.Setenv("APP_AI_API_KEY", tt.appKey)

			require.NoError(t, LoadConfig(dir))

			assert.Equal(t, tt.provider, Cfg.AI.Provider)
			assert.Equal(t, tt.want, Cfg.AI.APIKey)
		})
	}
}

func TestLoadConfig_MissingSecret(t *testing.T) {
	clearEnv(t)
	dir := writeConfig(t, `
database:
  driver: postgres
auth:
  enabled: true
`)
	err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	base := Config{
		Database: DatabaseConfig{Driver: "postgres"},
		AI:       AIConfig{Provider: "gemini"},
		Auth:     AuthConfig{Enabled: false},
	}
	assert.NoError(t, base.Validate())

	badDriver := base
	badDriver.Database.Driver = "mysql"
	assert.Error(t, badDriver.Validate())

	badProvider := base
	badProvider.AI.Provider = "anthropic"
	assert.Error(t, badProvider.Validate())
}
