// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres | sqlite
	URL             string        `mapstructure:"url"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type AuthConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	CookieName   string `mapstructure:"cookie_name"`
	CookieSecure bool   `mapstructure:"cookie_secure"`
}

type JWTConfig struct {
	SecretKey      string        `mapstructure:"secret_key"`
	AccessTokenTTL time.Duration `mapstructure:"access_token_ttl"`
}

type BreakerConfig struct {
	Enabled          bool          `mapstructure:"enabled"`
	MaxRequests      uint32        `mapstructure:"max_requests"`
	Interval         time.Duration `mapstructure:"interval"`
	Timeout          time.Duration `mapstructure:"timeout"`
	FailureThreshold uint32        `mapstructure:"failure_threshold"`
}

type AIConfig struct {
	Provider string        `mapstructure:"provider"` // gemini | openai
	APIKey   string        `mapstructure:"api_key"`
	Model    string        `mapstructure:"model"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Breaker  BreakerConfig `mapstructure:"breaker"`
}

type RedisConfig struct {
	Addr      string `mapstructure:"addr"` // 空ならミラーを無効化
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

type DictionaryConfig struct {
	Path string `mapstructure:"path"`
}

type FlashcardConfig struct {
	DailySetSize            int  `mapstructure:"daily_set_size"`
	HistorySampleSize       int  `mapstructure:"history_sample_size"`
	CandidatePoolSize       int  `mapstructure:"candidate_pool_size"`
	SelectedWordsSample     int  `mapstructure:"selected_words_sample"`
	SelectedWordsUserScoped bool `mapstructure:"selected_words_user_scoped"`
}

type AppConfig struct {
	SuggestionLimit     int `mapstructure:"suggestion_limit"`
	SuggestionMinPrefix int `mapstructure:"suggestion_min_prefix"`
}

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
	Database   DatabaseConfig   `mapstructure:"database"`
	CORS       CORSConfig       `mapstructure:"cors"`
	Auth       AuthConfig       `mapstructure:"auth"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	AI         AIConfig         `mapstructure:"ai"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Flashcard  FlashcardConfig  `mapstructure:"flashcard"`
	App        AppConfig        `mapstructure:"app"`
}

var Cfg Config

// setDefaults は未設定のキーに既定値を与えます (環境変数の自動バインドにも必要)
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("server.request_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("log.level", DefaultLogLevel)

	v.SetDefault("database.driver", DefaultDatabaseDriver)
	v.SetDefault("database.url", "")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", time.Hour)
	v.SetDefault("database.auto_migrate", false)

	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"})
	v.SetDefault("cors.exposed_headers", []string{"X-Request-ID"})
	v.SetDefault("cors.allow_credentials", true)
	v.SetDefault("cors.max_age", 300)

	v.SetDefault("auth.enabled", DefaultAuthEnabled)
	v.SetDefault("auth.cookie_name", DefaultSessionCookieName)
	v.SetDefault("auth.cookie_secure", false)
	v.SetDefault("jwt.secret_key", "")
	v.SetDefault("jwt.access_token_ttl", DefaultJWTTTL)

	v.SetDefault("ai.provider", DefaultAIProvider)
	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.model", "")
	v.SetDefault("ai.timeout", DefaultAITimeout)
	v.SetDefault("ai.breaker.enabled", true)
	v.SetDefault("ai.breaker.max_requests", 1)
	v.SetDefault("ai.breaker.interval", time.Minute)
	v.SetDefault("ai.breaker.timeout", 30*time.Second)
	v.SetDefault("ai.breaker.failure_threshold", 5)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key_prefix", "vi-dict:translation:")

	v.SetDefault("dictionary.path", DefaultDictionaryPath)

	v.SetDefault("flashcard.daily_set_size", DefaultDailySetSize)
	v.SetDefault("flashcard.history_sample_size", DefaultHistorySampleSize)
	v.SetDefault("flashcard.candidate_pool_size", DefaultCandidatePoolSize)
	v.SetDefault("flashcard.selected_words_sample", DefaultSelectedWordsSample)
	v.SetDefault("flashcard.selected_words_user_scoped", false)

	v.SetDefault("app.suggestion_limit", DefaultSuggestionLimit)
	v.SetDefault("app.suggestion_min_prefix", DefaultSuggestionMinPrefix)
}

// LoadConfig は path 配下の config.yaml と APP_ 接頭辞の環境変数から Cfg を読み込みます
func LoadConfig(path string) error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(".")

	setDefaults(v)

	// 例: APP_DATABASE_URL, APP_AI_API_KEY
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// よく使われる環境変数名も受け付ける
	_ = v.BindEnv("database.url", "APP_DATABASE_URL", "DATABASE_URL")
	_ = v.BindEnv("jwt.secret_key", "APP_JWT_SECRET_KEY", "AUTH_SECRET")
	_ = v.BindEnv("auth.enabled", "APP_AUTH_ENABLED", "AUTH_ENABLED")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	// APIキーはプロバイダに対応する環境変数だけを見る
	_ = v.BindEnv("ai.api_key", "APP_AI_API_KEY", providerAPIKeyEnv(v.GetString("ai.provider")))

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}
	applyFallbacks(&cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}

	Cfg = cfg
	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Database Driver: %s", Cfg.Database.Driver)
	log.Printf("AI Provider: %s (model %s)", Cfg.AI.Provider, Cfg.AI.Model)
	log.Printf("Auth Enabled: %t", Cfg.Auth.Enabled)
	return nil
}

// providerAPIKeyEnv はプロバイダごとのAPIキー環境変数名を返します
func providerAPIKeyEnv(provider string) string {
	if provider == "openai" {
		return "OPENAI_API_KEY"
	}
	return "GEMINI_API_KEY"
}

// applyFallbacks は不正値や依存する既定値を補正します
func applyFallbacks(cfg *Config) {
	if cfg.AI.Model == "" {
		if cfg.AI.Provider == "openai" {
			cfg.AI.Model = DefaultOpenAIModel
		} else {
			cfg.AI.Model = DefaultGeminiModel
		}
	}
	if cfg.Flashcard.DailySetSize <= 0 {
		log.Println("Flashcard daily set size not set or invalid, using default")
		cfg.Flashcard.DailySetSize = DefaultDailySetSize
	}
	if cfg.Flashcard.HistorySampleSize <= 0 {
		cfg.Flashcard.HistorySampleSize = DefaultHistorySampleSize
	}
	if cfg.Flashcard.CandidatePoolSize <= 0 {
		cfg.Flashcard.CandidatePoolSize = DefaultCandidatePoolSize
	}
	if cfg.Flashcard.SelectedWordsSample <= 0 {
		cfg.Flashcard.SelectedWordsSample = DefaultSelectedWordsSample
	}
	if cfg.App.SuggestionLimit <= 0 {
		cfg.App.SuggestionLimit = DefaultSuggestionLimit
	}
	if cfg.App.SuggestionMinPrefix <= 0 {
		cfg.App.SuggestionMinPrefix = DefaultSuggestionMinPrefix
	}
	if cfg.JWT.AccessTokenTTL <= 0 {
		cfg.JWT.AccessTokenTTL = DefaultJWTTTL
	}
}

// Validate は起動に必須の設定を確認します
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("config: unsupported database.driver %q", c.Database.Driver)
	}
	switch c.AI.Provider {
	case "gemini", "openai":
	default:
		return fmt.Errorf("config: unsupported ai.provider %q", c.AI.Provider)
	}
	if c.Auth.Enabled && c.JWT.SecretKey == "" {
		return errors.New("config: jwt.secret_key is required when auth is enabled")
	}
	return nil
}
