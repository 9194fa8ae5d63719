// Package cache は翻訳キャッシュのプロセス外ミラー (Redis) を提供します。
// 正はあくまで DB で、ミラーの障害は翻訳を失敗させません。
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go_vi_dict/internal/config"
	"go_vi_dict/internal/model"

	goredis "github.com/redis/go-redis/v9"
)

// TranslationCache は翻訳キャッシュのミラー。見つからない場合は model.ErrNotFound を返します
type TranslationCache interface {
	Get(ctx context.Context, key model.CacheKey) (*model.TranslateResult, error)
	Set(ctx context.Context, key model.CacheKey, translation string, isWord bool) error
	Close() error
}

type cachedValue struct {
	Translation string `json:"translation"`
	IsWord      bool   `json:"isWord"`
}

// Key はミラー上のキーを組み立てます。本文は長くなり得るのでハッシュ化します
func Key(prefix string, key model.CacheKey) string {
	return fmt.Sprintf("%s%s:%s:%s:%s", prefix, key.PromptVersion, key.SourceLanguage, key.TargetLanguage, key.SourceHash())
}

type redisTranslationCache struct {
	rdb    *goredis.Client
	prefix string
}

// NewRedisTranslationCache は Redis に接続して疎通を確認します
func NewRedisTranslationCache(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (TranslationCache, error) {
	if cfg.Addr == "" {
		return nil, errors.New("cache: redis addr is empty")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	logger.Info("Translation cache mirror connected", slog.String("addr", cfg.Addr))
	return &redisTranslationCache{rdb: rdb, prefix: cfg.KeyPrefix}, nil
}

func (c *redisTranslationCache) Get(ctx context.Context, key model.CacheKey) (*model.TranslateResult, error) {
	raw, err := c.rdb.Get(ctx, Key(c.prefix, key)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("redisTranslationCache.Get: %w", err)
	}

	var v cachedValue
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("redisTranslationCache.Get: decode: %w", err)
	}
	return &model.TranslateResult{Translation: v.Translation, IsWord: v.IsWord, FromCache: true}, nil
}

// Set は期限なしで書き込みます (DB のキャッシュ行と同じく失効しない)
func (c *redisTranslationCache) Set(ctx context.Context, key model.CacheKey, translation string, isWord bool) error {
	raw, err := json.Marshal(cachedValue{Translation: translation, IsWord: isWord})
	if err != nil {
		return err
	}
	if err := c.rdb.Set(ctx, Key(c.prefix, key), raw, 0).Err(); err != nil {
		return fmt.Errorf("redisTranslationCache.Set: %w", err)
	}
	return nil
}

func (c *redisTranslationCache) Close() error {
	return c.rdb.Close()
}

// Noop はミラー無効時の実装
type Noop struct{}

func (Noop) Get(context.Context, model.CacheKey) (*model.TranslateResult, error) {
	return nil, model.ErrNotFound
}

func (Noop) Set(context.Context, model.CacheKey, string, bool) error { return nil }

func (Noop) Close() error { return nil }
