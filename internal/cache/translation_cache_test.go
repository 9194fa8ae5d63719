package cache

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"go_vi_dict/internal/config"
	"go_vi_dict/internal/model"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	k := model.CacheKey{SourceText: "hello world", SourceLanguage: "en", TargetLanguage: "vi", PromptVersion: "v1"}

	got := Key("vi-dict:translation:", k)
	assert.True(t, strings.HasPrefix(got, "vi-dict:translation:v1:en:vi:"))
	assert.Len(t, strings.TrimPrefix(got, "vi-dict:translation:v1:en:vi:"), 64)

	other := k
	other.PromptVersion = "v2"
	assert.NotEqual(t, got, Key("vi-dict:translation:", other), "プロンプトバージョンが違えば別キー")

	reversed := k
	reversed.SourceLanguage, reversed.TargetLanguage = "vi", "en"
	assert.NotEqual(t, got, Key("vi-dict:translation:", reversed))
}

func TestNoop(t *testing.T) {
	var c TranslationCache = Noop{}
	ctx := context.Background()
	key := model.CacheKey{SourceText: "cat"}

	require.NoError(t, c.Set(ctx, key, "con mèo", true))
	_, err := c.Get(ctx, key)
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.NoError(t, c.Close())
}

func TestNewRedisTranslationCache_Errors(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := NewRedisTranslationCache(context.Background(), config.RedisConfig{}, logger)
	assert.Error(t, err)

	_, err = NewRedisTranslationCache(context.Background(), config.RedisConfig{Addr: "127.0.0.1:1"}, logger)
	assert.ErrorContains(t, err, "redis ping")
}

func TestRedisTranslationCache_RoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	c, err := NewRedisTranslationCache(ctx, config.RedisConfig{Addr: mr.Addr(), KeyPrefix: "test:"}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	key := model.CacheKey{SourceText: "cat", SourceLanguage: "en", TargetLanguage: "vi", PromptVersion: "v1"}

	t.Run("未登録のキーは ErrNotFound", func(t *testing.T) {
		_, err := c.Get(ctx, key)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("書き込んだ値を期限なしで読み戻せる", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, key, "con mèo", true))

		raw, err := mr.Get(Key("test:", key))
		require.NoError(t, err)
		assert.JSONEq(t, `{"translation":"con mèo","isWord":true}`, raw)
		assert.Zero(t, mr.TTL(Key("test:", key)))

		got, err := c.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, &model.TranslateResult{Translation: "con mèo", IsWord: true, FromCache: true}, got)
	})

	t.Run("壊れた値はデコードエラー", func(t *testing.T) {
		broken := key
		broken.SourceText = "dog"
		require.NoError(t, mr.Set(Key("test:", broken), "not-json"))

		_, err := c.Get(ctx, broken)
		require.Error(t, err)
		assert.NotErrorIs(t, err, model.ErrNotFound)
		assert.ErrorContains(t, err, "decode")
	})

	t.Run("サーバーが落ちていればエラー", func(t *testing.T) {
		mr.Close()

		_, err := c.Get(ctx, key)
		require.Error(t, err)
		assert.NotErrorIs(t, err, model.ErrNotFound)
		assert.Error(t, c.Set(ctx, key, "con mèo", true))
	})
}
