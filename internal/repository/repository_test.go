package repository

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"go_vi_dict/internal/config"
	"go_vi_dict/internal/model"
	"go_vi_dict/internal/repository/migrations"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB はテストごとに独立したインメモリSQLiteを用意します
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())

	db, err := NewDB(config.DatabaseConfig{Driver: "sqlite", URL: dsn, MaxOpenConns: 1}, logger)
	require.NoError(t, err)
	require.NoError(t, RunMigrations(context.Background(), db, "sqlite", logger))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func createUser(t *testing.T, db *gorm.DB) *model.User {
	t.Helper()
	user := &model.User{ID: uuid.New(), Email: uuid.NewString() + "@example.com", PasswordHash: "x", Name: "tester"}
	require.NoError(t, NewGormUserRepository().Create(context.Background(), db, user))
	return user
}

func TestEmbeddedMigrations(t *testing.T) {
	goose.SetBaseFS(migrations.FS)
	defer goose.SetBaseFS(nil)

	ms, err := goose.CollectMigrations(".", 0, goose.MaxVersion)
	require.NoError(t, err)
	require.NotEmpty(t, ms)
	assert.Equal(t, int64(1), ms[0].Version)
	assert.Equal(t, int64(2), ms[len(ms)-1].Version)
}

func TestNewDB_UnsupportedDriver(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	_, err := NewDB(config.DatabaseConfig{Driver: "mysql"}, logger)
	assert.Error(t, err)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c\\d`, escapeLike(`c\d`))
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormUserRepository()

	user := &model.User{ID: uuid.New(), Email: "a@example.com", PasswordHash: "hash", Name: "A"}
	require.NoError(t, repo.Create(ctx, db, user))

	t.Run("重複メールは ErrConflict", func(t *testing.T) {
		dup := &model.User{ID: uuid.New(), Email: "a@example.com", PasswordHash: "hash", Name: "B"}
		assert.ErrorIs(t, repo.Create(ctx, db, dup), model.ErrConflict)
	})

	t.Run("メールで検索", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, db, "a@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
	})

	t.Run("存在しないIDは ErrNotFound", func(t *testing.T) {
		_, err := repo.FindByID(ctx, db, uuid.New())
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestWordRepository_PrefixAndContaining(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormWordRepository()

	for _, w := range []string{"cat", "Car", "scale", "dog", "ca%t"} {
		require.NoError(t, db.Create(&model.Word{ID: uuid.New(), Word: w, Language: model.LanguageEnglish}).Error)
	}
	require.NoError(t, db.Create(&model.Word{ID: uuid.New(), Word: "cau", Language: model.LanguageVietnamese}).Error)

	prefix, err := repo.FindByPrefix(ctx, db, model.LanguageEnglish, "ca", 10)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Car", "ca%t", "cat"}, prefix, "大文字小文字を区別しない/言語で絞り込む")

	literal, err := repo.FindByPrefix(ctx, db, model.LanguageEnglish, "ca%", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"ca%t"}, literal, "% はリテラルとして扱う")

	containing, err := repo.FindContaining(ctx, db, model.LanguageEnglish, "ca", 10)
	require.NoError(t, err)
	assert.Contains(t, containing, "scale")

	limited, err := repo.FindContaining(ctx, db, model.LanguageEnglish, "a", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestTranslationRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormTranslationRepository()
	key := model.CacheKey{SourceText: "cat", SourceLanguage: "en", TargetLanguage: "vi", PromptVersion: "v1"}

	_, err := repo.FindByKey(ctx, db, key)
	assert.ErrorIs(t, err, model.ErrNotFound)

	first := &model.TranslationCacheEntry{SourceText: "cat", SourceLanguage: "en", TargetLanguage: "vi", PromptVersion: "v1", Translation: "con mèo", IsWord: true}
	require.NoError(t, repo.Upsert(ctx, db, first))

	stored, err := repo.FindByKey(ctx, db, key)
	require.NoError(t, err)
	assert.Equal(t, "con mèo", stored.Translation)
	assert.True(t, stored.IsWord)

	second := &model.TranslationCacheEntry{SourceText: "cat", SourceLanguage: "en", TargetLanguage: "vi", PromptVersion: "v1", Translation: "mèo (regenerated)", IsWord: true}
	require.NoError(t, repo.Upsert(ctx, db, second))

	updated, err := repo.FindByKey(ctx, db, key)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, updated.ID, "同じキーは行を更新する")
	assert.Equal(t, "mèo (regenerated)", updated.Translation)

	var count int64
	require.NoError(t, db.Model(&model.TranslationCacheEntry{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// プロンプトバージョンが違えば別の行
	other := &model.TranslationCacheEntry{SourceText: "cat", SourceLanguage: "en", TargetLanguage: "vi", PromptVersion: "v2", Translation: "mèo v2"}
	require.NoError(t, repo.Upsert(ctx, db, other))
	require.NoError(t, db.Model(&model.TranslationCacheEntry{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestTranslationRepository_LongSourceText(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormTranslationRepository()

	long := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 300)
	require.Greater(t, len(long), 10*1024)
	key := model.CacheKey{SourceText: long, SourceLanguage: "en", TargetLanguage: "vi", PromptVersion: "v1"}

	entry := &model.TranslationCacheEntry{SourceText: long, SourceLanguage: "en", TargetLanguage: "vi", PromptVersion: "v1", Translation: "Con cáo nâu nhanh nhẹn..."}
	require.NoError(t, repo.Upsert(ctx, db, entry))
	assert.Equal(t, key.SourceHash(), entry.SourceHash)
	assert.Len(t, entry.SourceHash, 64)

	stored, err := repo.FindByKey(ctx, db, key)
	require.NoError(t, err)
	assert.Equal(t, long, stored.SourceText)
	assert.Equal(t, "Con cáo nâu nhanh nhẹn...", stored.Translation)

	require.NoError(t, repo.Upsert(ctx, db, &model.TranslationCacheEntry{SourceText: long, SourceLanguage: "en", TargetLanguage: "vi", PromptVersion: "v1", Translation: "bản dịch mới"}))
	updated, err := repo.FindByKey(ctx, db, key)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, updated.ID)
	assert.Equal(t, "bản dịch mới", updated.Translation)

	// 末尾だけ違う本文は別の行
	_, err = repo.FindByKey(ctx, db, model.CacheKey{SourceText: long + "!", SourceLanguage: "en", TargetLanguage: "vi", PromptVersion: "v1"})
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestBookmarkRepository(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormBookmarkRepository()
	user := createUser(t, db)
	other := createUser(t, db)

	base := time.Now().Add(-time.Hour)
	words := []string{"apple", "pineapple", "banana"}
	for i, w := range words {
		require.NoError(t, repo.Create(ctx, db, &model.Bookmark{
			ID: uuid.New(), UserID: user.ID, Word: w, Language: "en", Translation: w + " vi",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	t.Run("同じ (user, word, language) は ErrConflict", func(t *testing.T) {
		err := repo.Create(ctx, db, &model.Bookmark{ID: uuid.New(), UserID: user.ID, Word: "apple", Language: "en", Translation: "táo"})
		assert.ErrorIs(t, err, model.ErrConflict)
	})

	t.Run("別ユーザーなら同じ単語も登録できる", func(t *testing.T) {
		err := repo.Create(ctx, db, &model.Bookmark{ID: uuid.New(), UserID: other.ID, Word: "apple", Language: "en", Translation: "táo"})
		assert.NoError(t, err)
	})

	t.Run("空クエリは新しい順に全件", func(t *testing.T) {
		all, err := repo.Search(ctx, db, user.ID, "")
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "banana", all[0].Word)
		assert.Equal(t, "apple", all[2].Word)
	})

	t.Run("部分一致 (大文字小文字を区別しない)", func(t *testing.T) {
		found, err := repo.Search(ctx, db, user.ID, "APPLE")
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, "pineapple", found[0].Word)
	})

	t.Run("他人のブックマークは削除されない", func(t *testing.T) {
		all, err := repo.Search(ctx, db, user.ID, "banana")
		require.NoError(t, err)
		require.Len(t, all, 1)

		require.NoError(t, repo.Delete(ctx, db, other.ID, all[0].ID))
		still, err := repo.Search(ctx, db, user.ID, "banana")
		require.NoError(t, err)
		assert.Len(t, still, 1)

		require.NoError(t, repo.Delete(ctx, db, user.ID, all[0].ID))
		gone, err := repo.Search(ctx, db, user.ID, "banana")
		require.NoError(t, err)
		assert.Empty(t, gone)

		assert.NoError(t, repo.Delete(ctx, db, user.ID, uuid.New()), "存在しないIDは何もしない")
	})
}

func sampleEntries(words ...string) []model.WordEntry {
	entries := make([]model.WordEntry, 0, len(words))
	for _, w := range words {
		entries = append(entries, model.WordEntry{
			Word:        w,
			Definitions: []model.Definition{{ViMeaning: w + "-vi", EnDefinition: w + "-en"}},
		})
	}
	return entries
}

func TestDailySetRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormDailySetRepository()
	user := createUser(t, db)

	first := &model.DailyWordSet{UserID: user.ID, Date: "2025-01-01", WordData: sampleEntries("cat", "dog")}
	require.NoError(t, repo.Upsert(ctx, db, first))
	originalID := first.ID

	replacement := &model.DailyWordSet{UserID: user.ID, Date: "2025-01-01", WordData: sampleEntries("bird")}
	require.NoError(t, repo.Upsert(ctx, db, replacement))

	assert.Equal(t, originalID, replacement.ID, "既存日付の更新ではIDが変わらない")
	require.Len(t, replacement.WordData, 1)
	assert.Equal(t, "bird", replacement.WordData[0].Word)

	next := &model.DailyWordSet{UserID: user.ID, Date: "2025-01-02", WordData: sampleEntries("fish")}
	require.NoError(t, repo.Upsert(ctx, db, next))
	assert.NotEqual(t, originalID, next.ID)

	found, err := repo.FindByDate(ctx, db, user.ID, "2025-01-01")
	require.NoError(t, err)
	assert.Equal(t, "bird-vi", found.WordData[0].FirstMeaning())

	_, err = repo.FindByDate(ctx, db, user.ID, "2030-01-01")
	assert.ErrorIs(t, err, model.ErrNotFound)

	others, err := repo.FindAllExceptDate(ctx, db, user.ID, "2025-01-02")
	require.NoError(t, err)
	require.Len(t, others, 1)
	assert.Equal(t, "2025-01-01", others[0].Date)
}

func TestProgressRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	user := createUser(t, db)

	set := &model.DailyWordSet{UserID: user.ID, Date: "2025-02-01", WordData: sampleEntries("a", "b", "c")}
	require.NoError(t, NewGormDailySetRepository().Upsert(ctx, db, set))

	repo := NewGormProgressRepository()
	_, err := repo.FindBySetID(ctx, db, user.ID, set.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	p := &model.UserProgress{UserID: user.ID, DailySetID: set.ID, CorrectAnswers: []int{0}, IncorrectAnswers: []int{1, 2}, Score: 33, CompletedAt: time.Now()}
	require.NoError(t, repo.Upsert(ctx, db, p))
	firstID := p.ID

	again := &model.UserProgress{UserID: user.ID, DailySetID: set.ID, CorrectAnswers: []int{0, 1, 2}, IncorrectAnswers: []int{}, Score: 100, CompletedAt: time.Now()}
	require.NoError(t, repo.Upsert(ctx, db, again))

	assert.Equal(t, firstID, again.ID, "後勝ちで同じ行を更新")
	assert.Equal(t, 100, again.Score)
	assert.Equal(t, []int{0, 1, 2}, []int(again.CorrectAnswers))
	assert.Empty(t, again.IncorrectAnswers)
}

func TestSelectedWordRepository(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormSelectedWordRepository()
	user := createUser(t, db)
	other := createUser(t, db)

	n, err := repo.CreateBatch(ctx, db, []*model.SelectedWord{
		{UserID: user.ID, Word: "cat", SelectedDate: "2025-01-01"},
		{UserID: user.ID, Word: "dog", SelectedDate: "2025-01-01"},
		{UserID: user.ID, Word: "cat", SelectedDate: "2025-01-02"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	_, err = repo.CreateBatch(ctx, db, []*model.SelectedWord{{UserID: other.ID, Word: "owl", SelectedDate: "2025-01-01"}})
	require.NoError(t, err)

	words, err := repo.ListWordsByUser(ctx, db, user.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"cat", "dog"}, words)

	scoped, err := repo.Sample(ctx, db, &user.ID, 20)
	require.NoError(t, err)
	assert.Len(t, scoped, 3)
	assert.NotContains(t, scoped, "owl")

	all, err := repo.Sample(ctx, db, nil, 20)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	limited, err := repo.Sample(ctx, db, nil, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	zero, err := repo.CreateBatch(ctx, db, nil)
	require.NoError(t, err)
	assert.Zero(t, zero)
}
