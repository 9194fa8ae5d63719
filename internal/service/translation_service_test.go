package service

import (
	"context"
	"errors"
	"testing"

	"go_vi_dict/internal/ai"
	"go_vi_dict/internal/model"
	"go_vi_dict/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeTranslator struct {
	out      string
	err      error
	requests []ai.Request
}

func (f *fakeTranslator) TranslateWithAI(ctx context.Context, req ai.Request) (string, error) {
	f.requests = append(f.requests, req)
	return f.out, f.err
}

type fakeMirror struct {
	data   map[model.CacheKey]*model.TranslateResult
	getErr error
	sets   int
}

func newFakeMirror() *fakeMirror {
	return &fakeMirror{data: map[model.CacheKey]*model.TranslateResult{}}
}

func (m *fakeMirror) Get(ctx context.Context, key model.CacheKey) (*model.TranslateResult, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if v, ok := m.data[key]; ok {
		cp := *v
		return &cp, nil
	}
	return nil, model.ErrNotFound
}

func (m *fakeMirror) Set(ctx context.Context, key model.CacheKey, translation string, isWord bool) error {
	m.sets++
	m.data[key] = &model.TranslateResult{Translation: translation, IsWord: isWord, FromCache: true}
	return nil
}

func (m *fakeMirror) Close() error { return nil }

func catKey() model.CacheKey {
	return model.CacheKey{SourceText: "cat", SourceLanguage: "en", TargetLanguage: "vi", PromptVersion: ai.PromptVersion}
}

func Test_translationService_Translate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		req           *model.TranslateRequest
		translator    *fakeTranslator
		setupMirror   func(m *fakeMirror)
		setupMock     func(m *mocks.TranslationRepository)
		want          *model.TranslateResult
		wantErr       error
		wantMessage   string
		wantAICalls   int
		wantMirrorSet int
	}{
		{
			name:        "異常系: 空白のみのテキスト",
			req:         &model.TranslateRequest{Text: "   ", SourceLanguage: "en", TargetLanguage: "vi"},
			translator:  &fakeTranslator{},
			setupMock:   func(m *mocks.TranslationRepository) {},
			wantErr:     model.ErrInvalidInput,
			wantMessage: "Please enter text to translate",
		},
		{
			name:       "異常系: 未対応の言語",
			req:        &model.TranslateRequest{Text: "cat", SourceLanguage: "ja", TargetLanguage: "vi"},
			translator: &fakeTranslator{},
			setupMock:  func(m *mocks.TranslationRepository) {},
			wantErr:    model.ErrInvalidInput,
		},
		{
			name:       "正常系: DBキャッシュにヒット (ミラーへ書き戻す)",
			req:        &model.TranslateRequest{Text: "  cat ", SourceLanguage: "en", TargetLanguage: "vi"},
			translator: &fakeTranslator{},
			setupMock: func(m *mocks.TranslationRepository) {
				m.On("FindByKey", ctx, mock.Anything, catKey()).
					Return(&model.TranslationCacheEntry{Translation: "con mèo", IsWord: true}, nil).Once()
			},
			want:          &model.TranslateResult{Translation: "con mèo", IsWord: true, FromCache: true},
			wantMirrorSet: 1,
		},
		{
			name:       "正常系: ミラーにヒットすればDBを見ない",
			req:        &model.TranslateRequest{Text: "cat", SourceLanguage: "en", TargetLanguage: "vi"},
			translator: &fakeTranslator{},
			setupMirror: func(m *fakeMirror) {
				m.data[catKey()] = &model.TranslateResult{Translation: "con mèo (redis)", FromCache: true}
			},
			setupMock: func(m *mocks.TranslationRepository) {},
			want:      &model.TranslateResult{Translation: "con mèo (redis)", IsWord: true, FromCache: true},
		},
		{
			name:       "正常系: ミラー障害はDBにフォールバック",
			req:        &model.TranslateRequest{Text: "cat", SourceLanguage: "en", TargetLanguage: "vi"},
			translator: &fakeTranslator{},
			setupMirror: func(m *fakeMirror) {
				m.getErr = errors.New("connection refused")
			},
			setupMock: func(m *mocks.TranslationRepository) {
				m.On("FindByKey", ctx, mock.Anything, catKey()).
					Return(&model.TranslationCacheEntry{Translation: "con mèo", IsWord: true}, nil).Once()
			},
			want:          &model.TranslateResult{Translation: "con mèo", IsWord: true, FromCache: true},
			wantMirrorSet: 1,
		},
		{
			name:       "正常系: キャッシュミスでAI翻訳して保存",
			req:        &model.TranslateRequest{Text: "cat", SourceLanguage: "en", TargetLanguage: "vi"},
			translator: &fakeTranslator{out: "**con mèo**"},
			setupMock: func(m *mocks.TranslationRepository) {
				m.On("FindByKey", ctx, mock.Anything, catKey()).Return(nil, model.ErrNotFound).Once()
				m.On("Upsert", ctx, mock.Anything, mock.MatchedBy(func(e *model.TranslationCacheEntry) bool {
					return e.SourceText == "cat" && e.Translation == "**con mèo**" && e.IsWord && e.PromptVersion == ai.PromptVersion
				})).Return(nil).Once()
			},
			want:          &model.TranslateResult{Translation: "**con mèo**", IsWord: true, FromCache: false},
			wantAICalls:   1,
			wantMirrorSet: 1,
		},
		{
			name:       "正常系: forceRegenerate はキャッシュを見ずに上書き",
			req:        &model.TranslateRequest{Text: "cat", SourceLanguage: "en", TargetLanguage: "vi", ForceRegenerate: true},
			translator: &fakeTranslator{out: "mèo"},
			setupMirror: func(m *fakeMirror) {
				m.data[catKey()] = &model.TranslateResult{Translation: "old"}
			},
			setupMock: func(m *mocks.TranslationRepository) {
				m.On("Upsert", ctx, mock.Anything, mock.AnythingOfType("*model.TranslationCacheEntry")).Return(nil).Once()
			},
			want:          &model.TranslateResult{Translation: "mèo", IsWord: true, FromCache: false},
			wantAICalls:   1,
			wantMirrorSet: 1,
		},
		{
			name:       "正常系: 文章は isWord=false",
			req:        &model.TranslateRequest{Text: "hello world", SourceLanguage: "en", TargetLanguage: "vi"},
			translator: &fakeTranslator{out: "xin chào thế giới"},
			setupMock: func(m *mocks.TranslationRepository) {
				m.On("FindByKey", ctx, mock.Anything, mock.Anything).Return(nil, model.ErrNotFound).Once()
				m.On("Upsert", ctx, mock.Anything, mock.Anything).Return(nil).Once()
			},
			want:          &model.TranslateResult{Translation: "xin chào thế giới", IsWord: false, FromCache: false},
			wantAICalls:   1,
			wantMirrorSet: 1,
		},
		{
			name:       "異常系: AIの失敗は upstream エラー",
			req:        &model.TranslateRequest{Text: "cat", SourceLanguage: "en", TargetLanguage: "vi"},
			translator: &fakeTranslator{err: errors.New("quota exceeded")},
			setupMock: func(m *mocks.TranslationRepository) {
				m.On("FindByKey", ctx, mock.Anything, catKey()).Return(nil, model.ErrNotFound).Once()
			},
			wantErr:     model.ErrUpstream,
			wantMessage: "Failed to translate. Please try again.",
			wantAICalls: 1,
		},
		{
			name:       "異常系: キャッシュ保存の失敗",
			req:        &model.TranslateRequest{Text: "cat", SourceLanguage: "en", TargetLanguage: "vi"},
			translator: &fakeTranslator{out: "con mèo"},
			setupMock: func(m *mocks.TranslationRepository) {
				m.On("FindByKey", ctx, mock.Anything, catKey()).Return(nil, model.ErrNotFound).Once()
				m.On("Upsert", ctx, mock.Anything, mock.Anything).Return(errors.New("db error")).Once()
			},
			wantErr:     model.ErrUpstream,
			wantMessage: "Failed to translate. Please try again.",
			wantAICalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewTranslationRepository(t)
			tt.setupMock(repo)
			mirror := newFakeMirror()
			if tt.setupMirror != nil {
				tt.setupMirror(mirror)
			}
			svc := NewTranslationService(nil, repo, tt.translator, mirror)

			got, err := svc.Translate(ctx, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				if tt.wantMessage != "" {
					var appErr *model.AppError
					require.ErrorAs(t, err, &appErr)
					assert.Equal(t, tt.wantMessage, appErr.Detail.Message)
				}
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.Len(t, tt.translator.requests, tt.wantAICalls)
			assert.Equal(t, tt.wantMirrorSet, mirror.sets)
		})
	}
}

func Test_translationService_NilMirror(t *testing.T) {
	repo := mocks.NewTranslationRepository(t)
	repo.On("FindByKey", mock.Anything, mock.Anything, mock.Anything).
		Return(&model.TranslationCacheEntry{Translation: "con mèo", IsWord: true}, nil).Once()

	svc := NewTranslationService(nil, repo, &fakeTranslator{}, nil)
	got, err := svc.Translate(context.Background(), &model.TranslateRequest{Text: "cat", SourceLanguage: "en", TargetLanguage: "vi"})
	require.NoError(t, err)
	assert.True(t, got.FromCache)
}
