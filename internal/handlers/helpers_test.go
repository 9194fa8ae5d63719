// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go_vi_dict/internal/config"
	"go_vi_dict/internal/dictionary"
	"go_vi_dict/internal/handlers"
	"go_vi_dict/internal/middleware"
	"go_vi_dict/internal/model"
	"go_vi_dict/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCookieName = "test_session"

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

const sampleDictionary = `{"word":"cat","phonetic":"/kæt/","part_of_speech":"noun","definitions":[{"vi_meaning":"con mèo","en_definition":"a small domesticated feline","examples":[]}]}
{"word":"dog","phonetic":"/dɒɡ/","part_of_speech":"noun","definitions":[{"vi_meaning":"con chó","en_definition":"a domesticated canine","examples":[]}]}
`

// testAPI はサービスをモックにしたルーター一式
type testAPI struct {
	router      http.Handler
	auth        *mocks.MockAuthService
	translation *mocks.MockTranslationService
	word        *mocks.MockWordService
	bookmark    *mocks.MockBookmarkService
	flashcard   *mocks.MockFlashcardService
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	catalogue, err := dictionary.Read(strings.NewReader(sampleDictionary), discardLogger)
	require.NoError(t, err)

	api := &testAPI{
		auth:        mocks.NewMockAuthService(t),
		translation: mocks.NewMockTranslationService(t),
		word:        mocks.NewMockWordService(t),
		bookmark:    mocks.NewMockBookmarkService(t),
		flashcard:   mocks.NewMockFlashcardService(t),
	}
	h := handlers.Handlers{
		Auth:        handlers.NewAuthHandler(api.auth, config.AuthConfig{CookieName: testCookieName, CookieSecure: true}),
		Translation: handlers.NewTranslationHandler(api.translation),
		Word:        handlers.NewWordHandler(api.word, catalogue),
		Bookmark:    handlers.NewBookmarkHandler(api.bookmark),
		Flashcard:   handlers.NewFlashcardHandler(api.flashcard),
	}
	// 開発用認証ミドルウェア (X-User-ID ヘッダー)
	api.router = handlers.NewRouter(h, handlers.RouterOptions{
		Logger:      discardLogger,
		RequireAuth: middleware.DevUserContextMiddleware,
	})
	return api
}

// do はリクエストを実行してレスポンスレコーダーを返します。
// body が string ならそのまま、それ以外はJSONにして送ります
func (a *testAPI) do(t *testing.T, method, path string, body interface{}, userID *uuid.UUID) *httptest.ResponseRecorder {
	t.Helper()
	req := newRequest(t, method, path, body)
	if userID != nil {
		req.Header.Set("X-User-ID", userID.String())
	}
	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, req)
	return rr
}

func newRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = strings.NewReader(b)
		default:
			raw, err := json.Marshal(body)
			require.NoError(t, err, "Failed to marshal request body")
			reader = bytes.NewReader(raw)
		}
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// decodeBody はレスポンスボディを dst にデコードします
func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), dst), "body: %s", rr.Body.String())
}

// assertAPIError はステータスとエラーボディを検証します。空の期待値は無視します
func assertAPIError(t *testing.T, rr *httptest.ResponseRecorder, status int, code, message string) {
	t.Helper()
	assert.Equal(t, status, rr.Code, "body: %s", rr.Body.String())

	var resp model.APIErrorResponse
	decodeBody(t, rr, &resp)
	if code != "" {
		assert.Equal(t, code, resp.Error.Code)
	}
	if message != "" {
		assert.Equal(t, message, resp.Error.Message)
	}
}

func findCookie(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
