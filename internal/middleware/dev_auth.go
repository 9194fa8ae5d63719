// internal/middleware/dev_auth.go
package middleware

import (
	"net/http"

	"go_vi_dict/internal/model"
	"go_vi_dict/internal/webutil"

	"github.com/google/uuid"
)

// DevUserContextMiddleware は開発・テスト用ミドルウェアです。
// X-User-ID ヘッダーのUUIDをそのまま主体としてコンテキストに設定します。
// DBでのユーザー存在チェックは行いません。
func DevUserContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		raw := r.Header.Get("X-User-ID")
		if raw == "" {
			logger.Warn("[DEV AUTH] X-User-ID header missing")
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] Missing X-User-ID header", "", model.ErrUnauthorized))
			return
		}
		userID, err := uuid.Parse(raw)
		if err != nil {
			logger.Warn("[DEV AUTH] Invalid X-User-ID format", "value", raw)
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] Invalid X-User-ID format", "", model.ErrUnauthorized))
			return
		}

		ctx := WithPrincipal(r.Context(), &model.Principal{UserID: userID})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
