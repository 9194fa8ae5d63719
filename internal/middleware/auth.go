package middleware

import (
	"context"
	"net/http"
	"strings"

	"go_vi_dict/internal/model"
	"go_vi_dict/internal/webutil"
)

// TokenVerifier はセッショントークンを検証し、主体を返します
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*model.Principal, error)
}

// SessionAuthMiddleware はセッションCookie (または Bearer トークン) を検証し、
// 認証済みの主体をリクエストコンテキストに格納します。
func SessionAuthMiddleware(verifier TokenVerifier, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			token := tokenFromRequest(r, cookieName)
			if token == "" {
				logger.Warn("Session auth failed: no session token")
				appErr := model.NewAppError("UNAUTHORIZED", "You must be logged in", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			principal, err := verifier.VerifyToken(r.Context(), token)
			if err != nil {
				logger.Warn("Session auth failed: invalid token", "error", err)
				appErr := model.NewAppError("INVALID_SESSION", "Your session is invalid or has expired", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			ctx := WithPrincipal(r.Context(), principal)
			ctx = WithLogger(ctx, logger.With("user_id", principal.UserID.String()))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// tokenFromRequest は Cookie を優先し、なければ Authorization ヘッダーを見ます
func tokenFromRequest(r *http.Request, cookieName string) string {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value
	}
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// WithPrincipal は主体をコンテキストに格納します
func WithPrincipal(ctx context.Context, p *model.Principal) context.Context {
	return context.WithValue(ctx, model.PrincipalKey, p)
}

// GetPrincipal はコンテキストから認証済みの主体を取得します
func GetPrincipal(ctx context.Context) (*model.Principal, error) {
	p, ok := ctx.Value(model.PrincipalKey).(*model.Principal)
	if !ok || p == nil {
		return nil, model.NewAppError("UNAUTHORIZED", "You must be logged in", "", model.ErrUnauthorized)
	}
	return p, nil
}
