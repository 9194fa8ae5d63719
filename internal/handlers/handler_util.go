package handlers

import (
	"log/slog"
	"net/http"

	"go_vi_dict/internal/middleware"
	"go_vi_dict/internal/model"
	"go_vi_dict/internal/webutil"
)

// currentPrincipal は認証済みの主体を返します。なければ 401 を書き込み false を返します
func currentPrincipal(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (*model.Principal, bool) {
	principal, err := middleware.GetPrincipal(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", "error", err)
		webutil.HandleError(w, logger, err)
		return nil, false
	}
	return principal, true
}

// messageResponse は message だけを返すレスポンス
type messageResponse struct {
	Message string `json:"message"`
}
