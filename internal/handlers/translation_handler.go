package handlers

import (
	"errors"
	"net/http"

	"go_vi_dict/internal/middleware"
	"go_vi_dict/internal/model"
	"go_vi_dict/internal/service"
	"go_vi_dict/internal/webutil"
)

type TranslationHandler struct {
	service service.TranslationService
}

func NewTranslationHandler(s service.TranslationService) *TranslationHandler {
	return &TranslationHandler{service: s}
}

// Translate はテキストを翻訳します。キャッシュにあればそれを返します
func (h *TranslationHandler) Translate(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.TranslateRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid translate request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With("source_language", req.SourceLanguage, "target_language", req.TargetLanguage)

	result, err := h.service.Translate(r.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidInput) {
			logger.Warn("Translate request rejected", "error", err)
		} else {
			logger.Error("Translation failed in service", "error", err)
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Translation served", "from_cache", result.FromCache, "is_word", result.IsWord)
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}
