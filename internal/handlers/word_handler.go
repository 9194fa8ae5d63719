// internal/handlers/word_handler.go
package handlers

import (
	"net/http"
	"strings"

	"go_vi_dict/internal/dictionary"
	"go_vi_dict/internal/middleware"
	"go_vi_dict/internal/model"
	"go_vi_dict/internal/service"
	"go_vi_dict/internal/webutil"
)

type WordHandler struct {
	service   service.WordService
	catalogue *dictionary.Catalogue
}

func NewWordHandler(s service.WordService, catalogue *dictionary.Catalogue) *WordHandler {
	if catalogue == nil {
		catalogue = dictionary.New(nil)
	}
	return &WordHandler{service: s, catalogue: catalogue}
}

// GetSuggestions は入力中の文字列に対する単語候補を返します
func (h *WordHandler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	query := r.URL.Query().Get("q")
	lang := strings.TrimSpace(r.URL.Query().Get("lang"))
	if lang == "" {
		lang = model.LanguageEnglish
	}

	suggestions, err := h.service.Suggest(r.Context(), query, lang)
	if err != nil {
		logger.Warn("Failed to get suggestions", "error", err, "lang", lang)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Debug("Suggestions served", "count", len(suggestions))
	webutil.RespondWithJSON(w, http.StatusOK, model.SuggestionsResponse{Suggestions: suggestions}, logger)
}

// GetWordsJSONL は検証済みの辞書を1行1エントリで返します
func (h *WordHandler) GetWordsJSONL(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	w.Header().Set("Content-Type", "application/x-ndjson; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)

	n, err := h.catalogue.WriteJSONL(w)
	if err != nil {
		// ヘッダー送信後なのでログのみ
		logger.Warn("Failed to write dictionary", "error", err, "bytes", n)
		return
	}
	logger.Debug("Dictionary served", "entries", h.catalogue.Len(), "bytes", n)
}
