package handlers

import (
	"errors"
	"net/http"

	"go_vi_dict/internal/middleware"
	"go_vi_dict/internal/model"
	"go_vi_dict/internal/service"
	"go_vi_dict/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type BookmarkHandler struct {
	service service.BookmarkService
}

func NewBookmarkHandler(s service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{service: s}
}

type bookmarksResponse struct {
	Bookmarks []*model.Bookmark `json:"bookmarks"`
}

// AddBookmark は単語をブックマークします
func (h *BookmarkHandler) AddBookmark(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	// 主体がなければサービス側でログイン要求のエラーになる
	principal, _ := middleware.GetPrincipal(r.Context())

	var req model.AddBookmarkRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid bookmark request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	bookmark, err := h.service.AddBookmark(r.Context(), principal, &req)
	if err != nil {
		if errors.Is(err, model.ErrConflict) || errors.Is(err, model.ErrInvalidInput) || errors.Is(err, model.ErrUnauthorized) {
			logger.Info("Bookmark rejected", "error", err)
		} else {
			logger.Error("Failed to add bookmark in service", "error", err)
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Bookmark added", "bookmark_id", bookmark.ID.String())
	webutil.RespondWithJSON(w, http.StatusCreated, bookmark, logger)
}

// RemoveBookmark はブックマークを削除します。他人のものや存在しないものは何もしない
func (h *BookmarkHandler) RemoveBookmark(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	principal, ok := currentPrincipal(w, r, logger)
	if !ok {
		return
	}

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		logger.Warn("Invalid bookmark ID format in URL", "id", idStr)
		appErr := model.NewAppError("INVALID_URL_PARAM", "Invalid bookmark id", "id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := h.service.RemoveBookmark(r.Context(), principal, id); err != nil {
		logger.Error("Failed to remove bookmark in service", "error", err, "bookmark_id", idStr)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Bookmark removed", "bookmark_id", idStr)
	webutil.RespondWithJSON(w, http.StatusOK, messageResponse{Message: "Bookmark removed"}, logger)
}

// SearchBookmarks は q を含むブックマークを新しい順に返します
func (h *BookmarkHandler) SearchBookmarks(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	principal, ok := currentPrincipal(w, r, logger)
	if !ok {
		return
	}

	bookmarks, err := h.service.SearchBookmarks(r.Context(), principal, r.URL.Query().Get("q"))
	if err != nil {
		logger.Error("Failed to search bookmarks in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, bookmarksResponse{Bookmarks: bookmarks}, logger)
}
