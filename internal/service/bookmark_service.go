package service

import (
	"context"
	"errors"
	"strings"

	"go_vi_dict/internal/ai"
	"go_vi_dict/internal/middleware"
	"go_vi_dict/internal/model"
	"go_vi_dict/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookmarkService interface {
	AddBookmark(ctx context.Context, principal *model.Principal, req *model.AddBookmarkRequest) (*model.Bookmark, error)
	RemoveBookmark(ctx context.Context, principal *model.Principal, bookmarkID uuid.UUID) error
	SearchBookmarks(ctx context.Context, principal *model.Principal, query string) ([]*model.Bookmark, error)
}

type bookmarkService struct {
	db           *gorm.DB
	bookmarkRepo repository.BookmarkRepository
}

func NewBookmarkService(db *gorm.DB, bookmarkRepo repository.BookmarkRepository) BookmarkService {
	return &bookmarkService{
		db:           db,
		bookmarkRepo: bookmarkRepo,
	}
}

func (s *bookmarkService) AddBookmark(ctx context.Context, principal *model.Principal, req *model.AddBookmarkRequest) (*model.Bookmark, error) {
	logger := middleware.GetLogger(ctx)
	if principal == nil {
		return nil, model.NewAppError("UNAUTHORIZED", "You must be logged in to bookmark words", "", model.ErrUnauthorized)
	}

	word := strings.TrimSpace(req.Word)
	if !ai.IsLikelyWord(word) {
		return nil, model.NewAppError("NOT_A_WORD", "Only single words can be bookmarked", "word", model.ErrInvalidInput)
	}
	if !model.ValidLanguage(req.Language) {
		return nil, model.NewAppError("INVALID_LANGUAGE", "Language must be en or vi", "language", model.ErrInvalidInput)
	}

	bookmark := &model.Bookmark{
		ID:          uuid.New(),
		UserID:      principal.UserID,
		Word:        word,
		Language:    req.Language,
		Translation: req.Translation,
	}
	if err := s.bookmarkRepo.Create(ctx, s.db, bookmark); err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, model.NewAppError("ALREADY_BOOKMARKED", "Word already bookmarked", "word", model.ErrConflict)
		}
		logger.Error("Failed to create bookmark", "error", err, "word", word)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to bookmark word", "", err)
	}

	logger.Info("Bookmark added", "bookmark_id", bookmark.ID, "word", word)
	return bookmark, nil
}

// RemoveBookmark は他人のブックマークや存在しないIDでもエラーにしません
func (s *bookmarkService) RemoveBookmark(ctx context.Context, principal *model.Principal, bookmarkID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	if principal == nil {
		return model.NewAppError("UNAUTHORIZED", "You must be logged in", "", model.ErrUnauthorized)
	}

	if err := s.bookmarkRepo.Delete(ctx, s.db, principal.UserID, bookmarkID); err != nil {
		logger.Error("Failed to remove bookmark", "error", err, "bookmark_id", bookmarkID)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to remove bookmark", "", err)
	}
	return nil
}

func (s *bookmarkService) SearchBookmarks(ctx context.Context, principal *model.Principal, query string) ([]*model.Bookmark, error) {
	logger := middleware.GetLogger(ctx)
	if principal == nil {
		return nil, model.NewAppError("UNAUTHORIZED", "You must be logged in", "", model.ErrUnauthorized)
	}

	bookmarks, err := s.bookmarkRepo.Search(ctx, s.db, principal.UserID, strings.TrimSpace(query))
	if err != nil {
		logger.Error("Failed to search bookmarks", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to search bookmarks", "", err)
	}
	if bookmarks == nil {
		bookmarks = []*model.Bookmark{}
	}
	return bookmarks, nil
}
