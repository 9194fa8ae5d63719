//go:generate mockery --name BookmarkRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"go_vi_dict/internal/middleware"
	"go_vi_dict/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookmarkRepository interface {
	// Create は (user, word, language) が既存なら model.ErrConflict を返します
	Create(ctx context.Context, db *gorm.DB, bookmark *model.Bookmark) error
	// Delete は本人のブックマークだけを削除します。該当なしはエラーにしません
	Delete(ctx context.Context, db *gorm.DB, userID, bookmarkID uuid.UUID) error
	Search(ctx context.Context, db *gorm.DB, userID uuid.UUID, query string) ([]*model.Bookmark, error)
}

type gormBookmarkRepository struct{}

func NewGormBookmarkRepository() BookmarkRepository {
	return &gormBookmarkRepository{}
}

func (r *gormBookmarkRepository) Create(ctx context.Context, db *gorm.DB, bookmark *model.Bookmark) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "word"}, {Name: "language"}},
			DoNothing: true,
		}).
		Create(bookmark)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			return model.ErrConflict
		}
		logger.Error("Error creating bookmark in DB", "error", result.Error, "word", bookmark.Word)
		return fmt.Errorf("gormBookmarkRepository.Create: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		logger.Info("Bookmark already exists", "word", bookmark.Word, "language", bookmark.Language)
		return model.ErrConflict
	}
	return nil
}

func (r *gormBookmarkRepository) Delete(ctx context.Context, db *gorm.DB, userID, bookmarkID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Where("id = ? AND user_id = ?", bookmarkID, userID).Delete(&model.Bookmark{})
	if result.Error != nil {
		logger.Error("Error deleting bookmark in DB", "error", result.Error, "bookmark_id", bookmarkID.String())
		return fmt.Errorf("gormBookmarkRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		logger.Debug("No bookmark deleted", "bookmark_id", bookmarkID.String())
	}
	return nil
}

func (r *gormBookmarkRepository) Search(ctx context.Context, db *gorm.DB, userID uuid.UUID, query string) ([]*model.Bookmark, error) {
	logger := middleware.GetLogger(ctx)
	var bookmarks []*model.Bookmark

	q := db.WithContext(ctx).Where("user_id = ?", userID)
	if query != "" {
		q = q.Where("LOWER(word) LIKE LOWER(?) ESCAPE '\\'", "%"+escapeLike(query)+"%")
	}
	result := q.Order("created_at DESC").Find(&bookmarks)
	if result.Error != nil {
		logger.Error("Error searching bookmarks in DB", "error", result.Error, "query", query)
		return nil, fmt.Errorf("gormBookmarkRepository.Search: %w", result.Error)
	}
	return bookmarks, nil
}
