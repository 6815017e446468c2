package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/logger"
	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/model"
)

// BookmarkGuard decides whether an identity may act on a bookmark.
type BookmarkGuard struct {
	store  model.BookmarkStore
	logger *logger.Logger
}

func NewBookmarkGuard(store model.BookmarkStore, logger *logger.Logger) *BookmarkGuard {
	return &BookmarkGuard{store: store, logger: logger}
}

// CanAccess reports whether identity owns the bookmark. A missing bookmark is
// denied the same way as a foreign one. Store failures are returned as errors.
func (g *BookmarkGuard) CanAccess(ctx context.Context, identity model.Identity, bookmarkID int64) (bool, error) {
	bookmark, err := g.store.GetByID(ctx, bookmarkID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			g.logger.Debug("Bookmark guard: bookmark not found",
				"user_id", identity.UserID,
				"bookmark_id", bookmarkID)
			return false, nil
		}
		return false, fmt.Errorf("failed to load bookmark: %w", err)
	}

	if bookmark.UserID != identity.UserID {
		g.logger.Info("Bookmark guard: access denied",
			"user_id", identity.UserID,
			"bookmark_id", bookmarkID)
		return false, nil
	}

	return true, nil
}
