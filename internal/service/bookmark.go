package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/logger"
	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/model"
)

type Bookmarks struct {
	store  model.BookmarkStore
	logger *logger.Logger
}

func NewBookmarks(store model.BookmarkStore, logger *logger.Logger) *Bookmarks {
	return &Bookmarks{store: store, logger: logger}
}

// List returns the bookmarks owned by userID, never nil.
func (s *Bookmarks) List(ctx context.Context, userID int64) ([]model.Bookmark, error) {
	bookmarks, err := s.store.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("Bookmarks service: failed to list bookmarks",
			"user_id", userID,
			"error", err.Error())
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	if bookmarks == nil {
		bookmarks = []model.Bookmark{}
	}
	return bookmarks, nil
}

// Get returns the bookmark if userID owns it, ErrNotFound otherwise.
func (s *Bookmarks) Get(ctx context.Context, userID, bookmarkID int64) (model.Bookmark, error) {
	bookmark, err := s.store.GetByID(ctx, bookmarkID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Bookmark{}, model.ErrNotFound
		}
		s.logger.Error("Bookmarks service: failed to get bookmark",
			"bookmark_id", bookmarkID,
			"error", err.Error())
		return model.Bookmark{}, fmt.Errorf("failed to get bookmark: %w", err)
	}
	if bookmark.UserID != userID {
		return model.Bookmark{}, model.ErrNotFound
	}
	return bookmark, nil
}
