package model

import (
	"context"
	"time"
)

// BookmarkStore defines persistence operations for bookmarks.
type BookmarkStore interface {
	GetByID(ctx context.Context, id int64) (Bookmark, error)
	GetByUserID(ctx context.Context, userID int64) ([]Bookmark, error)
}

// Bookmark is a saved link owned by a single user.
type Bookmark struct {
	ID          int64
	UserID      int64
	Title       string
	Description *string
	Link        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
