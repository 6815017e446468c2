package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/api/http/response"
	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/logger"
	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/model"
)

// ParamID is the URL parameter holding a bookmark id.
const ParamID = "id"

// BookmarkService defines bookmark read operations scoped to an owner.
type BookmarkService interface {
	List(ctx context.Context, userID int64) ([]model.Bookmark, error)
	Get(ctx context.Context, userID, bookmarkID int64) (model.Bookmark, error)
}

type bookmarkResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Link        string    `json:"link"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newBookmarkResponse(b model.Bookmark) bookmarkResponse {
	return bookmarkResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		Title:       b.Title,
		Description: b.Description,
		Link:        b.Link,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

type Bookmark struct {
	bookmarkService BookmarkService
	contextManager  model.ContextManager
	logger          *logger.Logger
}

func NewBookmark(bookmarkService BookmarkService, contextManager model.ContextManager, logger *logger.Logger) *Bookmark {
	return &Bookmark{bookmarkService: bookmarkService, contextManager: contextManager, logger: logger}
}

// List handles GET /bookmarks.
func (h *Bookmark) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		handleError(w, r, model.ErrTokenMissing, h.logger)
		return
	}

	bookmarks, err := h.bookmarkService.List(r.Context(), identity.UserID)
	if err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	out := make([]bookmarkResponse, 0, len(bookmarks))
	for _, b := range bookmarks {
		out = append(out, newBookmarkResponse(b))
	}

	response.JSON(w, http.StatusOK, out)
}

// Get handles GET /bookmarks/{id}.
func (h *Bookmark) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		handleError(w, r, model.ErrTokenMissing, h.logger)
		return
	}

	bookmarkID, err := ParseID(chi.URLParam(r, ParamID))
	if err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	bookmark, err := h.bookmarkService.Get(r.Context(), identity.UserID, bookmarkID)
	if err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	response.JSON(w, http.StatusOK, newBookmarkResponse(bookmark))
}

// ParseID parses a positive resource id from a URL parameter.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &requestError{Message: "invalid id"}
	}
	return id, nil
}
