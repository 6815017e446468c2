package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/model"
)

var _ model.BookmarkStore = (*BookmarkRepository)(nil)

type BookmarkRepository struct {
	db *Connection
}

func NewBookmarkRepository(db *Connection) *BookmarkRepository {
	return &BookmarkRepository{
		db: db,
	}
}

const bookmarkColumns = `id, user_id, title, description, link, created_at, updated_at`

func scanBookmark(row pgx.Row) (model.Bookmark, error) {
	var b model.Bookmark
	err := row.Scan(&b.ID, &b.UserID, &b.Title, &b.Description, &b.Link, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func (r *BookmarkRepository) GetByID(ctx context.Context, id int64) (model.Bookmark, error) {
	query := `SELECT ` + bookmarkColumns + ` FROM bookmarks WHERE id = $1`

	b, err := scanBookmark(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Bookmark{}, model.ErrNotFound
		}
		return model.Bookmark{}, fmt.Errorf("failed to get bookmark by id: %w", err)
	}

	return b, nil
}

func (r *BookmarkRepository) GetByUserID(ctx context.Context, userID int64) ([]model.Bookmark, error) {
	query := `SELECT ` + bookmarkColumns + ` FROM bookmarks WHERE user_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookmarks: %w", err)
	}
	defer rows.Close()

	bookmarks := []model.Bookmark{}
	for rows.Next() {
		b, err := scanBookmark(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bookmark: %w", err)
		}
		bookmarks = append(bookmarks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bookmarks: %w", err)
	}

	return bookmarks, nil
}

// Create inserts a bookmark. Used for seeding; the HTTP surface is read-only.
func (r *BookmarkRepository) Create(ctx context.Context, b model.Bookmark) (model.Bookmark, error) {
	query := `INSERT INTO bookmarks (user_id, title, description, link)
			  VALUES ($1, $2, $3, $4)
			  RETURNING ` + bookmarkColumns

	saved, err := scanBookmark(r.db.QueryRow(ctx, query, b.UserID, b.Title, b.Description, b.Link))
	if err != nil {
		return model.Bookmark{}, fmt.Errorf("failed to create bookmark: %w", err)
	}

	return saved, nil
}
