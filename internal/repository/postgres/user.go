package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

const userColumns = `id, email, password_hash, first_name, last_name, created_at, updated_at`

func scanUser(row pgx.Row) (model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName,
		&user.CreatedAt, &user.UpdatedAt,
	)
	return user, err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// Create inserts user. The UNIQUE constraint on email is the only duplicate check.
func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (email, password_hash, first_name, last_name)
			  VALUES ($1, $2, $3, $4)
			  RETURNING ` + userColumns

	saved, err := scanUser(r.db.QueryRow(ctx, query,
		user.Email, user.PasswordHash, user.FirstName, user.LastName,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return model.User{}, model.ErrAlreadyExists
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return saved, nil
}
