package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/logger"
	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/model"
)

type Users struct {
	userStore model.UserStore
	logger    *logger.Logger
}

func NewUsers(userStore model.UserStore, logger *logger.Logger) *Users {
	return &Users{userStore: userStore, logger: logger}
}

// GetMe returns the profile of the authenticated user.
func (s *Users) GetMe(ctx context.Context, userID int64) (model.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, model.ErrNotFound
		}
		s.logger.Error("Users service: failed to get user",
			"user_id", userID,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
