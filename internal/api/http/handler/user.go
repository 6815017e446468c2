package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/api/http/response"
	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/logger"
	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/model"
)

// UserService defines profile lookups.
type UserService interface {
	GetMe(ctx context.Context, userID int64) (model.User, error)
}

type userResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName *string   `json:"first_name"`
	LastName  *string   `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newUserResponse(u model.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type User struct {
	userService    UserService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewUser(userService UserService, contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{userService: userService, contextManager: contextManager, logger: logger}
}

// GetMe handles GET /users/me.
func (h *User) GetMe(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		handleError(w, r, model.ErrTokenMissing, h.logger)
		return
	}

	user, err := h.userService.GetMe(r.Context(), identity.UserID)
	if err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	response.JSON(w, http.StatusOK, newUserResponse(user))
}
