package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpctx "github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/api/http/context"
	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/mocks"
	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/model"
	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/testutil"
)

func withIdentity(r *http.Request, cm *httpctx.Manager, id model.Identity) *http.Request {
	return r.WithContext(cm.SetIdentityToContext(r.Context(), id))
}

func TestUser_GetMe(t *testing.T) {
	cm := httpctx.NewManager()
	svc := mocks.NewUserService(t)
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	first := "Ada"
	svc.On("GetMe", mock.Anything, int64(4)).Return(model.User{
		ID: 4, Email: "a@b.c", PasswordHash: "$argon2id$secret", FirstName: &first, CreatedAt: created, UpdatedAt: created,
	}, nil).Once()

	h := NewUser(svc, cm, testutil.MakeNoopLogger())
	rec := httptest.NewRecorder()
	h.GetMe(rec, withIdentity(httptest.NewRequest(http.MethodGet, "/users/me", nil), cm, model.Identity{UserID: 4}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"id": 4,
		"email": "a@b.c",
		"first_name": "Ada",
		"last_name": null,
		"created_at": "2024-01-02T03:04:05Z",
		"updated_at": "2024-01-02T03:04:05Z"
	}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "argon2id")
}

func TestUser_GetMe_NoIdentity(t *testing.T) {
	h := NewUser(mocks.NewUserService(t), httpctx.NewManager(), testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.GetMe(rec, httptest.NewRequest(http.MethodGet, "/users/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUser_GetMe_NotFound(t *testing.T) {
	cm := httpctx.NewManager()
	svc := mocks.NewUserService(t)
	svc.On("GetMe", mock.Anything, int64(4)).Return(model.User{}, model.ErrNotFound).Once()

	h := NewUser(svc, cm, testutil.MakeNoopLogger())
	rec := httptest.NewRecorder()
	h.GetMe(rec, withIdentity(httptest.NewRequest(http.MethodGet, "/users/me", nil), cm, model.Identity{UserID: 4}))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
