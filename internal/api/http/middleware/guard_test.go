package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpctx "github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/api/http/context"
	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/mocks"
	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/model"
	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/testutil"
)

func TestRequireBookmarkAccess_Handle(t *testing.T) {
	caller := model.Identity{UserID: 1}

	tests := []struct {
		name         string
		param        string
		noIdentity   bool
		setup        func(g *mocks.AccessGuard)
		wantStatus   int
		wantNextCall bool
	}{
		{
			name:  "owner passes",
			param: "7",
			setup: func(g *mocks.AccessGuard) {
				g.On("CanAccess", mock.Anything, caller, int64(7)).Return(true, nil).Once()
			},
			wantStatus:   http.StatusOK,
			wantNextCall: true,
		},
		{
			name:  "denied",
			param: "7",
			setup: func(g *mocks.AccessGuard) {
				g.On("CanAccess", mock.Anything, caller, int64(7)).Return(false, nil).Once()
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:  "guard failure",
			param: "7",
			setup: func(g *mocks.AccessGuard) {
				g.On("CanAccess", mock.Anything, caller, int64(7)).Return(false, assert.AnError).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
		{name: "bad id", param: "seven", wantStatus: http.StatusBadRequest},
		{name: "no identity", param: "7", noIdentity: true, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guard := mocks.NewAccessGuard(t)
			if tt.setup != nil {
				tt.setup(guard)
			}
			cm := httpctx.NewManager()

			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/bookmarks/"+tt.param, nil)
			ctx := req.Context()
			if !tt.noIdentity {
				ctx = cm.SetIdentityToContext(ctx, caller)
			}
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.param)
			req = req.WithContext(context.WithValue(ctx, chi.RouteCtxKey, rctx))
			rec := httptest.NewRecorder()

			NewRequireBookmarkAccess(guard, cm, testutil.MakeNoopLogger()).Handle(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNextCall, called)
			if tt.wantStatus == http.StatusForbidden {
				assert.JSONEq(t, `{"status_code":403,"message":"forbidden resource"}`, rec.Body.String())
			}
		})
	}
}
