package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	servermocks "github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/mocks"
	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/model"
	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/testutil"
)

func TestTokenService_Issue(t *testing.T) {
	manager := servermocks.NewTokenManager(t)
	manager.On("Issue", "42", model.TokenClaims{Email: "a@b.c"}, 15*time.Minute).Return("access", nil).Once()

	svc := NewTokenService(manager, 15*time.Minute, testutil.MakeNoopLogger())

	access, err := svc.Issue(model.User{ID: 42, Email: "a@b.c"})
	require.NoError(t, err)
	assert.Equal(t, "access", access)
	assert.Equal(t, 15*time.Minute, svc.TTL())
}

func TestTokenService_Issue_ManagerError(t *testing.T) {
	manager := servermocks.NewTokenManager(t)
	manager.On("Issue", "1", model.TokenClaims{}, time.Minute).Return("", assert.AnError).Once()

	svc := NewTokenService(manager, time.Minute, testutil.MakeNoopLogger())

	_, err := svc.Issue(model.User{ID: 1})
	require.ErrorIs(t, err, assert.AnError)
}

func TestTokenService_Authenticate(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		claims     model.TokenClaims
		verifyErr  error
		skipVerify bool
		want       model.Identity
		wantErr    error
	}{
		{
			name:   "valid token",
			token:  "tok",
			claims: model.TokenClaims{Subject: "7", Email: "a@b.c"},
			want:   model.Identity{UserID: 7, Email: "a@b.c"},
		},
		{
			name:       "missing token",
			token:      "",
			skipVerify: true,
			wantErr:    model.ErrTokenMissing,
		},
		{
			name:      "expired token",
			token:     "tok",
			verifyErr: model.ErrTokenExpired,
			wantErr:   model.ErrTokenExpired,
		},
		{
			name:      "invalid token",
			token:     "tok",
			verifyErr: model.ErrTokenInvalid,
			wantErr:   model.ErrTokenInvalid,
		},
		{
			name:      "unexpected verify error",
			token:     "tok",
			verifyErr: assert.AnError,
			wantErr:   model.ErrTokenInvalid,
		},
		{
			name:    "non numeric subject",
			token:   "tok",
			claims:  model.TokenClaims{Subject: "abc"},
			wantErr: model.ErrTokenInvalid,
		},
		{
			name:    "non positive subject",
			token:   "tok",
			claims:  model.TokenClaims{Subject: "0"},
			wantErr: model.ErrTokenInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager := servermocks.NewTokenManager(t)
			if !tt.skipVerify {
				manager.On("Verify", tt.token).Return(tt.claims, tt.verifyErr).Once()
			}

			svc := NewTokenService(manager, time.Minute, testutil.MakeNoopLogger())

			got, err := svc.Authenticate(context.Background(), tt.token)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
