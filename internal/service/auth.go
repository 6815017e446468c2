package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/logger"
	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/model"
)

type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenService *TokenService
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokenService *TokenService,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// SignUp creates a user and issues an access token for it. Email uniqueness is
// decided by the store alone.
func (a *Auth) SignUp(ctx context.Context, email, password string) (model.AuthResult, error) {
	a.logger.Debug("Auth service: starting signup",
		"email", email)

	hash, err := a.hasher.Hash(password)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"email", email,
			"error", err.Error())
		return model.AuthResult{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.userStore.Create(ctx, model.User{Email: email, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, model.ErrAlreadyExists) {
			a.logger.Info("Auth service: email already taken",
				"email", email)
			return model.AuthResult{}, model.ErrDuplicateEmail
		}
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.AuthResult{}, fmt.Errorf("failed to create user: %w", err)
	}

	access, err := a.tokenService.Issue(user)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"user_id", user.ID,
			"error", err.Error())
		return model.AuthResult{}, err
	}

	a.logger.Info("Auth service: user signed up",
		"user_id", user.ID)

	return model.AuthResult{User: user, AccessToken: access}, nil
}

// SignIn checks credentials and issues an access token. Unknown email and
// wrong password are reported with the same error.
func (a *Auth) SignIn(ctx context.Context, email, password string) (model.AuthResult, error) {
	a.logger.Debug("Auth service: starting signin",
		"email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			a.logger.Info("Auth service: signin rejected",
				"email", email)
			return model.AuthResult{}, model.ErrInvalidCredentials
		}
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.AuthResult{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	ok, err := a.hasher.Verify(user.PasswordHash, password)
	if err != nil {
		a.logger.Error("Auth service: failed to verify password",
			"user_id", user.ID,
			"error", err.Error())
		return model.AuthResult{}, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		a.logger.Info("Auth service: signin rejected",
			"email", email)
		return model.AuthResult{}, model.ErrInvalidCredentials
	}

	access, err := a.tokenService.Issue(user)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"user_id", user.ID,
			"error", err.Error())
		return model.AuthResult{}, err
	}

	a.logger.Info("Auth service: user signed in",
		"user_id", user.ID)

	return model.AuthResult{User: user, AccessToken: access}, nil
}
