package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/logger"
	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/model"
)

// TokenService issues access tokens for users and resolves presented tokens
// back into caller identities. It composes the TokenManager with the access TTL.
type TokenService struct {
	manager model.TokenManager
	ttl     time.Duration
	logger  *logger.Logger
}

func NewTokenService(manager model.TokenManager, ttl time.Duration, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, ttl: ttl, logger: logger}
}

// TTL returns the lifetime of issued access tokens.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

func (s *TokenService) Issue(user model.User) (string, error) {
	access, err := s.manager.Issue(strconv.FormatInt(user.ID, 10), model.TokenClaims{Email: user.Email}, s.ttl)
	if err != nil {
		return "", fmt.Errorf("issue access: %w", err)
	}
	return access, nil
}

// Authenticate verifies token and returns the identity it was issued for.
func (s *TokenService) Authenticate(_ context.Context, token string) (model.Identity, error) {
	if token == "" {
		return model.Identity{}, model.ErrTokenMissing
	}

	claims, err := s.manager.Verify(token)
	if err != nil {
		if !errors.Is(err, model.ErrTokenExpired) && !errors.Is(err, model.ErrTokenInvalid) {
			err = fmt.Errorf("%w: %v", model.ErrTokenInvalid, err)
		}
		s.logger.Debug("Token service: token rejected",
			"error", err.Error())
		return model.Identity{}, err
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		s.logger.Debug("Token service: token subject is not a user id",
			"subject", claims.Subject)
		return model.Identity{}, model.ErrTokenInvalid
	}

	return model.Identity{UserID: userID, Email: claims.Email}, nil
}
