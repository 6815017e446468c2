package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/model"
)

// Claims represents JWT claims carried by an access token.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey []byte
	now       func() time.Time
}

var _ model.TokenManager = (*JWT)(nil)

// Option configures JWT.
type Option func(*JWT)

// WithClock overrides the time source used for issuing and validating tokens.
func WithClock(now func() time.Time) Option {
	return func(j *JWT) {
		j.now = now
	}
}

// NewJWT creates a new JWT token manager with the provided secret key.
func NewJWT(secretKey string, opts ...Option) *JWT {
	j := &JWT{secretKey: []byte(secretKey), now: time.Now}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Issue signs an HS256 token for subject that expires after ttl.
func (j *JWT) Issue(subject string, claims model.TokenClaims, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", errors.New("token subject is empty")
	}
	if ttl <= 0 {
		return "", fmt.Errorf("token ttl must be positive, got %s", ttl)
	}

	now := j.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: claims.Email,
	})

	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, nil
}

// Verify checks signature and expiry and returns the decoded claims.
func (j *JWT) Verify(tokenString string) (model.TokenClaims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.secretKey, nil
	},
		jwt.WithTimeFunc(j.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return model.TokenClaims{}, model.ErrTokenExpired
		}
		return model.TokenClaims{}, fmt.Errorf("%w: %v", model.ErrTokenInvalid, err)
	}
	if !token.Valid || claims.Subject == "" {
		return model.TokenClaims{}, model.ErrTokenInvalid
	}

	out := model.TokenClaims{
		ID:      claims.ID,
		Subject: claims.Subject,
		Email:   claims.Email,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
