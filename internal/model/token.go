package model

import "time"

// TokenManager issues and verifies signed access tokens.
type TokenManager interface {
	Issue(subject string, claims TokenClaims, ttl time.Duration) (string, error)
	Verify(token string) (TokenClaims, error)
}

// TokenClaims is the decoded payload of an access token.
type TokenClaims struct {
	ID        string
	Subject   string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
