package model

import "context"

// Identity is the verified caller attached to a request context.
type Identity struct {
	UserID int64
	Email  string
}

type ContextManager interface {
	SetIdentityToContext(ctx context.Context, identity Identity) context.Context
	GetIdentityFromContext(ctx context.Context) (Identity, bool)
}
