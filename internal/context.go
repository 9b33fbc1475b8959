package internal

import (
	"context"
	"time"
)

type ctxKey string

const ContextUserKey ctxKey = "authUser"

// AuthUser is the identity reconstructed from a verified token's claims.
// It is the only identity information protected handlers see; the user
// store is not consulted during authorization.
type AuthUser struct {
	ID    int64
	Email string
}

func UserFromContext(ctx context.Context) (*AuthUser, bool) {
	if ctx == nil {
		return nil, false
	}
	u, ok := ctx.Value(ContextUserKey).(*AuthUser)
	return u, ok
}

func ContextWithUser(ctx context.Context, u *AuthUser) context.Context {
	return context.WithValue(ctx, ContextUserKey, u)
}

// WithTimeout returns a context with timeout, defaulting to 5 seconds if duration is zero or negative.
func WithTimeout(ctx context.Context, duration time.Duration) (context.Context, context.CancelFunc) {
	if duration <= 0 {
		duration = 5 * time.Second
	}
	return context.WithTimeout(ctx, duration)
}
