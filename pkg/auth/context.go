package auth

import (
	"context"

	"github.com/campusmart/campusmart/pkg/campus"
)

type ctxKey int

const (
	emailKey ctxKey = iota
	campusKey
)

// WithUser returns a context carrying the signed-in user's email and campus key.
func WithUser(ctx context.Context, email string, key campus.Key) context.Context {
	ctx = context.WithValue(ctx, emailKey, email)
	return context.WithValue(ctx, campusKey, key)
}

// EmailFromContext returns the signed-in user's email, if present.
func EmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailKey).(string)
	return email, ok
}

// CampusFromContext returns the signed-in user's campus key, if present.
func CampusFromContext(ctx context.Context) (campus.Key, bool) {
	key, ok := ctx.Value(campusKey).(campus.Key)
	return key, ok
}
