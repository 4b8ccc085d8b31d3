package utils

import (
	"context"

	"seedco-api/internal/data/entity"
)

type contextKey string

const userKey contextKey = "auth_user"

// SetUserContext attaches the authenticated user to the request context.
func SetUserContext(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the authenticated user for this request, if any.
// Anonymous requests return (nil, false).
func UserFromContext(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(userKey).(*entity.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
