package cont

import (
	"context"

	"TrioChat/entity"
)

type ctxKey int

const userKey ctxKey = iota

// PutUser stores the authenticated identity on the request context.
func PutUser(ctx context.Context, user *entity.UserAuth) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUser returns the authenticated identity, or nil when the request was
// not authenticated.
func GetUser(ctx context.Context) *entity.UserAuth {
	user, _ := ctx.Value(userKey).(*entity.UserAuth)
	return user
}
