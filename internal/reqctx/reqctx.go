// internal/reqctx/reqctx.go
package reqctx

import "context"

type key int

const (
	keyRequestID key = iota
	keyAdmin
)

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keyRequestID, id)
}

func GetRequestID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(keyRequestID).(string)
	return v, ok
}

// WithAdmin stores the authenticated admin username.
func WithAdmin(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, keyAdmin, username)
}

func GetAdmin(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(keyAdmin).(string)
	return v, ok
}
