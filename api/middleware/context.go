package middleware

import (
	"context"

	"github.com/sivanaveen080/biryani-for-lunch/internal/cart"
)

type contextKey string

const (
	ctxCartStore contextKey = "cart_store"
	ctxSessionID contextKey = "cart_session_id"
)

func CartFromContext(ctx context.Context) *cart.Store {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(ctxCartStore).(*cart.Store); ok {
		return v
	}
	return nil
}

func SessionIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxSessionID).(string); ok {
		return v
	}
	return ""
}

// WithCart injects a session's cart and id into the context.
func WithCart(ctx context.Context, sessionID string, store *cart.Store) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, ctxCartStore, store)
	return context.WithValue(ctx, ctxSessionID, sessionID)
}
