package middleware

import (
	"net/http"

	"github.com/sivanaveen080/biryani-for-lunch/internal/cart"
	"github.com/sivanaveen080/biryani-for-lunch/pkg/logger"
)

const sessionHeader = "X-Cart-Session"

// CartSession resolves the shopper's cart from the session header, minting a
// fresh session when the header is absent. The (possibly new) id is echoed
// back so the client can persist it.
func CartSession(carts *cart.Manager, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			store, sessionID := carts.Get(r.Header.Get(sessionHeader))

			w.Header().Set(sessionHeader, sessionID)

			ctx := WithCart(r.Context(), sessionID, store)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
