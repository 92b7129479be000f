package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/vancomm/colorsort-server/internal/config"
)

type CtxKey int

const (
	CtxAdminClaims CtxKey = iota
)

// Auth attaches parsed admin claims to the request context when the
// auth cookies verify; requests without valid cookies pass through
// unauthenticated and handlers decide whether that matters.
func Auth(log *slog.Logger, cookies *config.Cookies) Middleware {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := cookies.ParseAdminClaims(r)
			if err != nil {
				cookies.Clear(w)
				h.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), CtxAdminClaims, claims)
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminClaims extracts claims stored by Auth, if any.
func AdminClaims(r *http.Request) (*config.AdminClaims, bool) {
	claims, ok := r.Context().Value(CtxAdminClaims).(*config.AdminClaims)
	return claims, ok
}
