package middleware

import (
	"net/http"

	"github.com/Dianagomez24/FrontFilLife/internal/config"
	"github.com/Dianagomez24/FrontFilLife/internal/ctxkeys"
)

// Config puts the sanitized configuration (no secrets) in the request context.
func Config(cfg *config.Config) func(http.Handler) http.Handler {
	public := cfg.Sanitized()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := ctxkeys.WithConfig(r.Context(), public)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
