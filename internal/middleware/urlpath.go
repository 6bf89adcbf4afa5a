package middleware

import (
	"net/http"

	"github.com/Dianagomez24/FrontFilLife/internal/ctxkeys"
)

// WithURLPath records the request path, used to highlight the active navigation entry.
func WithURLPath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(ctxkeys.WithURLPath(r.Context(), r.URL.Path)))
	})
}
