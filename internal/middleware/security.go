package middleware

import (
	"fmt"
	"net/http"

	"github.com/Dianagomez24/FrontFilLife/internal/ctxkeys"
)

// External hosts the layout loads scripts from.
const (
	htmxHost     = "https://unpkg.com"
	tailwindHost = "https://cdn.tailwindcss.com"
)

// SecurityHeaders sets CSP and the usual hardening headers. Needs NonceMiddleware first.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nonce := GetNonce(r.Context())

		scriptSrc := fmt.Sprintf("'self' %s %s", htmxHost, tailwindHost)
		if nonce != "" {
			scriptSrc += fmt.Sprintf(" 'nonce-%s'", nonce)
		}

		h := w.Header()
		h.Set("Content-Security-Policy", fmt.Sprintf(
			"default-src 'self'; script-src %s; style-src 'self' 'unsafe-inline'; img-src 'self' data:; connect-src 'self'; frame-ancestors 'none'; base-uri 'self'; form-action 'self'",
			scriptSrc,
		))
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")

		cfg := ctxkeys.Config(r.Context())
		if cfg != nil && cfg.IsProduction() {
			h.Set("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
		}

		next.ServeHTTP(w, r)
	})
}
