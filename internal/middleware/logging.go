package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Dianagomez24/FrontFilLife/internal/ctxkeys"
)

// responseWriter captures the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.written {
		rw.statusCode = code
		rw.written = true
		rw.ResponseWriter.WriteHeader(code)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

var skipLoggingPaths = []string{
	"/favicon.ico",
	"/healthz",
}

// Polled every few seconds by open tabs; logged at debug only.
var quietPaths = []string{
	"/app/notifications/feed",
	"/app/notifications/badge",
}

// RequestLogging logs method, path, status and duration of every request
func RequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, prefix := range skipLoggingPaths {
			if strings.HasPrefix(r.URL.Path, prefix) {
				next.ServeHTTP(w, r)
				return
			}
		}

		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		level := slog.LevelInfo
		for _, prefix := range quietPaths {
			if strings.HasPrefix(r.URL.Path, prefix) && rw.statusCode < 400 {
				level = slog.LevelDebug
			}
		}

		attrs := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", getClientIP(r),
		}
		if r.Header.Get("HX-Request") == "true" {
			attrs = append(attrs, "htmx", true)
		}
		if user := ctxkeys.User(r.Context()); user != nil {
			attrs = append(attrs, "user_id", user.ID)
		}
		slog.Log(r.Context(), level, "http request", attrs...)
	})
}
