package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Dianagomez24/FrontFilLife/internal/backend"
	"github.com/Dianagomez24/FrontFilLife/internal/ctxkeys"
	"github.com/Dianagomez24/FrontFilLife/internal/session"
)

type sessionStore struct {
	sessions *session.Manager
	cookies  *session.Cookies
}

type sessionStoreKey struct{}

// AuthMiddleware resolves the session cookie. On success the request context carries
// the user, the session id and the backend access token.
func AuthMiddleware(sessions *session.Manager, cookies *session.Cookies) func(http.Handler) http.Handler {
	store := &sessionStore{sessions: sessions, cookies: cookies}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r = r.WithContext(context.WithValue(r.Context(), sessionStoreKey{}, store))

			sid, err := cookies.SessionID(r)
			if errors.Is(err, session.ErrNoSession) {
				next.ServeHTTP(w, r)
				return
			}
			if err != nil {
				cookies.Clear(w)
				next.ServeHTTP(w, r)
				return
			}

			s, err := sessions.Current(r.Context(), sid)
			if err != nil {
				if !errors.Is(err, session.ErrNoSession) {
					slog.Error("failed to load session", "error", err)
				}
				cookies.Clear(w)
				next.ServeHTTP(w, r)
				return
			}

			ctx := ctxkeys.WithUser(r.Context(), s.User)
			ctx = ctxkeys.WithSessionID(ctx, s.ID)
			ctx = backend.WithToken(ctx, s.AccessToken)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// EndSession deletes the request's session and clears its cookie. Outside
// AuthMiddleware it does nothing.
func EndSession(w http.ResponseWriter, r *http.Request) {
	store, ok := r.Context().Value(sessionStoreKey{}).(*sessionStore)
	if !ok {
		return
	}
	if sid := ctxkeys.SessionID(r.Context()); sid != "" {
		err := store.sessions.End(r.Context(), sid)
		if err != nil {
			slog.Error("failed to end session", "error", err, "session_id", sid)
		}
	}
	store.cookies.Clear(w)
}

// Redirect sends the browser to url, with HX-Redirect for HTMX requests.
func Redirect(w http.ResponseWriter, r *http.Request, url string) {
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", url)
		w.WriteHeader(http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// RequireAuth ensures the user is logged in
func RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ctxkeys.User(r.Context()) == nil {
			Redirect(w, r, "/auth/login")
			return
		}
		next.ServeHTTP(w, r)
	}
}

// RequireGuest ensures the user is not logged in
func RequireGuest(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ctxkeys.User(r.Context()) != nil {
			Redirect(w, r, "/app/dashboard")
			return
		}
		next.ServeHTTP(w, r)
	}
}
