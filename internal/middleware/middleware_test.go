package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dianagomez24/FrontFilLife/internal/ctxkeys"
	"github.com/Dianagomez24/FrontFilLife/internal/model"
	"github.com/Dianagomez24/FrontFilLife/internal/repository"
	"github.com/Dianagomez24/FrontFilLife/internal/session"
	"github.com/Dianagomez24/FrontFilLife/internal/testutil"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestRateLimiterSlidingWindow(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(2, time.Minute)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("1.2.3.4"))
	assert.True(t, rl.Allow("1.2.3.4"))
	assert.False(t, rl.Allow("1.2.3.4"))
	assert.True(t, rl.Allow("5.6.7.8"), "keys are independent")

	now = now.Add(61 * time.Second)
	assert.True(t, rl.Allow("1.2.3.4"))

	now = now.Add(2 * time.Minute)
	rl.cleanup()
	assert.Empty(t, rl.requests)
}

func TestRateLimiterLimit(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	h := rl.Limit(okHandler)

	r := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	r.Header.Set("X-Forwarded-For", "9.9.9.9, 10.0.0.1")

	w := httptest.NewRecorder()
	h(w, r)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h(w, r)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Demasiados intentos")
}

func TestGetClientIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.0.2.1:5555"
	assert.Equal(t, "192.0.2.1", getClientIP(r))

	r.Header.Set("X-Real-IP", " 203.0.113.7 ")
	assert.Equal(t, "203.0.113.7", getClientIP(r))
}

func TestCSRFProtection(t *testing.T) {
	var seen string
	h := CSRFProtection(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ctxkeys.CSRFToken(r.Context())
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/login", nil))
	require.NotEmpty(t, seen)

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == csrfCookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.Equal(t, seen, cookie.Value)

	post := func(token string, header bool) int {
		form := url.Values{}
		if !header {
			form.Set(csrfFormField, token)
		}
		r := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		if header {
			r.Header.Set(csrfHeader, token)
		}
		r.AddCookie(cookie)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, post(cookie.Value, true))
	assert.Equal(t, http.StatusOK, post(cookie.Value, false))
	assert.Equal(t, http.StatusForbidden, post("forged", true))
	assert.Equal(t, http.StatusForbidden, post("", false))
}

func TestSecurityHeaders(t *testing.T) {
	h := NonceMiddleware(SecurityHeaders(okHandler))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	csp := w.Header().Get("Content-Security-Policy")
	assert.Contains(t, csp, "'nonce-")
	assert.Contains(t, csp, htmxHost)
	assert.Contains(t, csp, "frame-ancestors 'none'")
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
}

func TestRedirect(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/app/exercise-plans", nil)
	w := httptest.NewRecorder()
	Redirect(w, r, "/app/exercise-plans/1")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/app/exercise-plans/1", w.Header().Get("Location"))

	r.Header.Set("HX-Request", "true")
	w = httptest.NewRecorder()
	Redirect(w, r, "/app/exercise-plans/1")
	assert.Equal(t, "/app/exercise-plans/1", w.Header().Get("HX-Redirect"))
	assert.Empty(t, w.Header().Get("Location"))
}

func TestRequireAuthAndGuest(t *testing.T) {
	anon := httptest.NewRequest(http.MethodGet, "/app/dashboard", nil)
	user := anon.WithContext(ctxkeys.WithUser(anon.Context(), &model.User{ID: 1}))

	w := httptest.NewRecorder()
	RequireAuth(okHandler)(w, anon)
	assert.Equal(t, "/auth/login", w.Header().Get("Location"))

	w = httptest.NewRecorder()
	RequireAuth(okHandler)(w, user)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	RequireGuest(okHandler)(w, user)
	assert.Equal(t, "/app/dashboard", w.Header().Get("Location"))
}

func TestAuthMiddleware(t *testing.T) {
	sessions := session.NewManager(repository.NewSessionRepository(testutil.NewTestDatabase(t)), time.Hour)
	cookies := session.NewCookies("middleware-test-secret-middleware", false)

	s, err := sessions.Start(context.Background(), "", &model.LoginResponse{
		AccessToken: "backend-token",
		User:        model.User{ID: 9, Name: "Luis"},
	})
	require.NoError(t, err)

	set := httptest.NewRecorder()
	require.NoError(t, cookies.Set(set, s.ID, s.ExpiresAt))

	var user *model.User
	var sid string
	h := AuthMiddleware(sessions, cookies)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user = ctxkeys.User(r.Context())
		sid = ctxkeys.SessionID(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/app/dashboard", nil)
	for _, c := range set.Result().Cookies() {
		r.AddCookie(c)
	}
	h.ServeHTTP(httptest.NewRecorder(), r)
	require.NotNil(t, user)
	assert.Equal(t, int64(9), user.ID)
	assert.Equal(t, s.ID, sid)

	require.NoError(t, sessions.End(context.Background(), s.ID))
	user = nil
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Nil(t, user)
	assert.NotEmpty(t, w.Result().Cookies(), "a dead session clears the cookie")
}
