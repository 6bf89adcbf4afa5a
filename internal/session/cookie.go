package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const CookieName = "fitlife_session"

var ErrInvalidCookie = errors.New("invalid session cookie")

type cookieClaims struct {
	SID string `json:"sid"`
	jwt.RegisteredClaims
}

// Cookies signs and reads the browser cookie that names a session row.
type Cookies struct {
	secret []byte
	secure bool
}

func NewCookies(secret string, secure bool) *Cookies {
	return &Cookies{secret: []byte(secret), secure: secure}
}

func (c *Cookies) Set(w http.ResponseWriter, sid string, expires time.Time) error {
	claims := cookieClaims{
		SID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return fmt.Errorf("failed to sign session cookie: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Expires:  expires,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// SessionID returns the session id carried by the request cookie.
func (c *Cookies) SessionID(r *http.Request) (string, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", ErrNoSession
	}

	claims := &cookieClaims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid || claims.SID == "" {
		return "", ErrInvalidCookie
	}
	return claims.SID, nil
}

func (c *Cookies) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
