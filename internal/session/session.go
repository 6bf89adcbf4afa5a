// Package session is the only place the backend access token is stored or read.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/Dianagomez24/FrontFilLife/internal/model"
	"github.com/Dianagomez24/FrontFilLife/internal/repository"
)

// CLIKey is the fixed session id used by the command-line client.
const CLIKey = "token"

var ErrNoSession = errors.New("not logged in")

type Manager struct {
	repo   repository.SessionRepository
	maxAge time.Duration
	now    func() time.Time
}

func NewManager(repo repository.SessionRepository, maxAge time.Duration) *Manager {
	return &Manager{
		repo:   repo,
		maxAge: maxAge,
		now:    time.Now,
	}
}

// Start persists a login. An empty id gets a fresh random one.
func (m *Manager) Start(ctx context.Context, id string, resp *model.LoginResponse) (*model.Session, error) {
	if resp == nil || resp.AccessToken == "" {
		return nil, errors.New("login response has no access token")
	}
	if id == "" {
		id = uuid.New().String()
	}

	userJSON, err := json.Marshal(resp.User)
	if err != nil {
		return nil, fmt.Errorf("failed to encode user: %w", err)
	}

	user := resp.User
	s := &model.Session{
		ID:          id,
		AccessToken: resp.AccessToken,
		UserJSON:    string(userJSON),
		ExpiresAt:   m.expiry(resp.AccessToken),
		User:        &user,
	}
	err = m.repo.Save(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return s, nil
}

// Current returns the live session for id, or ErrNoSession.
func (m *Manager) Current(ctx context.Context, id string) (*model.Session, error) {
	if id == "" {
		return nil, ErrNoSession
	}
	s, err := m.repo.ByID(ctx, id)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var user model.User
	err = json.Unmarshal([]byte(s.UserJSON), &user)
	if err != nil {
		return nil, fmt.Errorf("failed to decode session user: %w", err)
	}
	s.User = &user
	return s, nil
}

// UpdateUser refreshes the user snapshot kept with the session.
func (m *Manager) UpdateUser(ctx context.Context, id string, user model.User) error {
	s, err := m.Current(ctx, id)
	if err != nil {
		return err
	}
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	s.UserJSON = string(data)
	return m.repo.Save(ctx, s)
}

func (m *Manager) End(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return m.repo.Delete(ctx, id)
}

// Purge removes expired sessions.
func (m *Manager) Purge(ctx context.Context) (int64, error) {
	return m.repo.DeleteExpired(ctx)
}

// TokenSource exposes the stored access token of id to an HTTP client.
func (m *Manager) TokenSource(ctx context.Context, id string) oauth2.TokenSource {
	return &tokenSource{ctx: ctx, m: m, id: id}
}

type tokenSource struct {
	ctx context.Context
	m   *Manager
	id  string
}

func (ts *tokenSource) Token() (*oauth2.Token, error) {
	s, err := ts.m.Current(ts.ctx, ts.id)
	if err != nil {
		return nil, err
	}
	return &oauth2.Token{
		AccessToken: s.AccessToken,
		TokenType:   "Bearer",
		Expiry:      s.ExpiresAt,
	}, nil
}

// expiry uses the access token's exp claim when it is a JWT, capped at maxAge.
// The signature is not checked: the backend does that on every call.
func (m *Manager) expiry(accessToken string) time.Time {
	limit := m.now().Add(m.maxAge)

	claims := jwt.RegisteredClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(accessToken, &claims)
	if err != nil || claims.ExpiresAt == nil {
		return limit
	}
	if exp := claims.ExpiresAt.Time; exp.Before(limit) {
		return exp
	}
	return limit
}
