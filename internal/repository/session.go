package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Dianagomez24/FrontFilLife/internal/model"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionRepository interface {
	Save(ctx context.Context, s *model.Session) error
	ByID(ctx context.Context, id string) (*model.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type sessionRepository struct {
	db *sqlx.DB
}

func NewSessionRepository(db *sqlx.DB) SessionRepository {
	return &sessionRepository{db: db}
}

// Save inserts the session or replaces the row with the same id.
func (r *sessionRepository) Save(ctx context.Context, s *model.Session) error {
	now := time.Now().UTC()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now
	s.ExpiresAt = s.ExpiresAt.UTC()

	query := `
		INSERT INTO sessions (id, access_token, user_json, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			access_token = excluded.access_token,
			user_json = excluded.user_json,
			expires_at = excluded.expires_at,
			updated_at = excluded.updated_at
	`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.AccessToken,
		s.UserJSON,
		s.ExpiresAt,
		s.CreatedAt.UTC(),
		s.UpdatedAt,
	)
	return err
}

// ByID returns ErrSessionNotFound for unknown and expired sessions alike.
func (r *sessionRepository) ByID(ctx context.Context, id string) (*model.Session, error) {
	var s model.Session
	query := `SELECT id, access_token, user_json, expires_at, created_at, updated_at FROM sessions WHERE id = $1`
	err := r.db.GetContext(ctx, &s, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	if s.IsExpired() {
		return nil, ErrSessionNotFound
	}
	return &s, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	return err
}

func (r *sessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= $1`, time.Now().UTC())
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
