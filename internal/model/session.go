package model

import "time"

// Session is the locally persisted login state: the backend access token plus the
// user snapshot returned at login.
type Session struct {
	ID          string    `db:"id"`
	AccessToken string    `db:"access_token"`
	UserJSON    string    `db:"user_json"`
	ExpiresAt   time.Time `db:"expires_at"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`

	// Decoded from UserJSON (not in database)
	User *User `db:"-"`
}

func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
