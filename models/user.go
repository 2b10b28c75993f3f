package models

import "time"

// Account is the identity record: credentials only.
type Account struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Disabled  bool      `json:"disabled"`
	CreatedAt time.Time `json:"created_at"`
}

type UserPreferences struct {
	Newsletter bool `json:"newsletter"`
	Marketing  bool `json:"marketing"`
}

// User is the profile document stored next to the account.
type User struct {
	ID          string          `json:"id"`
	Email       string          `json:"email"`
	DisplayName string          `json:"display_name"`
	Phone       string          `json:"phone,omitempty"`
	PhotoURL    string          `json:"photo_url,omitempty"`
	IsAdmin     bool            `json:"is_admin"`
	Preferences UserPreferences `json:"preferences"`
	CreatedAt   time.Time       `json:"created_at"`
	LastLoginAt *time.Time      `json:"last_login_at,omitempty"`
}

type SessionState string

// A sign-in in progress is the login request itself, so only the settled
// states are ever reported.
const (
	SignedOut SessionState = "signed_out"
	SignedIn  SessionState = "signed_in"
)

type Session struct {
	ID        string       `json:"id"`
	Token     string       `json:"token,omitempty"`
	State     SessionState `json:"state"`
	User      User         `json:"user"`
	IssuedAt  time.Time    `json:"issued_at"`
	ExpiresAt time.Time    `json:"expires_at"`
}

func (s *Session) UserID() string {
	if s == nil {
		return ""
	}
	return s.User.ID
}

const (
	SessionEventSignedIn  = "signed_in"
	SessionEventSignedOut = "signed_out"
	SessionEventUpdated   = "updated"
)

type SessionEvent struct {
	Type      string    `json:"type"`
	SessionID string    `json:"session_id,omitempty"`
	User      *User     `json:"user,omitempty"`
	At        time.Time `json:"at"`
}
