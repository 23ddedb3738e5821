package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role constants
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// ValidRoles contains all valid role values.
var ValidRoles = []string{RoleStudent, RoleAdmin}

// Domain errors
var (
	ErrInvalidRole  = errors.New("session role must be one of: student, admin")
	ErrEmptyUserID  = errors.New("session user ID cannot be empty")
	ErrEmptyAPIKey  = errors.New("session API key cannot be empty")
	ErrSessionStale = errors.New("session has expired")
)

// Session holds the authenticated identity for one logged-in browser.
// The APIKey and CSRFToken are issued by the student-affairs backend at
// login and attached to every backend call for the life of the session.
type Session struct {
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"` // student, admin
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	APIKey    string    `json:"api_key"`    // bearer token for the backend
	CSRFToken string    `json:"csrf_token"` // backend CSRF token
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks if the Session has valid data.
// PRE: Session struct is populated
// POST: Returns nil if valid, error otherwise
func (s *Session) Validate() error {
	if s.UserID == "" {
		return ErrEmptyUserID
	}
	if s.Role != RoleStudent && s.Role != RoleAdmin {
		return ErrInvalidRole
	}
	if s.APIKey == "" {
		return ErrEmptyAPIKey
	}
	return nil
}

// IsAdmin reports whether the session belongs to an administrator.
func (s *Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// HomePath returns the landing route for the session's role.
// Mis-roled navigation is redirected here, never rendered.
func (s *Session) HomePath() string {
	if s.Role == RoleAdmin {
		return "/admin"
	}
	return "/dashboard"
}

// Expired reports whether the session's backend bearer token has lapsed.
// When the API key is a JWT we decode (without verifying — the signing key
// belongs to the backend) and honour its exp claim. Opaque keys never
// expire client-side; the backend rejects them with 401 instead.
// PRE: s.APIKey is set
// POST: Returns true only when a decodable exp claim is in the past
func (s *Session) Expired(now time.Time) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(s.APIKey, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
