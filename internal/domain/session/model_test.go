package session_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"scholardesk/internal/domain/session"
)

// TestSession_Validate tests validation of Session.
func TestSession_Validate(t *testing.T) {
	tests := []struct {
		name    string
		sess    session.Session
		wantErr error
	}{
		{
			name: "valid student",
			sess: session.Session{UserID: "2021-00412", Role: session.RoleStudent, APIKey: "key"},
		},
		{
			name: "valid admin",
			sess: session.Session{UserID: "admin-1", Role: session.RoleAdmin, APIKey: "key"},
		},
		{
			name:    "empty user id",
			sess:    session.Session{Role: session.RoleStudent, APIKey: "key"},
			wantErr: session.ErrEmptyUserID,
		},
		{
			name:    "invalid role",
			sess:    session.Session{UserID: "u", Role: "superuser", APIKey: "key"},
			wantErr: session.ErrInvalidRole,
		},
		{
			name:    "empty api key",
			sess:    session.Session{UserID: "u", Role: session.RoleAdmin},
			wantErr: session.ErrEmptyAPIKey,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.sess.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestSession_HomePath tests the role landing routes.
func TestSession_HomePath(t *testing.T) {
	student := session.Session{Role: session.RoleStudent}
	if got := student.HomePath(); got != "/dashboard" {
		t.Errorf("student HomePath = %q", got)
	}
	admin := session.Session{Role: session.RoleAdmin}
	if got := admin.HomePath(); got != "/admin" {
		t.Errorf("admin HomePath = %q", got)
	}
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()})
	signed, err := token.SignedString([]byte("backend-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

// TestSession_Expired tests JWT exp handling and the opaque-key fallback.
func TestSession_Expired(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		apiKey string
		want   bool
	}{
		{name: "jwt in the future", apiKey: signedToken(t, now.Add(time.Hour)), want: false},
		{name: "jwt in the past", apiKey: signedToken(t, now.Add(-time.Hour)), want: true},
		{name: "opaque key never expires locally", apiKey: "not-a-jwt", want: false},
		{name: "empty key", apiKey: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := session.Session{APIKey: tt.apiKey}
			if got := sess.Expired(now); got != tt.want {
				t.Errorf("Expired() = %v, want %v", got, tt.want)
			}
		})
	}
}
