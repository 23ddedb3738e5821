package session

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	domain "scholardesk/internal/domain/session"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

// SQLiteStore implements Store using SQLite. The session is stored as one
// JSON blob per token and cleared wholesale on logout.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db, now: time.Now}
}

// SetNow overrides the clock. Intended for use in tests.
func (s *SQLiteStore) SetNow(now func() time.Time) {
	s.now = now
}

// Create stores a new session and returns its token.
// PRE: sess has been validated
// POST: Session is persisted under a fresh random token
func (s *SQLiteStore) Create(ctx context.Context, sess domain.Session) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}
	payload, err := json.Marshal(sess)
	if err != nil {
		return "", err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO dashboard_session (token, payload, created_at) VALUES (?, ?, ?)`,
		token, string(payload), s.now().UTC().Format(timeLayout))
	if err != nil {
		return "", err
	}
	return token, nil
}

// Get retrieves a live session by token. Sessions past the TTL, or whose
// backend bearer token has expired, are deleted and reported as not found.
// PRE: token is non-empty
// POST: Returns the session or ErrNotFound
func (s *SQLiteStore) Get(ctx context.Context, token string) (domain.Session, error) {
	var payload, createdAt string
	row := s.db.QueryRowContext(ctx,
		`SELECT payload, created_at FROM dashboard_session WHERE token = ?`, token)
	if err := row.Scan(&payload, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Session{}, ErrNotFound
		}
		return domain.Session{}, err
	}

	var sess domain.Session
	if err := json.Unmarshal([]byte(payload), &sess); err != nil {
		// Unreadable row: drop it rather than serve a corrupt session.
		_ = s.Delete(ctx, token)
		return domain.Session{}, ErrNotFound
	}

	created, err := time.Parse(timeLayout, createdAt)
	if err != nil || s.now().Sub(created) > TTLHours*time.Hour || sess.Expired(s.now()) {
		_ = s.Delete(ctx, token)
		return domain.Session{}, ErrNotFound
	}
	return sess, nil
}

// Delete removes a session by token.
// PRE: token is non-empty
// POST: Session with given token is removed
func (s *SQLiteStore) Delete(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM dashboard_session WHERE token = ?`, token)
	return err
}

// DeleteExpired removes every session past the TTL.
// PRE: none
// POST: only sessions younger than the TTL remain
func (s *SQLiteStore) DeleteExpired(ctx context.Context) error {
	cutoff := s.now().Add(-TTLHours * time.Hour).UTC().Format(timeLayout)
	_, err := s.db.ExecContext(ctx, `DELETE FROM dashboard_session WHERE created_at < ?`, cutoff)
	return err
}

func generateToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
