package session

import (
	"context"
	"errors"

	domain "scholardesk/internal/domain/session"
)

// ErrNotFound is returned when no live session exists for a token.
var ErrNotFound = errors.New("session not found")

// TTL is how long a dashboard session stays valid after login.
const TTLHours = 24

// Store persists login sessions across process restarts so a page reload
// (or server redeploy) does not log everyone out.
type Store interface {
	Create(ctx context.Context, sess domain.Session) (token string, err error)
	Get(ctx context.Context, token string) (domain.Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) error
}
