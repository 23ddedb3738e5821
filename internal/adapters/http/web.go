package web

import (
	"context"
	"net/http"
	"time"

	"scholardesk/internal/adapters/backend"
	"scholardesk/internal/adapters/http/middleware"
	"scholardesk/internal/adapters/sampledata"
	sessionStore "scholardesk/internal/adapters/storage/session"
	"scholardesk/internal/domain/session"
)

// ContextSessions resolves backend credentials from the request context the
// Auth middleware populated, satisfying backend.SessionProvider.
type ContextSessions struct{}

// Current implements backend.SessionProvider.
func (ContextSessions) Current(ctx context.Context) (session.Session, bool) {
	return middleware.GetSessionFromContext(ctx)
}

// Deps holds the adapters the web layer drives. The backend client is the
// system of record for every entity; Sample backs the two admin screens
// the backend has no routes for yet.
type Deps struct {
	Backend  *backend.Client
	Sessions sessionStore.Store
	Sample   *sampledata.Store
}

// Global deps instance (set by NewMux)
var deps *Deps

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// NewMux wires HTTP handlers for the dashboard.
// PRE: d is fully populated; csrfKey is 32 bytes
// POST: handler ready to serve, wrapped in the middleware chain
func NewMux(staticDir string, d *Deps, csrfKey []byte, trustedOrigins []string, secureCookies bool) http.Handler {
	deps = d
	middleware.SecureCookies = secureCookies

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	registerRoutes(mux)

	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: RateLimit -> Auth -> CSRF -> SecurityHeaders -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey, trustedOrigins),
		middleware.Auth(d.Sessions),
		middleware.RateLimit(limiter),
	)
}
