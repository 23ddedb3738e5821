package main

import (
	"context"
	"database/sql"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"scholardesk/internal/adapters/backend"
	web "scholardesk/internal/adapters/http"
	"scholardesk/internal/adapters/sampledata"
	"scholardesk/internal/adapters/storage"
	sessionStore "scholardesk/internal/adapters/storage/session"
	"scholardesk/internal/config"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load(envOrDefault("SCHOLARDESK_CONFIG", "scholardesk.yml"))
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	// Session database with WAL mode, foreign keys, and busy timeout
	dsn := cfg.SessionDB + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}
	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	sessions := sessionStore.NewSQLiteStore(db)

	// Periodic sweep so abandoned sessions do not accumulate.
	stopSweep := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := sessions.DeleteExpired(context.Background()); err != nil {
					slog.Warn("session_sweep_failed", "error", err.Error())
				}
			case <-stopSweep:
				return
			}
		}
	}()
	defer close(stopSweep)

	deps := &web.Deps{
		Backend:  backend.New(cfg.BackendURL, web.ContextSessions{}, nil),
		Sessions: sessions,
		Sample:   sampledata.New(),
	}

	mux := web.NewMux(cfg.StaticDir, deps, []byte(cfg.CSRFKey), cfg.TrustedOrigins, cfg.Production())

	log.Printf("ScholarDesk %s starting on %s (env=%s, backend=%s)", version, cfg.Addr, cfg.Env, cfg.BackendURL)
	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
