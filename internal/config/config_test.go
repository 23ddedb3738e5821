package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"scholardesk/internal/config"
)

const validKey = "0123456789abcdef0123456789abcdef"

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scholardesk.yml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// TestLoad_FileAndDefaults tests that file values land and untouched
// fields keep their defaults.
func TestLoad_FileAndDefaults(t *testing.T) {
	path := writeConfig(t, `
backend_url: https://api.example.edu
csrf_key: "`+validKey+`"
addr: ":9090"
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BackendURL != "https://api.example.edu" || cfg.Addr != ":9090" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.SessionDB != "scholardesk.db" || cfg.StaticDir != "static" || cfg.Env != "development" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if cfg.Production() {
		t.Error("development config reports production")
	}
}

// TestLoad_EnvOverridesFile tests the precedence order.
func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
backend_url: https://file.example.edu
csrf_key: "`+validKey+`"
env: development
`)
	t.Setenv("SCHOLARDESK_BACKEND_URL", "https://env.example.edu")
	t.Setenv("SCHOLARDESK_ENV", "production")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BackendURL != "https://env.example.edu" {
		t.Errorf("BackendURL = %q, want the env value", cfg.BackendURL)
	}
	if !cfg.Production() {
		t.Error("env override to production not applied")
	}
}

// TestLoad_MissingFileIsFine tests that a non-existent path only fails
// when required values are absent too.
func TestLoad_MissingFileIsFine(t *testing.T) {
	t.Setenv("SCHOLARDESK_BACKEND_URL", "https://env.example.edu")
	t.Setenv("SCHOLARDESK_CSRF_KEY", validKey)

	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BackendURL != "https://env.example.edu" {
		t.Errorf("BackendURL = %q", cfg.BackendURL)
	}
}

// TestLoad_Validation tests the two required fields.
func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{
			name:    "missing backend url",
			body:    `csrf_key: "` + validKey + `"`,
			wantErr: config.ErrMissingBackendURL,
		},
		{
			name:    "short csrf key",
			body:    "backend_url: https://api.example.edu\ncsrf_key: tooshort\n",
			wantErr: config.ErrBadCSRFKey,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.body)
			if _, err := config.Load(path); !errors.Is(err, tt.wantErr) {
				t.Errorf("Load = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
