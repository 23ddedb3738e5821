package browser_test

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"

	_ "modernc.org/sqlite"

	"scholardesk/internal/adapters/backend"
	web "scholardesk/internal/adapters/http"
	"scholardesk/internal/adapters/sampledata"
	"scholardesk/internal/adapters/storage"
	sessionStore "scholardesk/internal/adapters/storage/session"
)

const (
	testStudentNumber = "2021-00412"
	testPassword      = "correct horse"
	testCSRFKey       = "0123456789abcdef0123456789abcdef"
)

// fakeBackend is an in-process stand-in for the scholarship REST service.
// It speaks the {success, data, pagination, error} envelope and enough of
// the student routes for the dashboard to function.
type fakeBackend struct {
	mu           sync.Mutex
	scholarships []map[string]any
}

func newFakeBackend() *fakeBackend {
	f := &fakeBackend{}
	for i := 1; i <= 12; i++ {
		f.scholarships = append(f.scholarships, map[string]any{
			"scholarship_id":    i,
			"scholarship_title": fmt.Sprintf("Grant %02d", i),
			"description":       "Awarded every semester.",
			"status":            "active",
			"start_date":        "2026-01-01",
			"end_date":          "2026-12-31",
			"amount":            5000.0,
			"course_codes":      []string{"BSCS"},
			"scholarship_forms": []map[string]any{
				{"scholarship_form_id": 1, "scholarship_form_name": "Income Certificate"},
			},
		})
	}
	return f
}

func (f *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/login", f.handleLogin)
	mux.HandleFunc("/student/scholarship", f.handleScholarships)
	mux.HandleFunc("/student/applications", func(w http.ResponseWriter, r *http.Request) {
		f.writePage(w, r, nil)
	})
	mux.HandleFunc("/student/announcement", func(w http.ResponseWriter, r *http.Request) {
		f.writePage(w, r, []map[string]any{
			{"announcement_id": 1, "title": "Scholarship week", "description": "Applications open **now**.", "author_name": "Registrar", "created_at": "2026-08-01T08:00:00Z"},
		})
	})
	mux.HandleFunc("/student/profile", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, map[string]any{
			"student_number": testStudentNumber,
			"first_name":     "Maria", "last_name": "Santos",
			"email": "maria@example.edu", "course_code": "BSCS", "year_level": 3,
		}, nil)
	})
	mux.HandleFunc("/student/course", func(w http.ResponseWriter, r *http.Request) {
		f.writePage(w, r, []map[string]any{
			{"course_code": "BSCS", "course_name": "BS Computer Science"},
		})
	})
	return mux
}

func (f *fakeBackend) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		StudentNumber string `json:"student_number"`
		Password      string `json:"password"`
	}
	_ = json.NewDecoder(r.Body).Decode(&creds)
	if creds.StudentNumber != testStudentNumber || creds.Password != testPassword {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "wrong student number or password"})
		return
	}
	writeEnvelope(w, map[string]any{
		"user_id": testStudentNumber, "name": "Maria Santos",
		"email": "maria@example.edu", "api_key": "test-api-key", "csrf_token": "test-csrf",
	}, nil)
}

func (f *fakeBackend) handleScholarships(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	rows := make([]map[string]any, 0, len(f.scholarships))
	search := r.URL.Query().Get("search")
	for _, s := range f.scholarships {
		if search == "" || containsFold(s["scholarship_title"].(string), search) {
			rows = append(rows, s)
		}
	}
	f.mu.Unlock()
	f.writePage(w, r, rows)
}

// writePage slices rows to the requested page and emits the envelope with
// pagination metadata.
func (f *fakeBackend) writePage(w http.ResponseWriter, r *http.Request, rows []map[string]any) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	total := len(rows)
	totalPages := (total + limit - 1) / limit
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	writeEnvelope(w, rows[start:end], map[string]any{
		"current_page": page, "per_page": limit,
		"total_items": total, "total_pages": totalPages,
		"has_next": page < totalPages, "has_prev": page > 1,
	})
}

func writeEnvelope(w http.ResponseWriter, data any, pagination any) {
	w.Header().Set("Content-Type", "application/json")
	body := map[string]any{"success": true, "data": data}
	if pagination != nil {
		body["pagination"] = pagination
	}
	_ = json.NewEncoder(w).Encode(body)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// testApp holds the running dashboard, its fake backend and the Playwright
// handles.
type testApp struct {
	BaseURL string
	API     *fakeBackend
	DB      *sql.DB
	Server  *http.Server
	PW      *playwright.Playwright
	Browser playwright.Browser
}

// newTestApp wires a dashboard against a fake backend with a temp SQLite
// session store and starts an HTTP server plus a headless browser.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	api := newFakeBackend()
	apiSrv := httptest.NewServer(api.handler())
	t.Cleanup(apiSrv.Close)

	dbPath := filepath.Join(t.TempDir(), "test.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("failed to open test DB: %v", err)
	}
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("failed to init test DB: %v", err)
	}

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to find free port: %v", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()

	// Change to project root so relative template/static paths work
	projectRoot := findProjectRoot(t)
	origDir, _ := os.Getwd()
	if err := os.Chdir(projectRoot); err != nil {
		t.Fatalf("failed to chdir to project root: %v", err)
	}
	t.Cleanup(func() { os.Chdir(origDir) })

	deps := &web.Deps{
		Backend:  backend.New(apiSrv.URL, web.ContextSessions{}, nil),
		Sessions: sessionStore.NewSQLiteStore(db),
		Sample:   sampledata.New(),
	}
	trustedOrigins := []string{
		fmt.Sprintf("127.0.0.1:%d", port),
		fmt.Sprintf("localhost:%d", port),
	}
	mux := web.NewMux("static", deps, []byte(testCSRFKey), trustedOrigins, false)
	srv := &http.Server{
		Addr:    fmt.Sprintf("127.0.0.1:%d", port),
		Handler: mux,
	}
	go func() {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("test server error: %v", err)
		}
	}()

	// Wait for server to be ready
	baseURL := fmt.Sprintf("http://127.0.0.1:%d", port)
	for i := 0; i < 50; i++ {
		resp, err := http.Get(baseURL + "/login")
		if err == nil {
			resp.Body.Close()
			break
		}
		time.Sleep(100 * time.Millisecond)
	}

	pw, err := playwright.Run()
	if err != nil {
		t.Fatalf("failed to start Playwright: %v", err)
	}
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		t.Fatalf("failed to launch browser: %v", err)
	}

	app := &testApp{
		BaseURL: baseURL,
		API:     api,
		DB:      db,
		Server:  srv,
		PW:      pw,
		Browser: browser,
	}

	t.Cleanup(func() {
		browser.Close()
		pw.Stop()
		srv.Close()
		db.Close()
	})

	return app
}

// newPage creates a new browser page (tab).
func (a *testApp) newPage(t *testing.T) playwright.Page {
	t.Helper()
	page, err := a.Browser.NewPage()
	if err != nil {
		t.Fatalf("failed to create page: %v", err)
	}
	t.Cleanup(func() { page.Close() })
	return page
}

// login signs in as the seeded student and waits for the dashboard.
func (a *testApp) login(t *testing.T, page playwright.Page) {
	t.Helper()
	if _, err := page.Goto(a.BaseURL + "/login"); err != nil {
		t.Fatalf("failed to navigate to login: %v", err)
	}
	if err := page.Locator("input[name=student_number]").Fill(testStudentNumber); err != nil {
		t.Fatalf("failed to fill student number: %v", err)
	}
	if err := page.Locator("input[name=password]").Fill(testPassword); err != nil {
		t.Fatalf("failed to fill password: %v", err)
	}
	if err := page.Locator("button[type=submit]").Click(); err != nil {
		t.Fatalf("failed to click login: %v", err)
	}
	if err := page.WaitForURL(a.BaseURL+"/dashboard", playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(10000),
	}); err != nil {
		t.Fatalf("login did not redirect to dashboard: %v", err)
	}
}

// findProjectRoot walks up from the working directory to find the project root (contains go.mod).
func findProjectRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatalf("could not find project root (go.mod) from working directory")
		}
		dir = parent
	}
}
