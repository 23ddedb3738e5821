package web

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"scholardesk/internal/adapters/http/middleware"
	"scholardesk/internal/application/listctrl"
	"scholardesk/internal/application/listutil"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), so an
// announcement body can never inject script into the page.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// TemplatesDir locates the page templates; tests running from another
// directory override it.
var TemplatesDir = "internal/adapters/http/templates"

func isHTMLRequest(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/html") || strings.Contains(accept, "application/xhtml+xml")
}

// internalError logs the real error and returns a generic message.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data map[string]any) {
	sess, loggedIn := middleware.GetSessionFromContext(r.Context())

	funcMap := template.FuncMap{
		"currentRole":  func() string { return sess.Role },
		"currentName":  func() string { return sess.Name },
		"currentEmail": func() string { return sess.Email },
		"isLoggedIn":   func() bool { return loggedIn },
		"isAdmin":      func() bool { return sess.IsAdmin() },
		"csrfToken":    func() string { return csrf.Token(r) },
		"add":          func(a, b int) int { return a + b },
		"sub":          func(a, b int) int { return a - b },
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
		"formatDate": func(t time.Time) string {
			if t.IsZero() {
				return "—"
			}
			return t.Format("Jan 2, 2006")
		},
		"formatAmount": func(amount float64, set bool) string {
			if !set {
				return "—"
			}
			return fmt.Sprintf("₱%.2f", amount)
		},
		"errText": errText,
		"paginationQuery": func(page int, search, status string, perPage int) template.URL {
			q := fmt.Sprintf("page=%d", page)
			if search != "" {
				q += "&search=" + template.URLQueryEscaper(search)
			}
			if status != "" {
				q += "&status=" + template.URLQueryEscaper(status)
			}
			if perPage > 0 {
				q += fmt.Sprintf("&limit=%d", perPage)
			}
			return template.URL(q)
		},
	}

	if flash, ok := popFlash(w, r); ok {
		data["Flash"] = flash
	}

	layoutPath := filepath.Join(TemplatesDir, "layout.html")
	partialsPath := filepath.Join(TemplatesDir, "partials.html")
	pagePath := filepath.Join(TemplatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, partialsPath, pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
}

// listData assembles the template payload every entity list page shares.
func listData[T any](view listctrl.View[T]) map[string]any {
	return map[string]any{
		"Items":          view.Items,
		"PageInfo":       view.PageInfo,
		"Search":         view.Search,
		"Status":         view.Status,
		"Empty":          view.Empty,
		"Err":            errText(view.Err),
		"PerPageOptions": listutil.PerPageOptions,
	}
}

// errText renders an error for the page; nil is the empty string.
func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
