// Package backend is the API client for the student-affairs service. Each
// exported method is one backend operation: it builds the request, attaches
// the bearer and CSRF credentials from the injected SessionProvider,
// unwraps the {success, data, pagination, error} envelope, and normalizes
// every failure into an *APIError carrying the best available message.
// There are no retries, no caching and no batching.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"scholardesk/internal/application/listutil"
	"scholardesk/internal/domain/session"
)

// SessionProvider supplies the credentials attached to backend calls.
// Injected rather than read from ambient storage so tests can hand the
// client a fake session without touching global state.
type SessionProvider interface {
	Current(ctx context.Context) (session.Session, bool)
}

// APIError is the single normalized failure the client raises. Message is
// the server's structured error when one was sent, the raw response text
// when the body was unparseable, or a generic note for transport failures.
type APIError struct {
	StatusCode int    // 0 for transport failures
	Message    string
	Err        error // underlying transport error, if any
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("backend: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("backend: %s", e.Message)
}

// Unwrap exposes the underlying transport error.
func (e *APIError) Unwrap() error { return e.Err }

// ListQuery carries the standard list parameters every paged GET accepts.
type ListQuery struct {
	Page   int
	Limit  int
	Search string
	Status string // "" or "all" = no status filter
}

// Values encodes the query as backend query parameters.
func (q ListQuery) Values() url.Values {
	v := url.Values{}
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = listutil.DefaultPerPage
	}
	v.Set("page", fmt.Sprint(page))
	v.Set("limit", fmt.Sprint(limit))
	v.Set("search", q.Search)
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	return v
}

// Client talks to one backend base URL.
type Client struct {
	baseURL  string
	http     *http.Client
	sessions SessionProvider
}

// New creates a Client. A nil httpClient gets a 15s-timeout default.
// PRE: baseURL is non-empty; sessions is non-nil
// POST: Client ready for use
func New(baseURL string, sessions SessionProvider, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     httpClient,
		sessions: sessions,
	}
}

// envelope is the backend's uniform response shape.
type envelope struct {
	Success    bool               `json:"success"`
	Data       json.RawMessage    `json:"data"`
	Pagination *listutil.PageInfo `json:"pagination"`
	Error      string             `json:"error"`
}

// FilePart is one file attached to a multipart request. The reader is an
// opaque blob handle — the client never assumes a storage backend.
type FilePart struct {
	Field    string // multipart field name
	Filename string
	Reader   io.Reader
}

// do executes one request and normalizes the outcome.
// PRE: method and path are valid; body may be nil
// POST: returns the parsed envelope, or an *APIError — never both
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (envelope, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return envelope{}, &APIError{Message: "invalid request", Err: err}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Request-ID", uuid.New().String())
	if sess, ok := c.sessions.Current(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+sess.APIKey)
		req.Header.Set("X-CSRF-Token", sess.CSRFToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		slog.Error("backend_error", "method", method, "path", path, "error", err.Error())
		return envelope{}, &APIError{Message: "could not reach the scholarship service", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return envelope{}, &APIError{StatusCode: resp.StatusCode, Message: "could not read response", Err: err}
	}

	var env envelope
	parseErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := env.Error
		if parseErr != nil || msg == "" {
			// No structured error body; fall back to the raw text.
			msg = strings.TrimSpace(string(raw))
			if msg == "" {
				msg = http.StatusText(resp.StatusCode)
			}
		}
		slog.Warn("backend_error", "method", method, "path", path, "status", resp.StatusCode, "message", msg)
		return envelope{}, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if parseErr != nil {
		return envelope{}, &APIError{StatusCode: resp.StatusCode, Message: "malformed response from the scholarship service", Err: parseErr}
	}
	if !env.Success && env.Error != "" {
		return envelope{}, &APIError{StatusCode: resp.StatusCode, Message: env.Error}
	}
	return env, nil
}

// getJSON issues a GET and returns the envelope.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values) (envelope, error) {
	return c.do(ctx, http.MethodGet, path, query, nil, "application/json")
}

// sendJSON issues a request with a JSON-encoded body.
func (c *Client) sendJSON(ctx context.Context, method, path string, query url.Values, payload any) (envelope, error) {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return envelope{}, &APIError{Message: "could not encode request", Err: err}
		}
		body = bytes.NewReader(buf)
	}
	return c.do(ctx, method, path, query, body, "application/json")
}

// sendMultipart issues a request with multipart form fields and files.
// The whole body is buffered; uploaded documents are form-sized, not media.
func (c *Client) sendMultipart(ctx context.Context, method, path string, query url.Values, fields map[string]string, files []FilePart) (envelope, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return envelope{}, &APIError{Message: "could not encode upload", Err: err}
		}
	}
	for _, f := range files {
		part, err := mw.CreateFormFile(f.Field, f.Filename)
		if err != nil {
			return envelope{}, &APIError{Message: "could not encode upload", Err: err}
		}
		if _, err := io.Copy(part, f.Reader); err != nil {
			return envelope{}, &APIError{Message: "could not read upload", Err: err}
		}
	}
	if err := mw.Close(); err != nil {
		return envelope{}, &APIError{Message: "could not encode upload", Err: err}
	}
	return c.do(ctx, method, path, query, &buf, mw.FormDataContentType())
}

// decodePage unwraps a paged envelope into rows plus normalized metadata.
// PRE: env came from a list endpoint
// POST: PageInfo invariants re-derived from the counts
func decodePage[T any](env envelope, q ListQuery) ([]T, listutil.PageInfo, error) {
	var items []T
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &items); err != nil {
			return nil, listutil.PageInfo{}, &APIError{Message: "malformed list data", Err: err}
		}
	}
	var info listutil.PageInfo
	if env.Pagination != nil {
		info = env.Pagination.Normalize()
	} else {
		info = listutil.NewPageInfo(q.Page, q.Limit, len(items))
	}
	return items, info, nil
}

// decodeData unwraps the data field of a non-paged envelope.
func decodeData[T any](env envelope) (T, error) {
	var out T
	if len(env.Data) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return out, &APIError{Message: "malformed response data", Err: err}
	}
	return out, nil
}
