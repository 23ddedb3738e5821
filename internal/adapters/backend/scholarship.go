package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"scholardesk/internal/application/listutil"
	"scholardesk/internal/domain/scholarship"
	"scholardesk/internal/domain/scholarshipform"
)

// dateLayout is the backend's date-only wire format.
const dateLayout = "2006-01-02"

// scholarshipWire is the backend's scholarship shape. Dates travel as
// date-only strings and a missing amount travels as null, so the domain
// struct gets a dedicated mapping instead of direct tags.
type scholarshipWire struct {
	ID          int      `json:"scholarship_id"`
	Title       string   `json:"scholarship_title"`
	Description string   `json:"description"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Status      string   `json:"status"`
	Amount      *float64               `json:"amount"`
	CourseCodes []string               `json:"course_codes"`
	FormIDs     []int                  `json:"scholarship_form_ids"`
	Forms       []scholarshipform.Form `json:"scholarship_forms,omitempty"`
}

func scholarshipToWire(s scholarship.Scholarship) scholarshipWire {
	w := scholarshipWire{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Status:      s.Status,
		CourseCodes: s.CourseCodes,
		FormIDs:     s.FormIDs,
	}
	if w.CourseCodes == nil {
		w.CourseCodes = []string{}
	}
	if w.FormIDs == nil {
		w.FormIDs = []int{}
	}
	if !s.StartDate.IsZero() {
		w.StartDate = s.StartDate.Format(dateLayout)
	}
	if !s.EndDate.IsZero() {
		w.EndDate = s.EndDate.Format(dateLayout)
	}
	if s.AmountSet {
		amount := s.Amount
		w.Amount = &amount
	}
	return w
}

func scholarshipFromWire(w scholarshipWire) scholarship.Scholarship {
	s := scholarship.Scholarship{
		ID:          w.ID,
		Title:       w.Title,
		Description: w.Description,
		Status:      w.Status,
		CourseCodes: w.CourseCodes,
		FormIDs:     w.FormIDs,
		Forms:       w.Forms,
	}
	if t, err := time.Parse(dateLayout, w.StartDate); err == nil {
		s.StartDate = t
	}
	if t, err := time.Parse(dateLayout, w.EndDate); err == nil {
		s.EndDate = t
	}
	if w.Amount != nil {
		s.Amount = *w.Amount
		s.AmountSet = true
	}
	return s
}

// CreateScholarship adds a scholarship with its course and form links.
// POST /admin/scholarship
func (c *Client) CreateScholarship(ctx context.Context, s scholarship.Scholarship) error {
	_, err := c.sendJSON(ctx, http.MethodPost, "/admin/scholarship", nil, scholarshipToWire(s))
	return err
}

// ListScholarships returns one page of scholarships matching the query.
// GET /admin/scholarship?page=&limit=&search=
func (c *Client) ListScholarships(ctx context.Context, q ListQuery) ([]scholarship.Scholarship, listutil.PageInfo, error) {
	env, err := c.getJSON(ctx, "/admin/scholarship", q.Values())
	if err != nil {
		return nil, listutil.PageInfo{}, err
	}
	return decodeScholarshipPage(env, q)
}

// UpdateScholarship replaces a scholarship's fields and associations.
// PUT /admin/scholarship?scholarship_id=
func (c *Client) UpdateScholarship(ctx context.Context, s scholarship.Scholarship) error {
	query := url.Values{"scholarship_id": {fmt.Sprint(s.ID)}}
	_, err := c.sendJSON(ctx, http.MethodPut, "/admin/scholarship", query, scholarshipToWire(s))
	return err
}

// DeleteScholarship removes one scholarship by id.
// DELETE /admin/scholarship?scholarship_id=
func (c *Client) DeleteScholarship(ctx context.Context, id int) error {
	query := url.Values{"scholarship_id": {fmt.Sprint(id)}}
	_, err := c.do(ctx, http.MethodDelete, "/admin/scholarship", query, nil, "application/json")
	return err
}

func decodeScholarshipPage(env envelope, q ListQuery) ([]scholarship.Scholarship, listutil.PageInfo, error) {
	var wires []scholarshipWire
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &wires); err != nil {
			return nil, listutil.PageInfo{}, &APIError{Message: "malformed list data", Err: err}
		}
	}
	items := make([]scholarship.Scholarship, 0, len(wires))
	for _, w := range wires {
		items = append(items, scholarshipFromWire(w))
	}
	var info listutil.PageInfo
	if env.Pagination != nil {
		info = env.Pagination.Normalize()
	} else {
		info = listutil.NewPageInfo(q.Page, q.Limit, len(items))
	}
	return items, info, nil
}
