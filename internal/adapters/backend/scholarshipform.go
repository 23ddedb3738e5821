package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"scholardesk/internal/application/listutil"
	"scholardesk/internal/domain/scholarshipform"
)

// CreateScholarshipForm uploads a new form template.
// POST /admin/scholarship-form multipart {scholarship_form_name, scholarship_form}
// PRE: file.Reader is non-nil
func (c *Client) CreateScholarshipForm(ctx context.Context, name string, file FilePart) error {
	if file.Reader == nil {
		return &APIError{Message: scholarshipform.ErrMissingFile.Error()}
	}
	file.Field = "scholarship_form"
	fields := map[string]string{"scholarship_form_name": name}
	_, err := c.sendMultipart(ctx, http.MethodPost, "/admin/scholarship-form", nil, fields, []FilePart{file})
	return err
}

// ListScholarshipForms returns one page of form templates.
// GET /admin/scholarship-form?page=&limit=&search=
func (c *Client) ListScholarshipForms(ctx context.Context, q ListQuery) ([]scholarshipform.Form, listutil.PageInfo, error) {
	env, err := c.getJSON(ctx, "/admin/scholarship-form", q.Values())
	if err != nil {
		return nil, listutil.PageInfo{}, err
	}
	return decodePage[scholarshipform.Form](env, q)
}

// EditScholarshipForm updates a form's name and optionally replaces its
// file; a nil file keeps the stored one. The backend models the edit as a
// multipart POST, not a PUT.
// POST /admin/scholarship-forms?scholarship_form_id= multipart
func (c *Client) EditScholarshipForm(ctx context.Context, id int, name string, file *FilePart) error {
	query := url.Values{"scholarship_form_id": {fmt.Sprint(id)}}
	fields := map[string]string{}
	if name != "" {
		fields["scholarship_form_name"] = name
	}
	var files []FilePart
	if file != nil && file.Reader != nil {
		f := *file
		f.Field = "scholarship_form"
		files = append(files, f)
	}
	_, err := c.sendMultipart(ctx, http.MethodPost, "/admin/scholarship-forms", query, fields, files)
	return err
}

// DeleteScholarshipForm removes one form template by id.
// DELETE /admin/scholarship-form?scholarship_form_id=
func (c *Client) DeleteScholarshipForm(ctx context.Context, id int) error {
	query := url.Values{"scholarship_form_id": {fmt.Sprint(id)}}
	_, err := c.do(ctx, http.MethodDelete, "/admin/scholarship-form", query, nil, "application/json")
	return err
}

// DeleteAllScholarshipForms removes every form template.
// DELETE /admin/scholarship-form?delete_all=true
func (c *Client) DeleteAllScholarshipForms(ctx context.Context) error {
	query := url.Values{"delete_all": {"true"}}
	_, err := c.do(ctx, http.MethodDelete, "/admin/scholarship-form", query, nil, "application/json")
	return err
}
