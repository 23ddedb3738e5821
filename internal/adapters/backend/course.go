package backend

import (
	"context"
	"net/http"
	"net/url"

	"scholardesk/internal/application/listutil"
	"scholardesk/internal/domain/course"
)

// CreateCourse adds a course.
// POST /admin/course {course_code, course_name}
func (c *Client) CreateCourse(ctx context.Context, crs course.Course) error {
	_, err := c.sendJSON(ctx, http.MethodPost, "/admin/course", nil, crs)
	return err
}

// ListCourses returns one page of courses matching the query.
// GET /admin/course?page=&limit=&search=
func (c *Client) ListCourses(ctx context.Context, q ListQuery) ([]course.Course, listutil.PageInfo, error) {
	env, err := c.getJSON(ctx, "/admin/course", q.Values())
	if err != nil {
		return nil, listutil.PageInfo{}, err
	}
	return decodePage[course.Course](env, q)
}

// UpdateCourse renames a course. The code is immutable and only identifies
// the row.
// PUT /admin/course?course_code= {course_code, course_name}
func (c *Client) UpdateCourse(ctx context.Context, crs course.Course) error {
	query := url.Values{"course_code": {crs.Code}}
	_, err := c.sendJSON(ctx, http.MethodPut, "/admin/course", query, crs)
	return err
}

// DeleteCourse removes one course by code.
// DELETE /admin/course?course_code=
func (c *Client) DeleteCourse(ctx context.Context, code string) error {
	query := url.Values{"course_code": {code}}
	_, err := c.do(ctx, http.MethodDelete, "/admin/course", query, nil, "application/json")
	return err
}

// DeleteAllCourses removes every course.
// DELETE /admin/course?delete_all=true
func (c *Client) DeleteAllCourses(ctx context.Context) error {
	query := url.Values{"delete_all": {"true"}}
	_, err := c.do(ctx, http.MethodDelete, "/admin/course", query, nil, "application/json")
	return err
}
