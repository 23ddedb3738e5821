package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"scholardesk/internal/application/listutil"
	"scholardesk/internal/domain/department"
)

// CreateDepartment adds a department.
// POST /admin/department {department_name}
func (c *Client) CreateDepartment(ctx context.Context, name string) error {
	payload := map[string]string{"department_name": name}
	_, err := c.sendJSON(ctx, http.MethodPost, "/admin/department", nil, payload)
	return err
}

// ListDepartments returns one page of departments matching the query.
// GET /admin/department?page=&limit=&search=
func (c *Client) ListDepartments(ctx context.Context, q ListQuery) ([]department.Department, listutil.PageInfo, error) {
	env, err := c.getJSON(ctx, "/admin/department", q.Values())
	if err != nil {
		return nil, listutil.PageInfo{}, err
	}
	return decodePage[department.Department](env, q)
}

// UpdateDepartment renames a department.
// PUT /admin/department?department_id= {department_name}
func (c *Client) UpdateDepartment(ctx context.Context, dep department.Department) error {
	query := url.Values{"department_id": {fmt.Sprint(dep.ID)}}
	payload := map[string]string{"department_name": dep.Name}
	_, err := c.sendJSON(ctx, http.MethodPut, "/admin/department", query, payload)
	return err
}

// DeleteDepartment removes one department by id.
// DELETE /admin/department?department_id=
func (c *Client) DeleteDepartment(ctx context.Context, id int) error {
	query := url.Values{"department_id": {fmt.Sprint(id)}}
	_, err := c.do(ctx, http.MethodDelete, "/admin/department", query, nil, "application/json")
	return err
}

// DeleteAllDepartments removes every department.
// DELETE /admin/department?delete_all=true
func (c *Client) DeleteAllDepartments(ctx context.Context) error {
	query := url.Values{"delete_all": {"true"}}
	_, err := c.do(ctx, http.MethodDelete, "/admin/department", query, nil, "application/json")
	return err
}
