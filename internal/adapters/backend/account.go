package backend

import (
	"context"
	"net/http"
	"net/url"

	"scholardesk/internal/application/listutil"
	"scholardesk/internal/domain/account"
)

// ListAdmins returns one page of admin accounts. Status may be "all" or
// one of the account status values; "all" is sent verbatim, matching the
// backend's filter contract.
// GET /admin/accounts?page=&limit=&search=&status=
func (c *Client) ListAdmins(ctx context.Context, q ListQuery) ([]account.Admin, listutil.PageInfo, error) {
	if q.Status == "" {
		q.Status = "all"
	}
	env, err := c.getJSON(ctx, "/admin/accounts", q.Values())
	if err != nil {
		return nil, listutil.PageInfo{}, err
	}
	return decodePage[account.Admin](env, q)
}

// UpdateAdminStatus approves or declines a pending admin account.
// PUT /admin/accounts {user_id, status}
func (c *Client) UpdateAdminStatus(ctx context.Context, userID, status string) error {
	payload := map[string]string{"user_id": userID, "status": status}
	_, err := c.sendJSON(ctx, http.MethodPut, "/admin/accounts", nil, payload)
	return err
}

// DeleteAdmin removes an admin account.
// DELETE /admin/accounts?user_id=
func (c *Client) DeleteAdmin(ctx context.Context, userID string) error {
	query := url.Values{"user_id": {userID}}
	_, err := c.do(ctx, http.MethodDelete, "/admin/accounts", query, nil, "application/json")
	return err
}
