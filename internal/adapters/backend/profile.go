package backend

import (
	"context"
	"net/http"
)

// AdminProfile is the signed-in administrator's own record.
type AdminProfile struct {
	UserID     string `json:"user_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// GetAdminProfile fetches the signed-in administrator's profile.
// GET /admin/profile
func (c *Client) GetAdminProfile(ctx context.Context) (AdminProfile, error) {
	env, err := c.getJSON(ctx, "/admin/profile", nil)
	if err != nil {
		return AdminProfile{}, err
	}
	return decodeData[AdminProfile](env)
}

// UpdateAdminProfile updates the signed-in administrator's profile.
// PUT /admin/profile {first_name, last_name, department}
func (c *Client) UpdateAdminProfile(ctx context.Context, firstName, lastName, dept string) error {
	payload := map[string]string{
		"first_name": firstName,
		"last_name":  lastName,
		"department": dept,
	}
	_, err := c.sendJSON(ctx, http.MethodPut, "/admin/profile", nil, payload)
	return err
}
