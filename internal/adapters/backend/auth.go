package backend

import (
	"context"
	"net/http"
	"time"

	"scholardesk/internal/domain/session"
	"scholardesk/internal/domain/student"
)

// loginPayload is the identity blob both login endpoints return.
type loginPayload struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	APIKey    string `json:"api_key"`
	CSRFToken string `json:"csrf_token"`
}

func (p loginPayload) toSession(role string, now time.Time) session.Session {
	return session.Session{
		UserID:    p.UserID,
		Role:      role,
		Name:      p.Name,
		Email:     p.Email,
		APIKey:    p.APIKey,
		CSRFToken: p.CSRFToken,
		CreatedAt: now,
	}
}

// StudentLogin authenticates a student and returns the session identity.
// Login endpoints attach no credentials — the session does not exist yet.
// POST /login {student_number, password}
func (c *Client) StudentLogin(ctx context.Context, studentNumber, password string) (session.Session, error) {
	payload := map[string]string{
		"student_number": studentNumber,
		"password":       password,
	}
	env, err := c.sendJSON(ctx, http.MethodPost, "/login", nil, payload)
	if err != nil {
		return session.Session{}, err
	}
	data, err := decodeData[loginPayload](env)
	if err != nil {
		return session.Session{}, err
	}
	return data.toSession(session.RoleStudent, time.Now()), nil
}

// StudentRegister submits the multipart registration form. The optional
// file is the proof-of-enrolment document.
// POST /register multipart
func (c *Client) StudentRegister(ctx context.Context, reg student.Registration, proof *FilePart) error {
	fields := map[string]string{
		"student_number": reg.StudentNumber,
		"first_name":     reg.FirstName,
		"last_name":      reg.LastName,
		"email":          reg.Email,
		"course_code":    reg.CourseCode,
		"password":       reg.Password,
	}
	var files []FilePart
	if proof != nil && proof.Reader != nil {
		f := *proof
		if f.Field == "" {
			f.Field = "enrollment_proof"
		}
		files = append(files, f)
	}
	_, err := c.sendMultipart(ctx, http.MethodPost, "/register", nil, fields, files)
	return err
}

// AdminCallback exchanges a Google ID token for an admin session. The
// sign-in flow itself is out of scope; the dashboard only forwards the
// token the provider handed back.
// POST /callback {google_token}
func (c *Client) AdminCallback(ctx context.Context, googleToken string) (session.Session, error) {
	payload := map[string]string{"google_token": googleToken}
	env, err := c.sendJSON(ctx, http.MethodPost, "/callback", nil, payload)
	if err != nil {
		return session.Session{}, err
	}
	data, err := decodeData[loginPayload](env)
	if err != nil {
		return session.Session{}, err
	}
	return data.toSession(session.RoleAdmin, time.Now()), nil
}
