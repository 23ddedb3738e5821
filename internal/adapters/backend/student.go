package backend

import (
	"context"
	"fmt"
	"net/http"

	"scholardesk/internal/application/listutil"
	"scholardesk/internal/domain/announcement"
	"scholardesk/internal/domain/application"
	"scholardesk/internal/domain/course"
	"scholardesk/internal/domain/scholarship"
	"scholardesk/internal/domain/student"
)

// StudentCourses returns one page of courses from the public student route.
// GET /student/course?page=&limit=&search=
func (c *Client) StudentCourses(ctx context.Context, q ListQuery) ([]course.Course, listutil.PageInfo, error) {
	env, err := c.getJSON(ctx, "/student/course", q.Values())
	if err != nil {
		return nil, listutil.PageInfo{}, err
	}
	return decodePage[course.Course](env, q)
}

// StudentScholarships returns one page of scholarships visible to the
// signed-in student.
// GET /student/scholarship?page=&limit=&search=
func (c *Client) StudentScholarships(ctx context.Context, q ListQuery) ([]scholarship.Scholarship, listutil.PageInfo, error) {
	env, err := c.getJSON(ctx, "/student/scholarship", q.Values())
	if err != nil {
		return nil, listutil.PageInfo{}, err
	}
	return decodeScholarshipPage(env, q)
}

// Apply submits a scholarship application with the completed form files.
// Each file is keyed files[<formName>] as the backend expects.
// POST /student/apply multipart
// PRE: scholarshipID > 0
func (c *Client) Apply(ctx context.Context, scholarshipID int, files map[string]FilePart) error {
	fields := map[string]string{"scholarship_id": fmt.Sprint(scholarshipID)}
	parts := make([]FilePart, 0, len(files))
	for formName, f := range files {
		f.Field = fmt.Sprintf("files[%s]", formName)
		parts = append(parts, f)
	}
	_, err := c.sendMultipart(ctx, http.MethodPost, "/student/apply", nil, fields, parts)
	return err
}

// StudentProfile fetches the signed-in student's profile.
// GET /student/profile
func (c *Client) StudentProfile(ctx context.Context) (student.Profile, error) {
	env, err := c.getJSON(ctx, "/student/profile", nil)
	if err != nil {
		return student.Profile{}, err
	}
	return decodeData[student.Profile](env)
}

// UpdateStudentProfile updates the signed-in student's profile.
// PUT /student/profile
func (c *Client) UpdateStudentProfile(ctx context.Context, p student.Profile) error {
	_, err := c.sendJSON(ctx, http.MethodPut, "/student/profile", nil, p)
	return err
}

// StudentApplications returns one page of the student's own applications.
// Statuses are normalized to the canonical vocabulary on the way in.
// GET /student/applications?page=&limit=
func (c *Client) StudentApplications(ctx context.Context, q ListQuery) ([]application.Application, listutil.PageInfo, error) {
	env, err := c.getJSON(ctx, "/student/applications", q.Values())
	if err != nil {
		return nil, listutil.PageInfo{}, err
	}
	items, info, err := decodePage[application.Application](env, q)
	if err != nil {
		return nil, listutil.PageInfo{}, err
	}
	for i := range items {
		items[i].Status = application.NormalizeStatus(items[i].Status)
	}
	return items, info, nil
}

// StudentAnnouncements returns one page of announcements.
// GET /student/announcement?page=&limit=&search=
func (c *Client) StudentAnnouncements(ctx context.Context, q ListQuery) ([]announcement.Announcement, listutil.PageInfo, error) {
	env, err := c.getJSON(ctx, "/student/announcement", q.Values())
	if err != nil {
		return nil, listutil.PageInfo{}, err
	}
	return decodePage[announcement.Announcement](env, q)
}
