package web

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"scholardesk/internal/adapters/backend"
	"scholardesk/internal/adapters/http/middleware"
	"scholardesk/internal/application/listctrl"
	"scholardesk/internal/application/notify"
	"scholardesk/internal/domain/announcement"
	"scholardesk/internal/domain/application"
	"scholardesk/internal/domain/scholarship"
	"scholardesk/internal/domain/student"
)

// handleStudentDashboard shows the signed-in student's landing page: recent
// announcements, their latest applications and a profile summary. Each
// section degrades independently when its fetch fails.
func handleStudentDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	announcements, _, annErr := deps.Backend.StudentAnnouncements(ctx, backend.ListQuery{Page: 1, Limit: 5})
	applications, _, appErr := deps.Backend.StudentApplications(ctx, backend.ListQuery{Page: 1, Limit: 5})
	profile, profErr := deps.Backend.StudentProfile(ctx)

	renderTemplate(w, r, "dashboard.html", map[string]any{
		"Title":            "Dashboard",
		"Announcements":    announcements,
		"AnnouncementsErr": errText(annErr),
		"Applications":     applications,
		"ApplicationsErr":  errText(appErr),
		"Profile":          profile,
		"ProfileErr":       errText(profErr),
		"HasApplications":  len(applications) > 0,
		"HasAnnouncements": len(announcements) > 0,
	})
}

// handleStudentScholarships lists the scholarships open to the student.
func handleStudentScholarships(w http.ResponseWriter, r *http.Request) {
	view := runList(r, func(ctx context.Context, q listctrl.Query) (listctrl.Page[scholarship.Scholarship], error) {
		items, info, err := deps.Backend.StudentScholarships(ctx, backend.ListQuery{
			Page: q.Page, Limit: q.PerPage, Search: q.Search, Status: q.Status,
		})
		return listctrl.Page[scholarship.Scholarship]{Items: items, PageInfo: info}, err
	}, scholarship.ValidStatuses)

	if !isHTMLRequest(r) {
		writeListJSON(w, view)
		return
	}
	data := listData(view)
	data["Title"] = "Scholarships"
	renderTemplate(w, r, "scholarships.html", data)
}

// handleStudentApply walks the application flow for one scholarship: GET
// shows the required forms as file inputs, POST uploads the completed
// documents keyed by form name.
func handleStudentApply(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		id := formInt(r, "scholarship_id")
		sch, err := findStudentScholarship(r.Context(), id)
		if err != nil {
			setFlash(w, notify.KindError, "Scholarship unavailable", err.Error())
			http.Redirect(w, r, "/scholarships", http.StatusSeeOther)
			return
		}
		renderTemplate(w, r, "apply.html", map[string]any{
			"Title":       "Apply: " + sch.Title,
			"Scholarship": sch,
			"Open":        sch.Open(timeNow()),
		})
		return
	}
	if !requirePost(w, r) {
		return
	}

	// 10 MB per request bounds the completed-form uploads.
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "could not parse form", http.StatusBadRequest)
		return
	}
	scholarshipID := formInt(r, "scholarship_id")
	if scholarshipID < 1 {
		http.Error(w, "scholarship_id is required", http.StatusBadRequest)
		return
	}

	files := make(map[string]backend.FilePart)
	var closers []interface{ Close() error }
	defer func() {
		for _, c := range closers {
			c.Close()
		}
	}()
	for key, headers := range r.MultipartForm.File {
		formName, ok := fileFieldName(key)
		if !ok || len(headers) == 0 {
			continue
		}
		f, err := headers[0].Open()
		if err != nil {
			http.Error(w, "could not read upload", http.StatusBadRequest)
			return
		}
		closers = append(closers, f)
		files[formName] = backend.FilePart{Filename: headers[0].Filename, Reader: f}
	}
	if len(files) == 0 {
		setFlash(w, notify.KindError, "Missing documents", "Attach every required form before submitting.")
		http.Redirect(w, r, fmt.Sprintf("/scholarships/apply?scholarship_id=%d", scholarshipID), http.StatusSeeOther)
		return
	}

	if err := deps.Backend.Apply(r.Context(), scholarshipID, files); err != nil {
		setFlash(w, notify.KindError, "Application failed", err.Error())
		http.Redirect(w, r, fmt.Sprintf("/scholarships/apply?scholarship_id=%d", scholarshipID), http.StatusSeeOther)
		return
	}
	slog.Info("application_event", "action", "submitted", "scholarship_id", scholarshipID)
	setFlash(w, notify.KindSuccess, "Application submitted", "Track its status under My Applications.")
	http.Redirect(w, r, "/applications", http.StatusSeeOther)
}

// fileFieldName extracts <name> from a files[<name>] multipart key.
func fileFieldName(key string) (string, bool) {
	if !strings.HasPrefix(key, "files[") || !strings.HasSuffix(key, "]") {
		return "", false
	}
	name := key[len("files[") : len(key)-1]
	return name, name != ""
}

// findStudentScholarship locates one scholarship on the student list route.
// The backend has no single-scholarship endpoint, so this pages through the
// visible list.
func findStudentScholarship(ctx context.Context, id int) (scholarship.Scholarship, error) {
	if id < 1 {
		return scholarship.Scholarship{}, fmt.Errorf("unknown scholarship")
	}
	page := 1
	for {
		items, info, err := deps.Backend.StudentScholarships(ctx, backend.ListQuery{Page: page, Limit: 100})
		if err != nil {
			return scholarship.Scholarship{}, err
		}
		for _, s := range items {
			if s.ID == id {
				return s, nil
			}
		}
		if !info.HasNext {
			return scholarship.Scholarship{}, fmt.Errorf("unknown scholarship")
		}
		page++
	}
}

// handleStudentApplications lists the student's own applications with the
// canonical status filter.
func handleStudentApplications(w http.ResponseWriter, r *http.Request) {
	view := runList(r, func(ctx context.Context, q listctrl.Query) (listctrl.Page[application.Application], error) {
		items, info, err := deps.Backend.StudentApplications(ctx, backend.ListQuery{
			Page: q.Page, Limit: q.PerPage, Search: q.Search, Status: q.Status,
		})
		return listctrl.Page[application.Application]{Items: items, PageInfo: info}, err
	}, application.ValidStatuses)

	if !isHTMLRequest(r) {
		writeListJSON(w, view)
		return
	}
	data := listData(view)
	data["Title"] = "My Applications"
	data["Statuses"] = application.ValidStatuses
	renderTemplate(w, r, "applications.html", data)
}

// handleStudentAnnouncements lists announcements, newest first, with the
// description rendered from Markdown in the template.
func handleStudentAnnouncements(w http.ResponseWriter, r *http.Request) {
	view := runList(r, func(ctx context.Context, q listctrl.Query) (listctrl.Page[announcement.Announcement], error) {
		items, info, err := deps.Backend.StudentAnnouncements(ctx, backend.ListQuery{
			Page: q.Page, Limit: q.PerPage, Search: q.Search,
		})
		return listctrl.Page[announcement.Announcement]{Items: items, PageInfo: info}, err
	}, nil)

	if !isHTMLRequest(r) {
		writeListJSON(w, view)
		return
	}
	data := listData(view)
	data["Title"] = "Announcements"
	renderTemplate(w, r, "announcements.html", data)
}

// handleStudentProfile shows and updates the student's own record. The
// student number is immutable and only identifies the row.
func handleStudentProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		profile, err := deps.Backend.StudentProfile(r.Context())
		renderTemplate(w, r, "profile.html", map[string]any{
			"Title":   "My Profile",
			"Profile": profile,
			"Err":     errText(err),
		})
		return
	}
	if !requirePost(w, r) {
		return
	}

	sess, _ := middleware.GetSessionFromContext(r.Context())
	p := student.Profile{
		StudentNumber: sess.UserID,
		FirstName:     r.FormValue("first_name"),
		LastName:      r.FormValue("last_name"),
		Email:         r.FormValue("email"),
		CourseCode:    r.FormValue("course_code"),
		YearLevel:     formInt(r, "year_level"),
	}
	if err := p.Validate(); err != nil {
		renderTemplate(w, r, "profile.html", map[string]any{
			"Title":   "My Profile",
			"Profile": p,
			"Err":     err.Error(),
		})
		return
	}
	runMutation(w, r, func(ctx context.Context) error {
		return deps.Backend.UpdateStudentProfile(ctx, p)
	}, "Profile updated", "Your changes have been saved.", "/profile")
}
