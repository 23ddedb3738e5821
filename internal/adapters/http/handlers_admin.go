package web

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"scholardesk/internal/adapters/backend"
	"scholardesk/internal/adapters/http/middleware"
	"scholardesk/internal/application/listctrl"
	"scholardesk/internal/domain/account"
	"scholardesk/internal/domain/announcement"
	"scholardesk/internal/domain/application"
	"scholardesk/internal/domain/course"
	"scholardesk/internal/domain/department"
	"scholardesk/internal/domain/scholarship"
	"scholardesk/internal/domain/scholarshipform"
)

// handleAdminOverview shows the review-pipeline counts and a snapshot of
// the catalogue sizes.
func handleAdminOverview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	counts := deps.Sample.StatusCounts(ctx)

	_, schInfo, schErr := deps.Backend.ListScholarships(ctx, backend.ListQuery{Page: 1, Limit: 1})
	_, crsInfo, crsErr := deps.Backend.ListCourses(ctx, backend.ListQuery{Page: 1, Limit: 1})

	renderTemplate(w, r, "admin_overview.html", map[string]any{
		"Title":            "Overview",
		"StatusCounts":     counts,
		"Statuses":         application.ValidStatuses,
		"ScholarshipCount": schInfo.TotalItems,
		"CourseCount":      crsInfo.TotalItems,
		"ScholarshipsErr":  errText(schErr),
		"CoursesErr":       errText(crsErr),
	})
}

// --- Courses ---

// handleAdminCourses lists courses; a POST on the same path creates one.
func handleAdminCourses(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		crs := course.Course{Code: r.FormValue("course_code"), Name: r.FormValue("course_name")}
		if err := crs.Validate(); err != nil {
			runMutation(w, r, func(context.Context) error { return err }, "", "", "/admin/courses")
			return
		}
		runMutation(w, r, func(ctx context.Context) error {
			return deps.Backend.CreateCourse(ctx, crs)
		}, "Course added", crs.Code+" is now available.", "/admin/courses")
		return
	}

	view := runList(r, func(ctx context.Context, q listctrl.Query) (listctrl.Page[course.Course], error) {
		items, info, err := deps.Backend.ListCourses(ctx, backend.ListQuery{Page: q.Page, Limit: q.PerPage, Search: q.Search})
		return listctrl.Page[course.Course]{Items: items, PageInfo: info}, err
	}, nil)

	if !isHTMLRequest(r) {
		writeListJSON(w, view)
		return
	}
	data := listData(view)
	data["Title"] = "Courses"
	renderTemplate(w, r, "admin_courses.html", data)
}

func handleAdminCourseUpdate(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	crs := course.Course{Code: r.FormValue("course_code"), Name: r.FormValue("course_name")}
	if err := crs.Validate(); err != nil {
		runMutation(w, r, func(context.Context) error { return err }, "", "", "/admin/courses")
		return
	}
	runMutation(w, r, func(ctx context.Context) error {
		return deps.Backend.UpdateCourse(ctx, crs)
	}, "Course updated", crs.Code+" has been renamed.", "/admin/courses")
}

func handleAdminCourseDelete(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	if r.FormValue("delete_all") == "true" {
		runMutation(w, r, deps.Backend.DeleteAllCourses,
			"Courses cleared", "Every course has been removed.", "/admin/courses")
		return
	}
	code := r.FormValue("course_code")
	runMutation(w, r, func(ctx context.Context) error {
		return deps.Backend.DeleteCourse(ctx, code)
	}, "Course deleted", code+" has been removed.", "/admin/courses")
}

// --- Departments ---

func handleAdminDepartments(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		dep := department.Department{Name: r.FormValue("department_name")}
		if err := dep.Validate(); err != nil {
			runMutation(w, r, func(context.Context) error { return err }, "", "", "/admin/departments")
			return
		}
		runMutation(w, r, func(ctx context.Context) error {
			return deps.Backend.CreateDepartment(ctx, dep.Name)
		}, "Department added", dep.Name+" is now available.", "/admin/departments")
		return
	}

	view := runList(r, func(ctx context.Context, q listctrl.Query) (listctrl.Page[department.Department], error) {
		items, info, err := deps.Backend.ListDepartments(ctx, backend.ListQuery{Page: q.Page, Limit: q.PerPage, Search: q.Search})
		return listctrl.Page[department.Department]{Items: items, PageInfo: info}, err
	}, nil)

	if !isHTMLRequest(r) {
		writeListJSON(w, view)
		return
	}
	data := listData(view)
	data["Title"] = "Departments"
	renderTemplate(w, r, "admin_departments.html", data)
}

func handleAdminDepartmentUpdate(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	dep := department.Department{ID: formInt(r, "department_id"), Name: r.FormValue("department_name")}
	if err := dep.Validate(); err != nil {
		runMutation(w, r, func(context.Context) error { return err }, "", "", "/admin/departments")
		return
	}
	runMutation(w, r, func(ctx context.Context) error {
		return deps.Backend.UpdateDepartment(ctx, dep)
	}, "Department updated", dep.Name+" has been saved.", "/admin/departments")
}

func handleAdminDepartmentDelete(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	if r.FormValue("delete_all") == "true" {
		runMutation(w, r, deps.Backend.DeleteAllDepartments,
			"Departments cleared", "Every department has been removed.", "/admin/departments")
		return
	}
	id := formInt(r, "department_id")
	runMutation(w, r, func(ctx context.Context) error {
		return deps.Backend.DeleteDepartment(ctx, id)
	}, "Department deleted", "The department has been removed.", "/admin/departments")
}

// --- Scholarship forms ---

// handleAdminForms lists form templates; a POST uploads a new one.
func handleAdminForms(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			http.Error(w, "could not parse form", http.StatusBadRequest)
			return
		}
		name := r.FormValue("scholarship_form_name")
		tpl := scholarshipform.Form{Name: name}
		if err := tpl.Validate(); err != nil {
			runMutation(w, r, func(context.Context) error { return err }, "", "", "/admin/forms")
			return
		}
		file, header, err := r.FormFile("scholarship_form")
		if err != nil {
			runMutation(w, r, func(context.Context) error {
				return &backend.APIError{Message: "a form file is required"}
			}, "", "", "/admin/forms")
			return
		}
		defer file.Close()
		part := backend.FilePart{Filename: header.Filename, Reader: file}
		runMutation(w, r, func(ctx context.Context) error {
			return deps.Backend.CreateScholarshipForm(ctx, name, part)
		}, "Form uploaded", name+" is now available.", "/admin/forms")
		return
	}

	view := runList(r, func(ctx context.Context, q listctrl.Query) (listctrl.Page[scholarshipform.Form], error) {
		items, info, err := deps.Backend.ListScholarshipForms(ctx, backend.ListQuery{Page: q.Page, Limit: q.PerPage, Search: q.Search})
		return listctrl.Page[scholarshipform.Form]{Items: items, PageInfo: info}, err
	}, nil)

	if !isHTMLRequest(r) {
		writeListJSON(w, view)
		return
	}
	data := listData(view)
	data["Title"] = "Scholarship Forms"
	renderTemplate(w, r, "admin_forms.html", data)
}

func handleAdminFormUpdate(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "could not parse form", http.StatusBadRequest)
		return
	}
	id := formInt(r, "scholarship_form_id")
	name := r.FormValue("scholarship_form_name")

	var part *backend.FilePart
	if file, header, err := r.FormFile("scholarship_form"); err == nil {
		defer file.Close()
		part = &backend.FilePart{Filename: header.Filename, Reader: file}
	}
	runMutation(w, r, func(ctx context.Context) error {
		return deps.Backend.EditScholarshipForm(ctx, id, name, part)
	}, "Form updated", "The form template has been saved.", "/admin/forms")
}

func handleAdminFormDelete(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	if r.FormValue("delete_all") == "true" {
		runMutation(w, r, deps.Backend.DeleteAllScholarshipForms,
			"Forms cleared", "Every form template has been removed.", "/admin/forms")
		return
	}
	id := formInt(r, "scholarship_form_id")
	runMutation(w, r, func(ctx context.Context) error {
		return deps.Backend.DeleteScholarshipForm(ctx, id)
	}, "Form deleted", "The form template has been removed.", "/admin/forms")
}

// --- Scholarships ---

// handleAdminScholarships lists scholarships; a POST creates one with its
// course and form associations. The list page also loads the association
// choices so the create/edit dialogs can render their checkboxes.
func handleAdminScholarships(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		sch, err := parseScholarshipForm(r)
		if err != nil {
			runMutation(w, r, func(context.Context) error { return err }, "", "", "/admin/scholarships")
			return
		}
		runMutation(w, r, func(ctx context.Context) error {
			return deps.Backend.CreateScholarship(ctx, sch)
		}, "Scholarship created", sch.Title+" has been published.", "/admin/scholarships")
		return
	}

	view := runList(r, func(ctx context.Context, q listctrl.Query) (listctrl.Page[scholarship.Scholarship], error) {
		items, info, err := deps.Backend.ListScholarships(ctx, backend.ListQuery{
			Page: q.Page, Limit: q.PerPage, Search: q.Search, Status: q.Status,
		})
		return listctrl.Page[scholarship.Scholarship]{Items: items, PageInfo: info}, err
	}, scholarship.ValidStatuses)

	if !isHTMLRequest(r) {
		writeListJSON(w, view)
		return
	}

	courses, _, _ := deps.Backend.ListCourses(r.Context(), backend.ListQuery{Page: 1, Limit: 100})
	forms, _, _ := deps.Backend.ListScholarshipForms(r.Context(), backend.ListQuery{Page: 1, Limit: 100})

	data := listData(view)
	data["Title"] = "Scholarships"
	data["Statuses"] = scholarship.ValidStatuses
	data["Courses"] = courses
	data["Forms"] = forms
	renderTemplate(w, r, "admin_scholarships.html", data)
}

// parseScholarshipForm builds a Scholarship from the create/edit form and
// validates it before any network call.
func parseScholarshipForm(r *http.Request) (scholarship.Scholarship, error) {
	sch := scholarship.Scholarship{
		ID:          formInt(r, "scholarship_id"),
		Title:       strings.TrimSpace(r.FormValue("scholarship_title")),
		Description: r.FormValue("description"),
		Status:      r.FormValue("status"),
		CourseCodes: r.Form["course_codes"],
	}
	if sch.Status == "" {
		sch.Status = scholarship.StatusActive
	}
	if v := r.FormValue("start_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return sch, scholarship.ErrDatesInverted
		}
		sch.StartDate = t
	}
	if v := r.FormValue("end_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return sch, scholarship.ErrDatesInverted
		}
		sch.EndDate = t
	}
	if v := r.FormValue("amount"); v != "" {
		amount, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return sch, scholarship.ErrNegativeAmount
		}
		sch.Amount = amount
		sch.AmountSet = true
	}
	for _, raw := range r.Form["scholarship_form_ids"] {
		if id, err := strconv.Atoi(raw); err == nil {
			sch.FormIDs = append(sch.FormIDs, id)
		}
	}
	if err := sch.Validate(); err != nil {
		return sch, err
	}
	return sch, nil
}

func handleAdminScholarshipUpdate(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	sch, err := parseScholarshipForm(r)
	if err != nil {
		runMutation(w, r, func(context.Context) error { return err }, "", "", "/admin/scholarships")
		return
	}
	runMutation(w, r, func(ctx context.Context) error {
		return deps.Backend.UpdateScholarship(ctx, sch)
	}, "Scholarship updated", sch.Title+" has been saved.", "/admin/scholarships")
}

func handleAdminScholarshipDelete(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	id := formInt(r, "scholarship_id")
	runMutation(w, r, func(ctx context.Context) error {
		return deps.Backend.DeleteScholarship(ctx, id)
	}, "Scholarship deleted", "The scholarship has been removed.", "/admin/scholarships")
}

// --- Applications (review pipeline) ---

func handleAdminApplications(w http.ResponseWriter, r *http.Request) {
	view := runList(r, func(ctx context.Context, q listctrl.Query) (listctrl.Page[application.Application], error) {
		items, info, err := deps.Sample.ListApplications(ctx, q.Page, q.PerPage, q.Search, q.Status)
		return listctrl.Page[application.Application]{Items: items, PageInfo: info}, err
	}, application.ValidStatuses)

	if !isHTMLRequest(r) {
		writeListJSON(w, view)
		return
	}
	data := listData(view)
	data["Title"] = "Applications"
	data["Statuses"] = application.ValidStatuses
	renderTemplate(w, r, "admin_applications.html", data)
}

func handleAdminApplicationAdvance(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	id := formInt(r, "application_id")
	runMutation(w, r, func(ctx context.Context) error {
		return deps.Sample.AdvanceApplication(ctx, id)
	}, "Application advanced", "The application moved one step forward.", "/admin/applications")
}

func handleAdminApplicationReject(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	id := formInt(r, "application_id")
	runMutation(w, r, func(ctx context.Context) error {
		return deps.Sample.RejectApplication(ctx, id)
	}, "Application rejected", "The applicant will see the updated status.", "/admin/applications")
}

// --- Announcements ---

func handleAdminAnnouncements(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		sess, _ := middleware.GetSessionFromContext(r.Context())
		ann := announcement.Announcement{
			Title:       r.FormValue("title"),
			Description: r.FormValue("description"),
			AuthorName:  sess.Name,
		}
		if err := ann.Validate(); err != nil {
			runMutation(w, r, func(context.Context) error { return err }, "", "", "/admin/announcements")
			return
		}
		runMutation(w, r, func(ctx context.Context) error {
			return deps.Sample.CreateAnnouncement(ctx, ann)
		}, "Announcement posted", ann.Title+" is now visible to students.", "/admin/announcements")
		return
	}

	view := runList(r, func(ctx context.Context, q listctrl.Query) (listctrl.Page[announcement.Announcement], error) {
		items, info, err := deps.Sample.ListAnnouncements(ctx, q.Page, q.PerPage, q.Search)
		return listctrl.Page[announcement.Announcement]{Items: items, PageInfo: info}, err
	}, nil)

	if !isHTMLRequest(r) {
		writeListJSON(w, view)
		return
	}
	data := listData(view)
	data["Title"] = "Announcements"
	renderTemplate(w, r, "admin_announcements.html", data)
}

func handleAdminAnnouncementUpdate(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	ann := announcement.Announcement{
		ID:          formInt(r, "announcement_id"),
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
	}
	if err := ann.Validate(); err != nil {
		runMutation(w, r, func(context.Context) error { return err }, "", "", "/admin/announcements")
		return
	}
	runMutation(w, r, func(ctx context.Context) error {
		return deps.Sample.UpdateAnnouncement(ctx, ann)
	}, "Announcement updated", ann.Title+" has been saved.", "/admin/announcements")
}

func handleAdminAnnouncementDelete(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	id := formInt(r, "announcement_id")
	runMutation(w, r, func(ctx context.Context) error {
		return deps.Sample.DeleteAnnouncement(ctx, id)
	}, "Announcement deleted", "Students can no longer see it.", "/admin/announcements")
}

// --- Admin accounts ---

func handleAdminAccounts(w http.ResponseWriter, r *http.Request) {
	view := runList(r, func(ctx context.Context, q listctrl.Query) (listctrl.Page[account.Admin], error) {
		items, info, err := deps.Backend.ListAdmins(ctx, backend.ListQuery{
			Page: q.Page, Limit: q.PerPage, Search: q.Search, Status: q.Status,
		})
		return listctrl.Page[account.Admin]{Items: items, PageInfo: info}, err
	}, account.ValidStatuses)

	if !isHTMLRequest(r) {
		writeListJSON(w, view)
		return
	}
	data := listData(view)
	data["Title"] = "Admin Accounts"
	data["Statuses"] = account.ValidStatuses
	renderTemplate(w, r, "admin_accounts.html", data)
}

func handleAdminAccountStatus(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	userID := r.FormValue("user_id")
	status := r.FormValue("status")
	if status != account.StatusApproved && status != account.StatusDeclined {
		runMutation(w, r, func(context.Context) error { return account.ErrInvalidStatus }, "", "", "/admin/accounts")
		return
	}
	runMutation(w, r, func(ctx context.Context) error {
		return deps.Backend.UpdateAdminStatus(ctx, userID, status)
	}, "Account "+status, "The account status has been updated.", "/admin/accounts")
}

func handleAdminAccountDelete(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	userID := r.FormValue("user_id")
	runMutation(w, r, func(ctx context.Context) error {
		return deps.Backend.DeleteAdmin(ctx, userID)
	}, "Account deleted", "The account has been removed.", "/admin/accounts")
}

// --- Admin profile ---

func handleAdminProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		profile, err := deps.Backend.GetAdminProfile(r.Context())
		departments, _, _ := deps.Backend.ListDepartments(r.Context(), backend.ListQuery{Page: 1, Limit: 100})
		renderTemplate(w, r, "admin_profile.html", map[string]any{
			"Title":       "My Profile",
			"Profile":     profile,
			"Departments": departments,
			"Err":         errText(err),
		})
		return
	}
	if !requirePost(w, r) {
		return
	}
	firstName := r.FormValue("first_name")
	lastName := r.FormValue("last_name")
	dept := r.FormValue("department")
	runMutation(w, r, func(ctx context.Context) error {
		return deps.Backend.UpdateAdminProfile(ctx, firstName, lastName, dept)
	}, "Profile updated", "Your changes have been saved.", "/admin/profile")
}
