package web

import (
	"net/http"

	"scholardesk/internal/adapters/http/middleware"
	"scholardesk/internal/domain/session"
)

// registerRoutes attaches every dashboard route to the mux. Mutations are
// POSTs because they arrive from HTML forms; the path names the action.
func registerRoutes(mux *http.ServeMux) {
	studentOnly := middleware.RequireRole(session.RoleStudent)
	adminOnly := middleware.RequireRole(session.RoleAdmin)

	mux.HandleFunc("/", handleRoot)

	// Auth
	mux.HandleFunc("/login", handleStudentLogin)
	mux.HandleFunc("/register", handleStudentRegister)
	mux.HandleFunc("/admin/login", handleAdminLogin)
	mux.HandleFunc("/logout", handleLogout)

	// Student area
	mux.Handle("/dashboard", studentOnly(http.HandlerFunc(handleStudentDashboard)))
	mux.Handle("/scholarships", studentOnly(http.HandlerFunc(handleStudentScholarships)))
	mux.Handle("/scholarships/apply", studentOnly(http.HandlerFunc(handleStudentApply)))
	mux.Handle("/applications", studentOnly(http.HandlerFunc(handleStudentApplications)))
	mux.Handle("/announcements", studentOnly(http.HandlerFunc(handleStudentAnnouncements)))
	mux.Handle("/profile", studentOnly(http.HandlerFunc(handleStudentProfile)))

	// Admin area
	mux.Handle("/admin", adminOnly(http.HandlerFunc(handleAdminOverview)))
	mux.Handle("/admin/courses", adminOnly(http.HandlerFunc(handleAdminCourses)))
	mux.Handle("/admin/courses/update", adminOnly(http.HandlerFunc(handleAdminCourseUpdate)))
	mux.Handle("/admin/courses/delete", adminOnly(http.HandlerFunc(handleAdminCourseDelete)))
	mux.Handle("/admin/departments", adminOnly(http.HandlerFunc(handleAdminDepartments)))
	mux.Handle("/admin/departments/update", adminOnly(http.HandlerFunc(handleAdminDepartmentUpdate)))
	mux.Handle("/admin/departments/delete", adminOnly(http.HandlerFunc(handleAdminDepartmentDelete)))
	mux.Handle("/admin/forms", adminOnly(http.HandlerFunc(handleAdminForms)))
	mux.Handle("/admin/forms/update", adminOnly(http.HandlerFunc(handleAdminFormUpdate)))
	mux.Handle("/admin/forms/delete", adminOnly(http.HandlerFunc(handleAdminFormDelete)))
	mux.Handle("/admin/scholarships", adminOnly(http.HandlerFunc(handleAdminScholarships)))
	mux.Handle("/admin/scholarships/update", adminOnly(http.HandlerFunc(handleAdminScholarshipUpdate)))
	mux.Handle("/admin/scholarships/delete", adminOnly(http.HandlerFunc(handleAdminScholarshipDelete)))
	mux.Handle("/admin/applications", adminOnly(http.HandlerFunc(handleAdminApplications)))
	mux.Handle("/admin/applications/advance", adminOnly(http.HandlerFunc(handleAdminApplicationAdvance)))
	mux.Handle("/admin/applications/reject", adminOnly(http.HandlerFunc(handleAdminApplicationReject)))
	mux.Handle("/admin/announcements", adminOnly(http.HandlerFunc(handleAdminAnnouncements)))
	mux.Handle("/admin/announcements/update", adminOnly(http.HandlerFunc(handleAdminAnnouncementUpdate)))
	mux.Handle("/admin/announcements/delete", adminOnly(http.HandlerFunc(handleAdminAnnouncementDelete)))
	mux.Handle("/admin/accounts", adminOnly(http.HandlerFunc(handleAdminAccounts)))
	mux.Handle("/admin/accounts/status", adminOnly(http.HandlerFunc(handleAdminAccountStatus)))
	mux.Handle("/admin/accounts/delete", adminOnly(http.HandlerFunc(handleAdminAccountDelete)))
	mux.Handle("/admin/profile", adminOnly(http.HandlerFunc(handleAdminProfile)))
}

// handleRoot sends each visitor to their role's home, or to login.
func handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if sess, ok := middleware.GetSessionFromContext(r.Context()); ok {
		http.Redirect(w, r, sess.HomePath(), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
