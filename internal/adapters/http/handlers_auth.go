package web

import (
	"log/slog"
	"net/http"

	"scholardesk/internal/adapters/backend"
	"scholardesk/internal/adapters/http/middleware"
	"scholardesk/internal/application/notify"
	"scholardesk/internal/domain/student"
)

// handleStudentLogin renders the student login form and exchanges submitted
// credentials for a backend session.
// GET: login form. POST: authenticate, persist session, redirect home.
func handleStudentLogin(w http.ResponseWriter, r *http.Request) {
	if sess, ok := middleware.GetSessionFromContext(r.Context()); ok {
		http.Redirect(w, r, sess.HomePath(), http.StatusSeeOther)
		return
	}

	if r.Method == http.MethodGet {
		renderTemplate(w, r, "login.html", map[string]any{"Title": "Student Login"})
		return
	}
	if !requirePost(w, r) {
		return
	}

	studentNumber := r.FormValue("student_number")
	password := r.FormValue("password")
	if studentNumber == "" || password == "" {
		renderTemplate(w, r, "login.html", map[string]any{
			"Title":         "Student Login",
			"Err":           "Student number and password are required",
			"StudentNumber": studentNumber,
		})
		return
	}

	sess, err := deps.Backend.StudentLogin(r.Context(), studentNumber, password)
	if err != nil {
		slog.Warn("auth_event", "action", "student_login_failed", "student_number", studentNumber)
		renderTemplate(w, r, "login.html", map[string]any{
			"Title":         "Student Login",
			"Err":           err.Error(),
			"StudentNumber": studentNumber,
		})
		return
	}

	token, err := deps.Sessions.Create(r.Context(), sess)
	if err != nil {
		internalError(w, err)
		return
	}
	middleware.SetSessionCookie(w, token)
	slog.Info("auth_event", "action", "student_login", "user_id", sess.UserID)
	http.Redirect(w, r, sess.HomePath(), http.StatusSeeOther)
}

// handleStudentRegister renders the registration form and submits it to the
// backend. The form is validated locally first; a validation failure
// re-renders with the typed values and never reaches the network.
func handleStudentRegister(w http.ResponseWriter, r *http.Request) {
	if sess, ok := middleware.GetSessionFromContext(r.Context()); ok {
		http.Redirect(w, r, sess.HomePath(), http.StatusSeeOther)
		return
	}

	if r.Method == http.MethodGet {
		renderTemplate(w, r, "register.html", map[string]any{
			"Title":   "Register",
			"Courses": registrationCourses(r),
		})
		return
	}
	if !requirePost(w, r) {
		return
	}

	// 10 MB bounds the proof-of-enrolment upload.
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "could not parse form", http.StatusBadRequest)
		return
	}
	reg := student.Registration{
		StudentNumber:   r.FormValue("student_number"),
		FirstName:       r.FormValue("first_name"),
		LastName:        r.FormValue("last_name"),
		Email:           r.FormValue("email"),
		CourseCode:      r.FormValue("course_code"),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirm_password"),
	}
	if err := reg.Validate(); err != nil {
		renderTemplate(w, r, "register.html", map[string]any{
			"Title":   "Register",
			"Err":     err.Error(),
			"Form":    reg,
			"Courses": registrationCourses(r),
		})
		return
	}

	var proof *backend.FilePart
	if file, header, err := r.FormFile("enrollment_proof"); err == nil {
		defer file.Close()
		proof = &backend.FilePart{Field: "enrollment_proof", Filename: header.Filename, Reader: file}
	}

	if err := deps.Backend.StudentRegister(r.Context(), reg, proof); err != nil {
		renderTemplate(w, r, "register.html", map[string]any{
			"Title":   "Register",
			"Err":     err.Error(),
			"Form":    reg,
			"Courses": registrationCourses(r),
		})
		return
	}
	slog.Info("auth_event", "action", "student_registered", "student_number", reg.StudentNumber)
	setFlash(w, notify.KindSuccess, "Registration submitted", "You can sign in once your account is confirmed.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// registrationCourses loads the course choices for the register form. A
// fetch failure degrades to an empty dropdown rather than blocking the page.
func registrationCourses(r *http.Request) any {
	courses, _, err := deps.Backend.StudentCourses(r.Context(), backend.ListQuery{Page: 1, Limit: 100})
	if err != nil {
		slog.Warn("backend_error", "action", "registration_courses", "error", err.Error())
		return nil
	}
	return courses
}

// handleAdminLogin renders the admin sign-in page and exchanges the Google
// ID token the provider handed back for a backend session.
func handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	if sess, ok := middleware.GetSessionFromContext(r.Context()); ok {
		http.Redirect(w, r, sess.HomePath(), http.StatusSeeOther)
		return
	}

	if r.Method == http.MethodGet {
		renderTemplate(w, r, "admin_login.html", map[string]any{"Title": "Admin Login"})
		return
	}
	if !requirePost(w, r) {
		return
	}

	googleToken := r.FormValue("google_token")
	if googleToken == "" {
		renderTemplate(w, r, "admin_login.html", map[string]any{
			"Title": "Admin Login",
			"Err":   "Sign-in did not return a token. Try again.",
		})
		return
	}

	sess, err := deps.Backend.AdminCallback(r.Context(), googleToken)
	if err != nil {
		slog.Warn("auth_event", "action", "admin_login_failed")
		renderTemplate(w, r, "admin_login.html", map[string]any{
			"Title": "Admin Login",
			"Err":   err.Error(),
		})
		return
	}

	token, err := deps.Sessions.Create(r.Context(), sess)
	if err != nil {
		internalError(w, err)
		return
	}
	middleware.SetSessionCookie(w, token)
	slog.Info("auth_event", "action", "admin_login", "user_id", sess.UserID)
	http.Redirect(w, r, sess.HomePath(), http.StatusSeeOther)
}

// handleLogout drops the server-side session and clears the cookie. Always
// lands on the login page matching the role that just left.
func handleLogout(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	target := "/login"
	if sess, ok := middleware.GetSessionFromContext(r.Context()); ok {
		if sess.IsAdmin() {
			target = "/admin/login"
		}
		slog.Info("auth_event", "action", "logout", "user_id", sess.UserID)
	}
	if token := middleware.SessionToken(r); token != "" {
		if err := deps.Sessions.Delete(r.Context(), token); err != nil {
			slog.Warn("auth_event", "action", "logout_delete_failed", "error", err.Error())
		}
	}
	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, target, http.StatusSeeOther)
}
