package application

import (
	"errors"
	"time"
)

// Application statuses. This is the canonical vocabulary for the whole
// dashboard; the legacy pending/approved/declined values some backend rows
// still carry are normalized on ingest (see NormalizeStatus).
const (
	StatusSubmitted = "submitted"
	StatusReview    = "review"
	StatusInterview = "interview"
	StatusApproved  = "approved"
	StatusGranted   = "granted"
	StatusRejected  = "rejected"
)

// ValidStatuses contains all valid application statuses.
var ValidStatuses = []string{
	StatusSubmitted, StatusReview, StatusInterview,
	StatusApproved, StatusGranted, StatusRejected,
}

// legacyStatus maps the older status vocabulary onto the canonical one.
var legacyStatus = map[string]string{
	"pending":  StatusSubmitted,
	"declined": StatusRejected,
}

// Domain errors
var (
	ErrInvalidStatus     = errors.New("application status must be one of: submitted, review, interview, approved, granted, rejected")
	ErrEmptyStudent      = errors.New("application student reference cannot be empty")
	ErrEmptyScholarship  = errors.New("application scholarship reference cannot be empty")
	ErrInvalidTransition = errors.New("application status transition is not allowed")
)

// UploadedForm is one supporting document attached to an application.
type UploadedForm struct {
	FormName   string    `json:"form_name"`
	FileRef    string    `json:"file_path"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Application is a student's submission against one scholarship.
type Application struct {
	ID               int            `json:"application_id"`
	StudentID        string         `json:"student_number"`
	StudentName      string         `json:"student_name"`
	ScholarshipID    int            `json:"scholarship_id"`
	ScholarshipTitle string         `json:"scholarship_title"`
	Status           string         `json:"status"`
	SubmittedAt      time.Time      `json:"submitted_at"`
	UploadedForms    []UploadedForm `json:"uploaded_forms"`
}

// NormalizeStatus maps legacy status values onto the canonical vocabulary.
// Unknown values pass through unchanged so Validate can reject them.
func NormalizeStatus(status string) string {
	if canonical, ok := legacyStatus[status]; ok {
		return canonical
	}
	return status
}

// Validate checks if the Application has valid data.
// PRE: Status has been normalized
// POST: Returns nil if valid, error otherwise
func (a *Application) Validate() error {
	if a.StudentID == "" {
		return ErrEmptyStudent
	}
	if a.ScholarshipID == 0 {
		return ErrEmptyScholarship
	}
	if !validStatus(a.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// transitions lists the forward review pipeline. Rejection is reachable
// from every state before granted.
var transitions = map[string]string{
	StatusSubmitted: StatusReview,
	StatusReview:    StatusInterview,
	StatusInterview: StatusApproved,
	StatusApproved:  StatusGranted,
}

// Advance moves the application one step along the review pipeline.
// PRE: a.Status is canonical
// POST: Status advanced, or ErrInvalidTransition if terminal
func (a *Application) Advance() error {
	next, ok := transitions[a.Status]
	if !ok {
		return ErrInvalidTransition
	}
	a.Status = next
	return nil
}

// Reject marks the application rejected.
// PRE: a.Status is canonical
// POST: Status is rejected, or ErrInvalidTransition if already granted/rejected
func (a *Application) Reject() error {
	if a.Status == StatusGranted || a.Status == StatusRejected {
		return ErrInvalidTransition
	}
	a.Status = StatusRejected
	return nil
}

func validStatus(s string) bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}
