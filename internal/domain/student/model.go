package student

import (
	"errors"
	"strings"
)

// Domain errors
var (
	ErrEmptyNumber    = errors.New("student number cannot be empty")
	ErrEmptyFirstName = errors.New("first name cannot be empty")
	ErrEmptyLastName  = errors.New("last name cannot be empty")
	ErrEmptyCourse    = errors.New("course is required")
	ErrEmptyPassword  = errors.New("password cannot be empty")
	ErrPasswordShort  = errors.New("password must be at least 8 characters")
	ErrPasswordMatch  = errors.New("passwords do not match")
)

// Profile is the student's own record as held by the backend.
type Profile struct {
	StudentNumber string `json:"student_number"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	CourseCode    string `json:"course_code"`
	YearLevel     int    `json:"year_level"`
}

// Validate checks if the Profile has valid data.
// PRE: Profile struct is populated
// POST: Returns nil if valid, error otherwise
func (p *Profile) Validate() error {
	if strings.TrimSpace(p.StudentNumber) == "" {
		return ErrEmptyNumber
	}
	if strings.TrimSpace(p.FirstName) == "" {
		return ErrEmptyFirstName
	}
	if strings.TrimSpace(p.LastName) == "" {
		return ErrEmptyLastName
	}
	return nil
}

// Registration carries the multipart register form before it is sent to
// the backend. A validation failure is caught at the form; no network call
// is attempted.
type Registration struct {
	StudentNumber   string
	FirstName       string
	LastName        string
	Email           string
	CourseCode      string
	Password        string
	ConfirmPassword string
}

// Validate checks the registration form before submission.
// PRE: fields are as typed by the user
// POST: Returns nil if submittable, error otherwise
func (r *Registration) Validate() error {
	if strings.TrimSpace(r.StudentNumber) == "" {
		return ErrEmptyNumber
	}
	if strings.TrimSpace(r.FirstName) == "" {
		return ErrEmptyFirstName
	}
	if strings.TrimSpace(r.LastName) == "" {
		return ErrEmptyLastName
	}
	if strings.TrimSpace(r.CourseCode) == "" {
		return ErrEmptyCourse
	}
	if r.Password == "" {
		return ErrEmptyPassword
	}
	if len(r.Password) < 8 {
		return ErrPasswordShort
	}
	if r.Password != r.ConfirmPassword {
		return ErrPasswordMatch
	}
	return nil
}
