package scholarshipform

import (
	"errors"
	"strings"
)

// MaxNameLength bounds the user-editable form name.
const MaxNameLength = 120

// Domain errors
var (
	ErrEmptyName   = errors.New("scholarship form name cannot be empty")
	ErrNameTooLong = errors.New("scholarship form name cannot exceed 120 characters")
	ErrMissingFile = errors.New("scholarship form requires a file")
)

// Form is a downloadable document template applicants must complete.
// FileRef is an opaque storage path owned by the backend; editing may omit
// a replacement file, which keeps the prior one.
type Form struct {
	ID      int    `json:"scholarship_form_id"`
	Name    string `json:"scholarship_form_name"`
	FileRef string `json:"scholarship_form_path"`
}

// Validate checks if the Form has valid data.
// PRE: Form struct is populated
// POST: Returns nil if valid, error otherwise
func (f *Form) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return ErrEmptyName
	}
	if len(f.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}
