package course

import (
	"errors"
	"strings"
)

// Max length constants for user-editable fields.
const (
	MaxCodeLength = 16
	MaxNameLength = 120
)

// Domain errors
var (
	ErrEmptyCode   = errors.New("course code cannot be empty")
	ErrEmptyName   = errors.New("course name cannot be empty")
	ErrCodeTooLong = errors.New("course code cannot exceed 16 characters")
	ErrNameTooLong = errors.New("course name cannot exceed 120 characters")
	ErrCodeSpaces  = errors.New("course code cannot contain spaces")
)

// Course is a degree programme students enrol in. The code is the primary
// key and is immutable once created — the edit form never sends a new code.
type Course struct {
	Code string `json:"course_code"`
	Name string `json:"course_name"`
}

// Validate checks if the Course has valid data.
// PRE: Course struct is populated
// POST: Returns nil if valid, error otherwise
func (c *Course) Validate() error {
	if strings.TrimSpace(c.Code) == "" {
		return ErrEmptyCode
	}
	if len(c.Code) > MaxCodeLength {
		return ErrCodeTooLong
	}
	if strings.ContainsAny(c.Code, " \t") {
		return ErrCodeSpaces
	}
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if len(c.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}
