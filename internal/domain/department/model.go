package department

import (
	"errors"
	"strings"
)

// MaxNameLength bounds the user-editable department name.
const MaxNameLength = 120

// Domain errors
var (
	ErrEmptyName   = errors.New("department name cannot be empty")
	ErrNameTooLong = errors.New("department name cannot exceed 120 characters")
)

// Department is an administrative unit admin accounts belong to.
type Department struct {
	ID   int    `json:"department_id"`
	Name string `json:"department_name"`
}

// Validate checks if the Department has valid data.
// PRE: Department struct is populated
// POST: Returns nil if valid, error otherwise
func (d *Department) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrEmptyName
	}
	if len(d.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}
