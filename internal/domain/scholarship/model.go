package scholarship

import (
	"errors"
	"strings"
	"time"

	"scholardesk/internal/domain/scholarshipform"
)

// Scholarship statuses
const (
	StatusActive  = "active"
	StatusArchive = "archive"
)

// ValidStatuses contains all valid scholarship statuses.
var ValidStatuses = []string{StatusActive, StatusArchive}

// Max length constants for user-editable fields.
const (
	MaxTitleLength       = 160
	MaxDescriptionLength = 4000
)

// Domain errors
var (
	ErrEmptyTitle     = errors.New("scholarship title cannot be empty")
	ErrTitleTooLong   = errors.New("scholarship title cannot exceed 160 characters")
	ErrEmptyDesc      = errors.New("scholarship description cannot be empty")
	ErrDescTooLong    = errors.New("scholarship description cannot exceed 4000 characters")
	ErrInvalidStatus  = errors.New("scholarship status must be one of: active, archive")
	ErrNegativeAmount = errors.New("scholarship amount cannot be negative")
	ErrDatesInverted  = errors.New("scholarship end date cannot precede its start date")
)

// Scholarship is a grant offering. Eligible courses and required forms are
// many-to-many associations the backend resolves to plain code/id lists.
// Amount is in whole currency units; zero with AmountSet false means unset.
type Scholarship struct {
	ID          int
	Title       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Status      string // active, archive
	Amount      float64
	AmountSet   bool
	CourseCodes []string
	FormIDs     []int
	// Forms carries the resolved form templates when the backend embeds
	// them (the student routes do); FormIDs alone on the admin routes.
	Forms []scholarshipform.Form
}

// Validate checks if the Scholarship has valid data.
// PRE: Scholarship struct is populated
// POST: Returns nil if valid, error otherwise
func (s *Scholarship) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return ErrEmptyTitle
	}
	if len(s.Title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if strings.TrimSpace(s.Description) == "" {
		return ErrEmptyDesc
	}
	if len(s.Description) > MaxDescriptionLength {
		return ErrDescTooLong
	}
	if s.Status != StatusActive && s.Status != StatusArchive {
		return ErrInvalidStatus
	}
	if s.AmountSet && s.Amount < 0 {
		return ErrNegativeAmount
	}
	if !s.StartDate.IsZero() && !s.EndDate.IsZero() && s.EndDate.Before(s.StartDate) {
		return ErrDatesInverted
	}
	return nil
}

// Open reports whether applications are currently accepted: the scholarship
// is active and now falls inside the [StartDate, EndDate] window.
func (s *Scholarship) Open(now time.Time) bool {
	if s.Status != StatusActive {
		return false
	}
	if !s.StartDate.IsZero() && now.Before(s.StartDate) {
		return false
	}
	if !s.EndDate.IsZero() && now.After(s.EndDate) {
		return false
	}
	return true
}
