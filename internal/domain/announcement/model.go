package announcement

import (
	"errors"
	"strings"
	"time"
)

// Max length constants for user-editable fields.
const (
	MaxTitleLength = 160
	MaxBodyLength  = 4000
)

// Domain errors
var (
	ErrEmptyTitle   = errors.New("announcement title cannot be empty")
	ErrTitleTooLong = errors.New("announcement title cannot exceed 160 characters")
	ErrEmptyBody    = errors.New("announcement description cannot be empty")
	ErrBodyTooLong  = errors.New("announcement description cannot exceed 4000 characters")
)

// Announcement is a notice shown on the student dashboard.
// Description supports Markdown formatting.
type Announcement struct {
	ID          int       `json:"announcement_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"` // Markdown content
	AuthorName  string    `json:"author_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// Validate checks if the Announcement has valid data.
// PRE: Announcement struct is populated
// POST: Returns nil if valid, error otherwise
func (a *Announcement) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return ErrEmptyTitle
	}
	if len(a.Title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if strings.TrimSpace(a.Description) == "" {
		return ErrEmptyBody
	}
	if len(a.Description) > MaxBodyLength {
		return ErrBodyTooLong
	}
	return nil
}
