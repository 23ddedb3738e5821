package account

import (
	"errors"
	"strings"
)

// Admin account statuses. New admins arrive pending after Google sign-in
// and must be approved by an existing administrator before gaining access.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDeclined = "declined"
)

// ValidStatuses contains all valid admin account statuses.
var ValidStatuses = []string{StatusPending, StatusApproved, StatusDeclined}

// MaxEmailLength bounds the email field.
const MaxEmailLength = 254

// Domain errors
var (
	ErrEmptyUserID   = errors.New("account user ID cannot be empty")
	ErrEmptyEmail    = errors.New("account email cannot be empty")
	ErrInvalidEmail  = errors.New("account email must contain '@'")
	ErrInvalidStatus = errors.New("account status must be one of: pending, approved, declined")
)

// Admin is a staff account on the student-affairs backend. The dashboard
// never stores credentials for it — authentication is a Google token
// exchanged at /callback, and the backend owns the account of record.
type Admin struct {
	UserID     string `json:"user_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Status     string `json:"status"` // pending, approved, declined
}

// Validate checks if the Admin has valid data.
// PRE: Admin struct is populated
// POST: Returns nil if valid, error otherwise
func (a *Admin) Validate() error {
	if a.UserID == "" {
		return ErrEmptyUserID
	}
	if strings.TrimSpace(a.Email) == "" {
		return ErrEmptyEmail
	}
	if len(a.Email) > MaxEmailLength {
		return errors.New("account email cannot exceed 254 characters")
	}
	if !strings.Contains(a.Email, "@") {
		return ErrInvalidEmail
	}
	if !validStatus(a.Status) {
		return ErrInvalidStatus
	}
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
