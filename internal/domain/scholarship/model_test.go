package scholarship_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"scholardesk/internal/domain/scholarship"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

// TestScholarship_Validate tests validation of Scholarship.
func TestScholarship_Validate(t *testing.T) {
	tests := []struct {
		name    string
		s       scholarship.Scholarship
		wantErr error
	}{
		{
			name: "valid",
			s: scholarship.Scholarship{
				Title: "Academic Excellence", Description: "Full tuition for top students.",
				StartDate: date(2026, 1, 1), EndDate: date(2026, 6, 30),
				Status: scholarship.StatusActive, Amount: 50000, AmountSet: true,
			},
		},
		{
			name: "valid without amount or dates",
			s:    scholarship.Scholarship{Title: "t", Description: "d", Status: scholarship.StatusArchive},
		},
		{
			name:    "empty title",
			s:       scholarship.Scholarship{Description: "d", Status: scholarship.StatusActive},
			wantErr: scholarship.ErrEmptyTitle,
		},
		{
			name:    "title too long",
			s:       scholarship.Scholarship{Title: strings.Repeat("x", 161), Description: "d", Status: scholarship.StatusActive},
			wantErr: scholarship.ErrTitleTooLong,
		},
		{
			name:    "empty description",
			s:       scholarship.Scholarship{Title: "t", Status: scholarship.StatusActive},
			wantErr: scholarship.ErrEmptyDesc,
		},
		{
			name:    "invalid status",
			s:       scholarship.Scholarship{Title: "t", Description: "d", Status: "open"},
			wantErr: scholarship.ErrInvalidStatus,
		},
		{
			name: "negative amount",
			s: scholarship.Scholarship{
				Title: "t", Description: "d", Status: scholarship.StatusActive,
				Amount: -1, AmountSet: true,
			},
			wantErr: scholarship.ErrNegativeAmount,
		},
		{
			name: "inverted dates",
			s: scholarship.Scholarship{
				Title: "t", Description: "d", Status: scholarship.StatusActive,
				StartDate: date(2026, 6, 1), EndDate: date(2026, 1, 1),
			},
			wantErr: scholarship.ErrDatesInverted,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.s.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestScholarship_Open tests the application window.
func TestScholarship_Open(t *testing.T) {
	now := date(2026, 3, 15)
	tests := []struct {
		name string
		s    scholarship.Scholarship
		want bool
	}{
		{
			name: "inside window",
			s:    scholarship.Scholarship{Status: scholarship.StatusActive, StartDate: date(2026, 1, 1), EndDate: date(2026, 6, 30)},
			want: true,
		},
		{
			name: "before start",
			s:    scholarship.Scholarship{Status: scholarship.StatusActive, StartDate: date(2026, 4, 1), EndDate: date(2026, 6, 30)},
			want: false,
		},
		{
			name: "after end",
			s:    scholarship.Scholarship{Status: scholarship.StatusActive, StartDate: date(2026, 1, 1), EndDate: date(2026, 2, 1)},
			want: false,
		},
		{
			name: "archived inside window",
			s:    scholarship.Scholarship{Status: scholarship.StatusArchive, StartDate: date(2026, 1, 1), EndDate: date(2026, 6, 30)},
			want: false,
		},
		{
			name: "active with no dates",
			s:    scholarship.Scholarship{Status: scholarship.StatusActive},
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Open(now); got != tt.want {
				t.Errorf("Open() = %v, want %v", got, tt.want)
			}
		})
	}
}
