package department_test

import (
	"errors"
	"strings"
	"testing"

	"scholardesk/internal/domain/department"
)

// TestDepartment_Validate tests validation of Department.
func TestDepartment_Validate(t *testing.T) {
	tests := []struct {
		name    string
		d       department.Department
		wantErr error
	}{
		{name: "valid", d: department.Department{Name: "Office of Student Affairs"}},
		{name: "empty name", d: department.Department{}, wantErr: department.ErrEmptyName},
		{name: "whitespace name", d: department.Department{Name: "   "}, wantErr: department.ErrEmptyName},
		{name: "name too long", d: department.Department{Name: strings.Repeat("x", 121)}, wantErr: department.ErrNameTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.d.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
