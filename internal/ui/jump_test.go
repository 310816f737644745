package ui

import (
	"errors"
	"testing"

	"github.com/five82/taqvim/internal/calendar"
)

func TestParseJump(t *testing.T) {
	tests := []struct {
		in        string
		wantYear  int
		wantMonth int
		wantErr   error
	}{
		{"1402/7", 1402, 7, nil},
		{" 1402-07 ", 1402, 7, nil},
		{"1300 12", 1300, 12, nil},
		{"۱۴۰۲/۱", 1402, 1, nil},
		{"1402", 0, 0, errJumpSyntax},
		{"1402/x", 0, 0, errJumpSyntax},
		{"", 0, 0, errJumpSyntax},
		{"1205/1", 0, 0, calendar.ErrUnsupportedEra},
		{"1499/1", 0, 0, calendar.ErrUnsupportedEra},
		{"1402/13", 0, 0, calendar.ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			year, month, err := parseJump(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("parseJump(%q) error = %v, want %v", tt.in, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseJump(%q) unexpected error: %v", tt.in, err)
			}
			if year != tt.wantYear || month != tt.wantMonth {
				t.Fatalf("parseJump(%q) = %d/%d, want %d/%d", tt.in, year, month, tt.wantYear, tt.wantMonth)
			}
		})
	}
}
