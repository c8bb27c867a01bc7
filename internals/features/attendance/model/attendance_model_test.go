package model

import "testing"

func TestValidStatus(t *testing.T) {
	tests := []struct {
		status AttendanceStatus
		want   bool
	}{
		{AttendancePresent, true},
		{AttendanceAbsent, true},
		{AttendanceLeave, true},
		{AttendanceStatus("sick"), false},
		{AttendanceStatus(""), false},
		{AttendanceStatus("Present"), false}, // case sensitive
	}
	for _, tt := range tests {
		if got := ValidStatus(tt.status); got != tt.want {
			t.Errorf("ValidStatus(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}
