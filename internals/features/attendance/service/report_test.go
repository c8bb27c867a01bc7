package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"kampusku_backend/internals/features/attendance/model"
)

func TestFormatPercentage(t *testing.T) {
	tests := []struct {
		name          string
		present       int
		totalSessions int
		leave         int
		want          string
	}{
		{name: "three quarters", present: 6, totalSessions: 10, leave: 2, want: "75%"},
		{name: "half", present: 5, totalSessions: 10, leave: 0, want: "50%"},
		{name: "perfect", present: 10, totalSessions: 10, leave: 0, want: "100%"},
		{name: "no sessions", present: 0, totalSessions: 0, leave: 0, want: "N/A"},
		{name: "all leave", present: 0, totalSessions: 4, leave: 4, want: "N/A"},
		{name: "fractional", present: 1, totalSessions: 8, leave: 0, want: "12.5%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatPercentage(tt.present, tt.totalSessions, tt.leave)
			if got != tt.want {
				t.Errorf("FormatPercentage(%d, %d, %d) = %q, want %q",
					tt.present, tt.totalSessions, tt.leave, got, tt.want)
			}
		})
	}
}

func TestBuildSubjectReport(t *testing.T) {
	alice := uuid.New()
	budi := uuid.New()

	session := func(n int) time.Time {
		return time.Date(2026, 3, n, 0, 0, 0, 0, time.UTC)
	}
	budiRow := func(n int, status model.AttendanceStatus) SubjectEntryRow {
		return SubjectEntryRow{StudentID: budi, StudentName: "Budi", RollNo: 7, Date: session(n), Status: status}
	}

	rows := []SubjectEntryRow{
		// budi (roll 7): 6 present, 2 absent, 2 leave dari 10 sesi
		budiRow(1, model.AttendancePresent),
		budiRow(2, model.AttendancePresent),
		budiRow(3, model.AttendancePresent),
		budiRow(4, model.AttendancePresent),
		budiRow(5, model.AttendancePresent),
		budiRow(6, model.AttendancePresent),
		budiRow(7, model.AttendanceAbsent),
		budiRow(8, model.AttendanceAbsent),
		budiRow(9, model.AttendanceLeave),
		budiRow(10, model.AttendanceLeave),
		// alice (roll 3): baru ikut 2 sesi terakhir, semua leave
		{StudentID: alice, StudentName: "Alice", RollNo: 3, Date: session(9), Status: model.AttendanceLeave},
		{StudentID: alice, StudentName: "Alice", RollNo: 3, Date: session(10), Status: model.AttendanceLeave},
	}

	report := BuildSubjectReport(rows, 10)
	if len(report) != 2 {
		t.Fatalf("expected 2 students, got %d", len(report))
	}

	// urut roll number
	if report[0].RollNo != 3 || report[1].RollNo != 7 {
		t.Errorf("expected roll order [3 7], got [%d %d]", report[0].RollNo, report[1].RollNo)
	}

	budiTally := report[1]
	if budiTally.Present != 6 || budiTally.Absent != 2 || budiTally.Leave != 2 {
		t.Errorf("budi tally = %+v", budiTally)
	}
	// 6 / (10 - 2) = 75%
	if budiTally.Percentage != "75%" {
		t.Errorf("budi percentage = %q, want 75%%", budiTally.Percentage)
	}

	// dates & entries sejajar, hanya sesi si student, urut tanggal
	if len(budiTally.Dates) != 10 || len(budiTally.Entries) != 10 {
		t.Fatalf("budi dates/entries = %d/%d, want 10/10", len(budiTally.Dates), len(budiTally.Entries))
	}
	if budiTally.Dates[0] != "2026-03-01" || budiTally.Dates[9] != "2026-03-10" {
		t.Errorf("budi dates boundary = [%s .. %s]", budiTally.Dates[0], budiTally.Dates[9])
	}
	if budiTally.Entries[6].Status != model.AttendanceAbsent || budiTally.Entries[9].Status != model.AttendanceLeave {
		t.Errorf("budi entries = %+v", budiTally.Entries)
	}

	aliceTally := report[0]
	// hanya sesi alice sendiri, bukan semua sesi subject
	if len(aliceTally.Dates) != 2 || aliceTally.Dates[0] != "2026-03-09" {
		t.Errorf("alice dates = %v", aliceTally.Dates)
	}
	// 10 sesi tapi leave cuma 2: penyebut 8, present 0 → 0%
	if aliceTally.Percentage != "0%" {
		t.Errorf("alice percentage = %q, want 0%%", aliceTally.Percentage)
	}
}

func TestBuildSubjectReportAllLeave(t *testing.T) {
	alice := uuid.New()
	rows := []SubjectEntryRow{
		{StudentID: alice, StudentName: "Alice", RollNo: 1, Status: model.AttendanceLeave},
		{StudentID: alice, StudentName: "Alice", RollNo: 1, Status: model.AttendanceLeave},
	}
	report := BuildSubjectReport(rows, 2)
	if report[0].Percentage != "N/A" {
		t.Errorf("all-leave percentage = %q, want N/A", report[0].Percentage)
	}
}

func TestBuildStudentReport(t *testing.T) {
	calculus := uuid.New()
	physics := uuid.New()
	algebra := uuid.New()

	rows := []StudentEntryRow{
		{SubjectID: calculus, SubjectName: "Calculus", SemesterName: 1, Status: model.AttendancePresent},
		{SubjectID: calculus, SubjectName: "Calculus", SemesterName: 1, Status: model.AttendanceAbsent},
		{SubjectID: physics, SubjectName: "Physics", SemesterName: 1, Status: model.AttendancePresent},
		{SubjectID: algebra, SubjectName: "Algebra", SemesterName: 2, Status: model.AttendanceLeave},
	}
	totals := map[uuid.UUID]int{
		calculus: 4, // student baru ikut 2 dari 4 sesi
		physics:  1,
		algebra:  1,
	}

	report := BuildStudentReport(rows, totals)
	if len(report) != 2 {
		t.Fatalf("expected 2 semesters, got %d", len(report))
	}
	if report[0].SemesterName != 1 || report[1].SemesterName != 2 {
		t.Errorf("semester order = [%d %d]", report[0].SemesterName, report[1].SemesterName)
	}

	sem1 := report[0]
	if len(sem1.Subjects) != 2 {
		t.Fatalf("semester 1 expected 2 subjects, got %d", len(sem1.Subjects))
	}
	// urut nama subject
	if sem1.Subjects[0].SubjectName != "Calculus" || sem1.Subjects[1].SubjectName != "Physics" {
		t.Errorf("subject order = [%s %s]", sem1.Subjects[0].SubjectName, sem1.Subjects[1].SubjectName)
	}

	calc := sem1.Subjects[0]
	if calc.TotalSessions != 4 {
		t.Errorf("calculus total sessions = %d, want 4 (hitung semua sesi subject)", calc.TotalSessions)
	}
	// 1 present dari penyebut 4 - 0 leave
	if calc.Percentage != "25%" {
		t.Errorf("calculus percentage = %q, want 25%%", calc.Percentage)
	}

	algebraStanding := report[1].Subjects[0]
	if algebraStanding.Percentage != "N/A" {
		t.Errorf("algebra percentage = %q, want N/A", algebraStanding.Percentage)
	}
}
