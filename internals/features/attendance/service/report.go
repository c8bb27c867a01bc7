// internals/features/attendance/service/report.go
package service

import (
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"kampusku_backend/internals/features/attendance/model"
)

/* =========================================================
   Agregasi laporan kehadiran.
   Fetch SQL ada di controller; fungsi di sini pure supaya mudah diuji.
========================================================= */

// FormatPercentage: present / (totalSessions - leave) × 100.
// Leave tidak dihitung sebagai sesi. Penyebut 0 → "N/A".
func FormatPercentage(present, totalSessions, leave int) string {
	denom := totalSessions - leave
	if denom <= 0 {
		return "N/A"
	}
	pct := float64(present) / float64(denom) * 100
	return strconv.FormatFloat(pct, 'f', -1, 64) + "%"
}

// SubjectEntryRow: satu entry (student, status) dari salah satu sesi subject.
// Date = tanggal sesi tempat entry itu ditandai.
type SubjectEntryRow struct {
	StudentID   uuid.UUID
	StudentName string
	RollNo      int
	Date        time.Time
	Status      model.AttendanceStatus
}

// StatusEntry: status mentah satu sesi, urut tanggal sesi.
type StatusEntry struct {
	Status model.AttendanceStatus `json:"status"`
}

// StudentTally: rekap per student untuk laporan subject.
// Dates & Entries sejajar: sesi yang memuat si student saja.
type StudentTally struct {
	StudentID   uuid.UUID     `json:"student_id"`
	StudentName string        `json:"student_name"`
	RollNo      int           `json:"roll_no"`
	Dates       []string      `json:"dates"`
	Entries     []StatusEntry `json:"entries"`
	Present     int           `json:"present"`
	Absent      int           `json:"absent"`
	Leave       int           `json:"leave"`
	Percentage  string        `json:"percentage"`
}

// BuildSubjectReport merekap entry flat jadi satu baris per student,
// diurutkan roll number. Dates/Entries mengikuti urutan rows (caller
// mengurutkan per tanggal sesi). totalSessions = jumlah sesi marking
// subject, bukan jumlah entry si student.
func BuildSubjectReport(rows []SubjectEntryRow, totalSessions int) []StudentTally {
	byStudent := make(map[uuid.UUID]*StudentTally)
	for _, row := range rows {
		tally, ok := byStudent[row.StudentID]
		if !ok {
			tally = &StudentTally{
				StudentID:   row.StudentID,
				StudentName: row.StudentName,
				RollNo:      row.RollNo,
			}
			byStudent[row.StudentID] = tally
		}
		tally.Dates = append(tally.Dates, row.Date.Format("2006-01-02"))
		tally.Entries = append(tally.Entries, StatusEntry{Status: row.Status})
		switch row.Status {
		case model.AttendancePresent:
			tally.Present++
		case model.AttendanceAbsent:
			tally.Absent++
		case model.AttendanceLeave:
			tally.Leave++
		}
	}

	report := make([]StudentTally, 0, len(byStudent))
	for _, tally := range byStudent {
		tally.Percentage = FormatPercentage(tally.Present, totalSessions, tally.Leave)
		report = append(report, *tally)
	}
	sort.Slice(report, func(i, j int) bool { return report[i].RollNo < report[j].RollNo })
	return report
}

// StudentEntryRow: satu entry milik student, dengan konteks subject-nya.
type StudentEntryRow struct {
	SubjectID    uuid.UUID
	SubjectName  string
	SemesterName int
	Status       model.AttendanceStatus
}

// SubjectStanding: posisi student di satu subject.
type SubjectStanding struct {
	SubjectID     uuid.UUID `json:"subject_id"`
	SubjectName   string    `json:"subject_name"`
	TotalSessions int       `json:"total_sessions"`
	Present       int       `json:"present"`
	Absent        int       `json:"absent"`
	Leave         int       `json:"leave"`
	Percentage    string    `json:"percentage"`
}

type SemesterReport struct {
	SemesterName int               `json:"semester_name"`
	Subjects     []SubjectStanding `json:"subjects"`
}

// BuildStudentReport mengelompokkan standing per semester.
// totals: jumlah sesi marking per subject (termasuk sesi sebelum student ada).
func BuildStudentReport(rows []StudentEntryRow, totals map[uuid.UUID]int) []SemesterReport {
	type key struct {
		semester  int
		subjectID uuid.UUID
	}
	standings := make(map[key]*SubjectStanding)
	for _, row := range rows {
		k := key{semester: row.SemesterName, subjectID: row.SubjectID}
		st, ok := standings[k]
		if !ok {
			st = &SubjectStanding{
				SubjectID:     row.SubjectID,
				SubjectName:   row.SubjectName,
				TotalSessions: totals[row.SubjectID],
			}
			standings[k] = st
		}
		switch row.Status {
		case model.AttendancePresent:
			st.Present++
		case model.AttendanceAbsent:
			st.Absent++
		case model.AttendanceLeave:
			st.Leave++
		}
	}

	bySemester := make(map[int][]SubjectStanding)
	for k, st := range standings {
		st.Percentage = FormatPercentage(st.Present, st.TotalSessions, st.Leave)
		bySemester[k.semester] = append(bySemester[k.semester], *st)
	}

	report := make([]SemesterReport, 0, len(bySemester))
	for semester, subjects := range bySemester {
		sort.Slice(subjects, func(i, j int) bool { return subjects[i].SubjectName < subjects[j].SubjectName })
		report = append(report, SemesterReport{SemesterName: semester, Subjects: subjects})
	}
	sort.Slice(report, func(i, j int) bool { return report[i].SemesterName < report[j].SemesterName })
	return report
}
