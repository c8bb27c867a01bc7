// internals/features/attendance/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLeave   AttendanceStatus = "leave"
)

func ValidStatus(s AttendanceStatus) bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLeave:
		return true
	}
	return false
}

/* =========================================================
   MODEL: attendances
   Satu event marking per (subject, tanggal kalender).
========================================================= */

type AttendanceModel struct {
	AttendanceID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_id" json:"attendance_id"`

	AttendanceSubjectID uuid.UUID      `gorm:"type:uuid;not null;column:attendance_subject_id;index:idx_attendances_subject" json:"attendance_subject_id"`
	AttendanceDate      datatypes.Date `gorm:"not null;column:attendance_date" json:"attendance_date"`

	AttendanceMarkedBy uuid.UUID `gorm:"type:uuid;not null;column:attendance_marked_by" json:"attendance_marked_by"`

	AttendanceCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:attendance_created_at" json:"attendance_created_at"`

	// daftar (student, status) yang ditandai pada event ini
	Entries []AttendanceEntryModel `gorm:"foreignKey:AttendanceEntryAttendanceID;references:AttendanceID" json:"entries,omitempty"`
}

func (AttendanceModel) TableName() string { return "attendances" }

type AttendanceEntryModel struct {
	AttendanceEntryID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_entry_id" json:"attendance_entry_id"`
	AttendanceEntryAttendanceID uuid.UUID `gorm:"type:uuid;not null;column:attendance_entry_attendance_id;index:idx_attendance_entries_attendance;uniqueIndex:uq_attendance_entries_student" json:"attendance_entry_attendance_id"`
	AttendanceEntryStudentID    uuid.UUID `gorm:"type:uuid;not null;column:attendance_entry_student_id;index:idx_attendance_entries_student;uniqueIndex:uq_attendance_entries_student" json:"attendance_entry_student_id"`

	// present | absent | leave (CHECK di DB)
	AttendanceEntryStatus AttendanceStatus `gorm:"type:varchar(8);not null;column:attendance_entry_status" json:"attendance_entry_status"`
}

func (AttendanceEntryModel) TableName() string { return "attendance_entries" }
