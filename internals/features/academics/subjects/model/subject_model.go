// internals/features/academics/subjects/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type SubjectModel struct {
	SubjectID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:subject_id" json:"subject_id"`

	// nama unik per semester
	SubjectName       string    `gorm:"type:varchar(120);not null;column:subject_name;uniqueIndex:uq_subjects_name_semester" json:"subject_name"`
	SubjectSemesterID uuid.UUID `gorm:"type:uuid;not null;column:subject_semester_id;uniqueIndex:uq_subjects_name_semester;index:idx_subjects_semester" json:"subject_semester_id"`

	// teacher pengampu, boleh kosong
	SubjectTeacherID *uuid.UUID `gorm:"type:uuid;column:subject_teacher_id;index:idx_subjects_teacher" json:"subject_teacher_id,omitempty"`

	SubjectCreditHours int  `gorm:"not null;column:subject_credit_hours" json:"subject_credit_hours"`
	SubjectArchived    bool `gorm:"not null;default:false;column:subject_archived" json:"subject_archived"`

	SubjectCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:subject_created_at" json:"subject_created_at"`
	SubjectUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:subject_updated_at" json:"subject_updated_at"`
}

func (SubjectModel) TableName() string { return "subjects" }
