// internals/features/academics/subjects/model/default_subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// DefaultSubjectModel: katalog mata kuliah per department.
// Subject konkret per semester dibuat dari entri katalog ini.
type DefaultSubjectModel struct {
	DefaultSubjectID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:default_subject_id" json:"default_subject_id"`

	DefaultSubjectName    string    `gorm:"type:varchar(120);not null;column:default_subject_name;uniqueIndex:uq_default_subjects_name_admin" json:"default_subject_name"`
	DefaultSubjectAdminID uuid.UUID `gorm:"type:uuid;not null;column:default_subject_admin_id;uniqueIndex:uq_default_subjects_name_admin;index:idx_default_subjects_admin" json:"default_subject_admin_id"`

	DefaultSubjectCreditHours int `gorm:"not null;column:default_subject_credit_hours" json:"default_subject_credit_hours"`

	DefaultSubjectCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:default_subject_created_at" json:"default_subject_created_at"`
	DefaultSubjectUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:default_subject_updated_at" json:"default_subject_updated_at"`
}

func (DefaultSubjectModel) TableName() string { return "default_subjects" }
