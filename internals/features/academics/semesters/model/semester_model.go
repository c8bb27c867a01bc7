// internals/features/academics/semesters/model/semester_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type SemesterModel struct {
	SemesterID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:semester_id" json:"semester_id"`

	// 1..8 (CHECK di DB), unik per batch
	SemesterName    int       `gorm:"not null;column:semester_name;uniqueIndex:uq_semesters_name_batch" json:"semester_name"`
	SemesterBatchID uuid.UUID `gorm:"type:uuid;not null;column:semester_batch_id;uniqueIndex:uq_semesters_name_batch;index:idx_semesters_batch" json:"semester_batch_id"`

	SemesterArchived bool `gorm:"not null;default:false;column:semester_archived" json:"semester_archived"`

	SemesterCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:semester_created_at" json:"semester_created_at"`
	SemesterUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:semester_updated_at" json:"semester_updated_at"`
}

func (SemesterModel) TableName() string { return "semesters" }
