// internals/features/academics/batches/model/batch_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   MODEL: batches
   Satu angkatan (cohort), dimiliki tepat satu admin department.
========================================================= */

type BatchModel struct {
	BatchID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:batch_id" json:"batch_id"`

	// nama angkatan (tahun), unik per admin
	BatchName    int       `gorm:"not null;column:batch_name;uniqueIndex:uq_batches_name_admin" json:"batch_name"`
	BatchAdminID uuid.UUID `gorm:"type:uuid;not null;column:batch_admin_id;uniqueIndex:uq_batches_name_admin;index:idx_batches_admin" json:"batch_admin_id"`

	// kode join global-unik, dipakai student saat signup
	BatchCode string `gorm:"type:varchar(8);not null;uniqueIndex:uq_batches_code;column:batch_code" json:"batch_code"`

	// archive = soft-disable, TIDAK menghapus turunan
	BatchArchived bool `gorm:"not null;default:false;column:batch_archived" json:"batch_archived"`

	BatchCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:batch_created_at" json:"batch_created_at"`
	BatchUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:batch_updated_at" json:"batch_updated_at"`
}

func (BatchModel) TableName() string { return "batches" }
