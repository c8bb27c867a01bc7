// internals/features/academics/batches/service/gorm_archive.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	semesterModel "kampusku_backend/internals/features/academics/semesters/model"
	subjectModel "kampusku_backend/internals/features/academics/subjects/model"
)

// GormArchiveStore: implementasi ArchiveStore di atas transaction GORM.
type GormArchiveStore struct {
	tx *gorm.DB
}

func NewGormArchiveStore(tx *gorm.DB) *GormArchiveStore {
	return &GormArchiveStore{tx: tx}
}

func (s *GormArchiveStore) SetSemestersArchivedByBatch(ctx context.Context, batchID uuid.UUID, archived bool) error {
	return s.tx.WithContext(ctx).Model(&semesterModel.SemesterModel{}).
		Where("semester_batch_id = ?", batchID).
		Update("semester_archived", archived).Error
}

func (s *GormArchiveStore) SetSubjectsArchivedByBatch(ctx context.Context, batchID uuid.UUID, archived bool) error {
	return s.tx.WithContext(ctx).Model(&subjectModel.SubjectModel{}).
		Where("subject_semester_id IN (?)",
			s.tx.Model(&semesterModel.SemesterModel{}).
				Select("semester_id").
				Where("semester_batch_id = ?", batchID),
		).
		Update("subject_archived", archived).Error
}
