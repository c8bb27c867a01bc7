// internals/features/academics/subjects/service/gorm_catalog.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/academics/subjects/model"
)

// GormCatalogStore: implementasi CatalogStore di atas transaction GORM.
type GormCatalogStore struct {
	tx *gorm.DB
}

func NewGormCatalogStore(tx *gorm.DB) *GormCatalogStore {
	return &GormCatalogStore{tx: tx}
}

func (s *GormCatalogStore) DefaultByName(ctx context.Context, adminID uuid.UUID, name string) (*model.DefaultSubjectModel, error) {
	var def model.DefaultSubjectModel
	err := s.tx.WithContext(ctx).
		First(&def, "default_subject_name = ? AND default_subject_admin_id = ?", name, adminID).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &def, nil
}

func (s *GormCatalogStore) CountInSemester(ctx context.Context, name string, semesterID uuid.UUID) (int64, error) {
	var n int64
	err := s.tx.WithContext(ctx).Model(&model.SubjectModel{}).
		Where("subject_name = ? AND subject_semester_id = ?", name, semesterID).
		Count(&n).Error
	return n, err
}

func (s *GormCatalogStore) Create(ctx context.Context, subject *model.SubjectModel) error {
	return s.tx.WithContext(ctx).Create(subject).Error
}
