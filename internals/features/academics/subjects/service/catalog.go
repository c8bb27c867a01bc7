// internals/features/academics/subjects/service/catalog.go
package service

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"kampusku_backend/internals/features/academics/subjects/model"
)

// CatalogStore = akses data yang dibutuhkan pembuatan subject dari katalog.
// Semua dipanggil di dalam satu transaction oleh caller (lihat gorm_catalog.go).
type CatalogStore interface {
	DefaultByName(ctx context.Context, adminID uuid.UUID, name string) (*model.DefaultSubjectModel, error)
	CountInSemester(ctx context.Context, name string, semesterID uuid.UUID) (int64, error)
	Create(ctx context.Context, subject *model.SubjectModel) error
}

// CreateFromCatalog membuat subject konkret dari katalog default_subjects:
// nama harus terdaftar di katalog admin (404 kalau tidak), belum ada di
// semester yang sama (409 kalau duplikat). Credit hours disalin dari katalog.
func CreateFromCatalog(ctx context.Context, store CatalogStore, name string, semesterID, adminID uuid.UUID) (*model.SubjectModel, error) {
	def, err := store.DefaultByName(ctx, adminID, name)
	if err != nil {
		return nil, err
	}
	if def == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Subject Not Found in department catalog")
	}

	dup, err := store.CountInSemester(ctx, name, semesterID)
	if err != nil {
		return nil, err
	}
	if dup > 0 {
		return nil, fiber.NewError(fiber.StatusConflict, "Subject already exists in this semester")
	}

	subject := &model.SubjectModel{
		SubjectName:        def.DefaultSubjectName,
		SubjectSemesterID:  semesterID,
		SubjectCreditHours: def.DefaultSubjectCreditHours,
	}
	if err := store.Create(ctx, subject); err != nil {
		return nil, err
	}
	return subject, nil
}
