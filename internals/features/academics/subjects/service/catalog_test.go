package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"kampusku_backend/internals/features/academics/subjects/model"
)

// fakeCatalog: katalog per admin + daftar subject yang sudah ada per semester.
type fakeCatalog struct {
	defaults map[string]*model.DefaultSubjectModel // key: adminID|name
	existing map[string]int64                      // key: semesterID|name

	created []*model.SubjectModel
}

func catalogKey(adminID uuid.UUID, name string) string    { return adminID.String() + "|" + name }
func semesterKey(semesterID uuid.UUID, name string) string { return semesterID.String() + "|" + name }

func (f *fakeCatalog) DefaultByName(_ context.Context, adminID uuid.UUID, name string) (*model.DefaultSubjectModel, error) {
	return f.defaults[catalogKey(adminID, name)], nil
}

func (f *fakeCatalog) CountInSemester(_ context.Context, name string, semesterID uuid.UUID) (int64, error) {
	return f.existing[semesterKey(semesterID, name)], nil
}

func (f *fakeCatalog) Create(_ context.Context, subject *model.SubjectModel) error {
	f.created = append(f.created, subject)
	return nil
}

func fiberStatus(err error) int {
	if err == nil {
		return 0
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return -1
}

func TestCreateFromCatalog(t *testing.T) {
	admin := uuid.New()
	semester := uuid.New()
	otherSemester := uuid.New()

	store := &fakeCatalog{
		defaults: map[string]*model.DefaultSubjectModel{
			catalogKey(admin, "Calculus"): {
				DefaultSubjectName:        "Calculus",
				DefaultSubjectAdminID:     admin,
				DefaultSubjectCreditHours: 4,
			},
		},
		existing: map[string]int64{
			semesterKey(otherSemester, "Calculus"): 1,
		},
	}

	tests := []struct {
		name       string
		subject    string
		semesterID uuid.UUID
		wantStatus int
	}{
		{name: "from catalog", subject: "Calculus", semesterID: semester, wantStatus: 0},
		{name: "not in catalog", subject: "Alchemy", semesterID: semester, wantStatus: fiber.StatusNotFound},
		// sudah ada di semester yang sama → conflict
		{name: "duplicate in semester", subject: "Calculus", semesterID: otherSemester, wantStatus: fiber.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, err := CreateFromCatalog(context.Background(), store, tt.subject, tt.semesterID, admin)
			if got := fiberStatus(err); got != tt.wantStatus {
				t.Fatalf("CreateFromCatalog() status = %d, want %d (err=%v)", got, tt.wantStatus, err)
			}
			if tt.wantStatus != 0 {
				return
			}
			// credit hours ikut dari katalog
			if subject.SubjectCreditHours != 4 {
				t.Errorf("credit hours = %d, want 4", subject.SubjectCreditHours)
			}
			if subject.SubjectSemesterID != tt.semesterID {
				t.Errorf("semester id = %s, want %s", subject.SubjectSemesterID, tt.semesterID)
			}
		})
	}

	// hanya case sukses yang sampai ke Create
	if len(store.created) != 1 {
		t.Errorf("created %d subjects, want 1", len(store.created))
	}
}
