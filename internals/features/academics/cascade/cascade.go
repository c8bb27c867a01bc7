// internals/features/academics/cascade/cascade.go
package cascade

import (
	"context"

	"github.com/google/uuid"

	"kampusku_backend/internals/observability"
)

// Store = operasi delete per-level yang dibutuhkan cascade.
// Semua dipanggil di dalam satu transaction oleh caller.
type Store interface {
	BatchIDsByAdmin(ctx context.Context, adminID uuid.UUID) ([]uuid.UUID, error)
	SemesterIDsByBatch(ctx context.Context, batchID uuid.UUID) ([]uuid.UUID, error)
	SubjectIDsBySemester(ctx context.Context, semesterID uuid.UUID) ([]uuid.UUID, error)

	DeleteAttendanceBySubject(ctx context.Context, subjectID uuid.UUID) error
	DeleteSubject(ctx context.Context, subjectID uuid.UUID) error
	DeleteSemester(ctx context.Context, semesterID uuid.UUID) error
	DeleteStudentsByBatch(ctx context.Context, batchID uuid.UUID) error
	DeleteBatch(ctx context.Context, batchID uuid.UUID) error
	DeleteDefaultSubjectsByAdmin(ctx context.Context, adminID uuid.UUID) error
	DeleteTeachersByAdmin(ctx context.Context, adminID uuid.UUID) error
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

// Manager menjalankan cascade delete: anak selalu dihapus sebelum induknya
// supaya tidak ada record yatim walau FK di DB tidak pakai ON DELETE CASCADE.
type Manager struct {
	Store Store
}

func NewManager(s Store) *Manager {
	return &Manager{Store: s}
}

// DeleteSubjectTree: attendance (beserta entry-nya) → subject.
func (m *Manager) DeleteSubjectTree(ctx context.Context, subjectID uuid.UUID) error {
	if err := m.Store.DeleteAttendanceBySubject(ctx, subjectID); err != nil {
		return err
	}
	if err := m.Store.DeleteSubject(ctx, subjectID); err != nil {
		return err
	}
	observability.CascadeDeletes.WithLabelValues("subject").Inc()
	return nil
}

// DeleteSemesterTree: semua subject di semester → semester.
func (m *Manager) DeleteSemesterTree(ctx context.Context, semesterID uuid.UUID) error {
	subjects, err := m.Store.SubjectIDsBySemester(ctx, semesterID)
	if err != nil {
		return err
	}
	for _, subjectID := range subjects {
		if err := m.deleteSubjectNoMetric(ctx, subjectID); err != nil {
			return err
		}
	}
	if err := m.Store.DeleteSemester(ctx, semesterID); err != nil {
		return err
	}
	observability.CascadeDeletes.WithLabelValues("semester").Inc()
	return nil
}

// DeleteBatchTree: semua semester di batch → student batch → batch.
func (m *Manager) DeleteBatchTree(ctx context.Context, batchID uuid.UUID) error {
	if err := m.deleteBatchNoMetric(ctx, batchID); err != nil {
		return err
	}
	observability.CascadeDeletes.WithLabelValues("batch").Inc()
	return nil
}

// DeleteDepartmentTree: semua batch milik admin → default subject → teacher → admin.
func (m *Manager) DeleteDepartmentTree(ctx context.Context, adminID uuid.UUID) error {
	batches, err := m.Store.BatchIDsByAdmin(ctx, adminID)
	if err != nil {
		return err
	}
	for _, batchID := range batches {
		if err := m.deleteBatchNoMetric(ctx, batchID); err != nil {
			return err
		}
	}
	if err := m.Store.DeleteDefaultSubjectsByAdmin(ctx, adminID); err != nil {
		return err
	}
	if err := m.Store.DeleteTeachersByAdmin(ctx, adminID); err != nil {
		return err
	}
	if err := m.Store.DeleteUser(ctx, adminID); err != nil {
		return err
	}
	observability.CascadeDeletes.WithLabelValues("department").Inc()
	return nil
}

func (m *Manager) deleteSubjectNoMetric(ctx context.Context, subjectID uuid.UUID) error {
	if err := m.Store.DeleteAttendanceBySubject(ctx, subjectID); err != nil {
		return err
	}
	return m.Store.DeleteSubject(ctx, subjectID)
}

func (m *Manager) deleteSemesterNoMetric(ctx context.Context, semesterID uuid.UUID) error {
	subjects, err := m.Store.SubjectIDsBySemester(ctx, semesterID)
	if err != nil {
		return err
	}
	for _, subjectID := range subjects {
		if err := m.deleteSubjectNoMetric(ctx, subjectID); err != nil {
			return err
		}
	}
	return m.Store.DeleteSemester(ctx, semesterID)
}

func (m *Manager) deleteBatchNoMetric(ctx context.Context, batchID uuid.UUID) error {
	semesters, err := m.Store.SemesterIDsByBatch(ctx, batchID)
	if err != nil {
		return err
	}
	for _, semesterID := range semesters {
		if err := m.deleteSemesterNoMetric(ctx, semesterID); err != nil {
			return err
		}
	}
	if err := m.Store.DeleteStudentsByBatch(ctx, batchID); err != nil {
		return err
	}
	return m.Store.DeleteBatch(ctx, batchID)
}
