package cascade

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
)

// fakeStore merekam urutan operasi supaya test bisa memastikan anak
// dihapus sebelum induknya.
type fakeStore struct {
	batchesByAdmin    map[uuid.UUID][]uuid.UUID
	semestersByBatch  map[uuid.UUID][]uuid.UUID
	subjectsBySemester map[uuid.UUID][]uuid.UUID

	ops []string
}

func (f *fakeStore) record(format string, args ...any) {
	f.ops = append(f.ops, fmt.Sprintf(format, args...))
}

func (f *fakeStore) BatchIDsByAdmin(_ context.Context, adminID uuid.UUID) ([]uuid.UUID, error) {
	return f.batchesByAdmin[adminID], nil
}
func (f *fakeStore) SemesterIDsByBatch(_ context.Context, batchID uuid.UUID) ([]uuid.UUID, error) {
	return f.semestersByBatch[batchID], nil
}
func (f *fakeStore) SubjectIDsBySemester(_ context.Context, semesterID uuid.UUID) ([]uuid.UUID, error) {
	return f.subjectsBySemester[semesterID], nil
}
func (f *fakeStore) DeleteAttendanceBySubject(_ context.Context, subjectID uuid.UUID) error {
	f.record("attendance:%s", subjectID)
	return nil
}
func (f *fakeStore) DeleteSubject(_ context.Context, subjectID uuid.UUID) error {
	f.record("subject:%s", subjectID)
	return nil
}
func (f *fakeStore) DeleteSemester(_ context.Context, semesterID uuid.UUID) error {
	f.record("semester:%s", semesterID)
	return nil
}
func (f *fakeStore) DeleteStudentsByBatch(_ context.Context, batchID uuid.UUID) error {
	f.record("students:%s", batchID)
	return nil
}
func (f *fakeStore) DeleteBatch(_ context.Context, batchID uuid.UUID) error {
	f.record("batch:%s", batchID)
	return nil
}
func (f *fakeStore) DeleteDefaultSubjectsByAdmin(_ context.Context, adminID uuid.UUID) error {
	f.record("default_subjects:%s", adminID)
	return nil
}
func (f *fakeStore) DeleteTeachersByAdmin(_ context.Context, adminID uuid.UUID) error {
	f.record("teachers:%s", adminID)
	return nil
}
func (f *fakeStore) DeleteUser(_ context.Context, userID uuid.UUID) error {
	f.record("user:%s", userID)
	return nil
}

func indexOf(ops []string, op string) int {
	for i, o := range ops {
		if o == op {
			return i
		}
	}
	return -1
}

func assertBefore(t *testing.T, ops []string, first, second string) {
	t.Helper()
	i, j := indexOf(ops, first), indexOf(ops, second)
	if i == -1 {
		t.Fatalf("operation %q never happened (ops: %v)", first, ops)
	}
	if j == -1 {
		t.Fatalf("operation %q never happened (ops: %v)", second, ops)
	}
	if i >= j {
		t.Errorf("expected %q before %q, got order %v", first, second, ops)
	}
}

func TestDeleteSubjectTree(t *testing.T) {
	subject := uuid.New()
	store := &fakeStore{}
	m := NewManager(store)

	if err := m.DeleteSubjectTree(context.Background(), subject); err != nil {
		t.Fatalf("DeleteSubjectTree() error = %v", err)
	}
	assertBefore(t, store.ops, "attendance:"+subject.String(), "subject:"+subject.String())
}

func TestDeleteBatchTreeOrder(t *testing.T) {
	batch := uuid.New()
	semester := uuid.New()
	subjectA := uuid.New()
	subjectB := uuid.New()

	store := &fakeStore{
		semestersByBatch:   map[uuid.UUID][]uuid.UUID{batch: {semester}},
		subjectsBySemester: map[uuid.UUID][]uuid.UUID{semester: {subjectA, subjectB}},
	}
	m := NewManager(store)

	if err := m.DeleteBatchTree(context.Background(), batch); err != nil {
		t.Fatalf("DeleteBatchTree() error = %v", err)
	}

	for _, subject := range []uuid.UUID{subjectA, subjectB} {
		assertBefore(t, store.ops, "attendance:"+subject.String(), "subject:"+subject.String())
		assertBefore(t, store.ops, "subject:"+subject.String(), "semester:"+semester.String())
	}
	assertBefore(t, store.ops, "semester:"+semester.String(), "batch:"+batch.String())
	assertBefore(t, store.ops, "students:"+batch.String(), "batch:"+batch.String())
}

func TestDeleteDepartmentTreeCoversEverything(t *testing.T) {
	admin := uuid.New()
	batch1 := uuid.New()
	batch2 := uuid.New()
	semester := uuid.New()
	subject := uuid.New()

	store := &fakeStore{
		batchesByAdmin:     map[uuid.UUID][]uuid.UUID{admin: {batch1, batch2}},
		semestersByBatch:   map[uuid.UUID][]uuid.UUID{batch1: {semester}},
		subjectsBySemester: map[uuid.UUID][]uuid.UUID{semester: {subject}},
	}
	m := NewManager(store)

	if err := m.DeleteDepartmentTree(context.Background(), admin); err != nil {
		t.Fatalf("DeleteDepartmentTree() error = %v", err)
	}

	// semua level tersentuh
	for _, op := range []string{
		"subject:" + subject.String(),
		"semester:" + semester.String(),
		"batch:" + batch1.String(),
		"batch:" + batch2.String(),
		"default_subjects:" + admin.String(),
		"teachers:" + admin.String(),
		"user:" + admin.String(),
	} {
		if indexOf(store.ops, op) == -1 {
			t.Errorf("missing operation %q in %v", op, store.ops)
		}
	}

	// admin sendiri paling akhir
	if last := store.ops[len(store.ops)-1]; last != "user:"+admin.String() {
		t.Errorf("admin should be deleted last, got %q", last)
	}
	assertBefore(t, store.ops, "batch:"+batch1.String(), "user:"+admin.String())
	assertBefore(t, store.ops, "batch:"+batch2.String(), "user:"+admin.String())
}
