package guard

import (
	"context"
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"kampusku_backend/internals/constants"
)

type fakeResolver struct {
	batchOwner    map[uuid.UUID]uuid.UUID
	subjectOwner  map[uuid.UUID]uuid.UUID
	subjectTeach  map[uuid.UUID]*uuid.UUID
	semesterOwner map[uuid.UUID]uuid.UUID
	failWith      error // kalau di-set, semua lookup gagal dengan error ini
}

func (f *fakeResolver) lookup(m map[uuid.UUID]uuid.UUID, id uuid.UUID) (uuid.UUID, error) {
	if f.failWith != nil {
		return uuid.Nil, f.failWith
	}
	owner, ok := m[id]
	if !ok {
		return uuid.Nil, ErrChainBroken
	}
	return owner, nil
}

func (f *fakeResolver) BatchOwner(_ context.Context, id uuid.UUID) (uuid.UUID, error) {
	return f.lookup(f.batchOwner, id)
}
func (f *fakeResolver) SemesterOwner(_ context.Context, id uuid.UUID) (uuid.UUID, error) {
	return f.lookup(f.semesterOwner, id)
}
func (f *fakeResolver) SubjectOwner(_ context.Context, id uuid.UUID) (uuid.UUID, error) {
	return f.lookup(f.subjectOwner, id)
}
func (f *fakeResolver) SubjectTeacher(_ context.Context, id uuid.UUID) (*uuid.UUID, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	t, ok := f.subjectTeach[id]
	if !ok {
		return nil, ErrChainBroken
	}
	return t, nil
}
func (f *fakeResolver) AttendanceOwner(_ context.Context, id uuid.UUID) (uuid.UUID, error) {
	return uuid.Nil, ErrChainBroken
}
func (f *fakeResolver) StudentOwner(_ context.Context, id uuid.UUID) (uuid.UUID, error) {
	return uuid.Nil, ErrChainBroken
}

func statusOf(err error) int {
	if err == nil {
		return 0
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return -1
}

func TestEnsureBatchAccess(t *testing.T) {
	adminA := uuid.New()
	adminB := uuid.New()
	batchOfB := uuid.New()
	missing := uuid.New()

	gate := NewGate(&fakeResolver{
		batchOwner: map[uuid.UUID]uuid.UUID{batchOfB: adminB},
	})

	tests := []struct {
		name       string
		actor      Actor
		batchID    uuid.UUID
		wantStatus int
	}{
		{name: "owner allowed", actor: Actor{ID: adminB, Role: constants.RoleAdmin}, batchID: batchOfB, wantStatus: 0},
		// admin lain dapat 404, bukan 403: keberadaan batch tidak boleh bocor
		{name: "foreign admin hidden", actor: Actor{ID: adminA, Role: constants.RoleAdmin}, batchID: batchOfB, wantStatus: fiber.StatusNotFound},
		{name: "missing batch", actor: Actor{ID: adminA, Role: constants.RoleAdmin}, batchID: missing, wantStatus: fiber.StatusNotFound},
		{name: "super-admin bypass", actor: Actor{ID: adminA, Role: constants.RoleSuperAdmin}, batchID: batchOfB, wantStatus: 0},
		{name: "super-admin bypass even when missing", actor: Actor{ID: adminA, Role: constants.RoleSuperAdmin}, batchID: missing, wantStatus: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := gate.EnsureBatchAccess(context.Background(), tt.actor, tt.batchID)
			if got := statusOf(err); got != tt.wantStatus {
				t.Errorf("EnsureBatchAccess() status = %d, want %d (err=%v)", got, tt.wantStatus, err)
			}
		})
	}
}

// Kegagalan DB transient tidak boleh disamarkan jadi 404.
func TestEnsureAccessResolverFailure(t *testing.T) {
	admin := uuid.New()
	batchID := uuid.New()
	subjectID := uuid.New()

	gate := NewGate(&fakeResolver{failWith: errors.New("driver: bad connection")})
	actor := Actor{ID: admin, Role: constants.RoleAdmin}

	if got := statusOf(gate.EnsureBatchAccess(context.Background(), actor, batchID)); got != fiber.StatusInternalServerError {
		t.Errorf("EnsureBatchAccess() status = %d, want %d", got, fiber.StatusInternalServerError)
	}

	teacher := Actor{ID: admin, Role: constants.RoleTeacher}
	if got := statusOf(gate.EnsureSubjectTeacher(context.Background(), teacher, subjectID)); got != fiber.StatusInternalServerError {
		t.Errorf("EnsureSubjectTeacher() status = %d, want %d", got, fiber.StatusInternalServerError)
	}
}

func TestEnsureSubjectTeacher(t *testing.T) {
	teacher := uuid.New()
	otherTeacher := uuid.New()
	subject := uuid.New()
	unassigned := uuid.New()
	missing := uuid.New()

	gate := NewGate(&fakeResolver{
		subjectTeach: map[uuid.UUID]*uuid.UUID{
			subject:    &teacher,
			unassigned: nil,
		},
	})

	tests := []struct {
		name       string
		actor      Actor
		subjectID  uuid.UUID
		wantStatus int
	}{
		{name: "assigned teacher", actor: Actor{ID: teacher, Role: constants.RoleTeacher}, subjectID: subject, wantStatus: 0},
		{name: "other teacher forbidden", actor: Actor{ID: otherTeacher, Role: constants.RoleTeacher}, subjectID: subject, wantStatus: fiber.StatusForbidden},
		{name: "unassigned subject forbidden", actor: Actor{ID: teacher, Role: constants.RoleTeacher}, subjectID: unassigned, wantStatus: fiber.StatusForbidden},
		{name: "missing subject", actor: Actor{ID: teacher, Role: constants.RoleTeacher}, subjectID: missing, wantStatus: fiber.StatusNotFound},
		{name: "super-admin bypass", actor: Actor{ID: otherTeacher, Role: constants.RoleSuperAdmin}, subjectID: subject, wantStatus: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := gate.EnsureSubjectTeacher(context.Background(), tt.actor, tt.subjectID)
			if got := statusOf(err); got != tt.wantStatus {
				t.Errorf("EnsureSubjectTeacher() status = %d, want %d (err=%v)", got, tt.wantStatus, err)
			}
		})
	}
}
