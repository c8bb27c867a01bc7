// internals/features/academics/guard/guard.go
package guard

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"kampusku_backend/internals/constants"
	helper "kampusku_backend/internals/helpers"
)

// ErrChainBroken: entity target atau salah satu mata rantai ownership tidak ada.
var ErrChainBroken = errors.New("ownership chain broken")

type Actor struct {
	ID   uuid.UUID
	Role string
}

// ChainResolver menelusuri rantai ownership sebuah entity sampai admin batch.
// Implementasi produksi pakai GORM (lihat gorm_resolver.go).
type ChainResolver interface {
	BatchOwner(ctx context.Context, batchID uuid.UUID) (uuid.UUID, error)
	SemesterOwner(ctx context.Context, semesterID uuid.UUID) (uuid.UUID, error)
	SubjectOwner(ctx context.Context, subjectID uuid.UUID) (uuid.UUID, error)
	SubjectTeacher(ctx context.Context, subjectID uuid.UUID) (*uuid.UUID, error)
	AttendanceOwner(ctx context.Context, attendanceID uuid.UUID) (uuid.UUID, error)
	StudentOwner(ctx context.Context, studentID uuid.UUID) (uuid.UUID, error)
}

// Gate = satu titik evaluasi policy (actor, resource) → allow/deny.
// Mismatch ownership sengaja dibalas 404, bukan 403: keberadaan resource
// milik department lain tidak boleh bocor.
type Gate struct {
	Resolver ChainResolver
}

func NewGate(r ChainResolver) *Gate {
	return &Gate{Resolver: r}
}

// allowed: super-admin bypass semua; selain itu harus pemilik chain.
func allowed(actor Actor, ownerAdminID uuid.UUID) bool {
	if actor.Role == constants.RoleSuperAdmin {
		return true
	}
	return actor.ID == ownerAdminID
}

func notFound(entity string) error {
	return fiber.NewError(fiber.StatusNotFound, entity+" Not Found")
}

// ensure: chain putus → 404, error DB lain diteruskan apa adanya (500-an),
// jangan sampai kegagalan transient terlihat seperti resource hilang.
func (g *Gate) ensure(actor Actor, entity string, ownerID uuid.UUID, err error) error {
	if err != nil {
		if IsNotFound(err) {
			return notFound(entity)
		}
		code, msg := helper.MapPGError(err)
		return fiber.NewError(code, msg)
	}
	if !allowed(actor, ownerID) {
		return notFound(entity)
	}
	return nil
}

func (g *Gate) EnsureBatchAccess(ctx context.Context, actor Actor, batchID uuid.UUID) error {
	if actor.Role == constants.RoleSuperAdmin {
		return nil
	}
	owner, err := g.Resolver.BatchOwner(ctx, batchID)
	return g.ensure(actor, "Batch", owner, err)
}

func (g *Gate) EnsureSemesterAccess(ctx context.Context, actor Actor, semesterID uuid.UUID) error {
	if actor.Role == constants.RoleSuperAdmin {
		return nil
	}
	owner, err := g.Resolver.SemesterOwner(ctx, semesterID)
	return g.ensure(actor, "Semester", owner, err)
}

func (g *Gate) EnsureSubjectAccess(ctx context.Context, actor Actor, subjectID uuid.UUID) error {
	if actor.Role == constants.RoleSuperAdmin {
		return nil
	}
	owner, err := g.Resolver.SubjectOwner(ctx, subjectID)
	return g.ensure(actor, "Subject", owner, err)
}

func (g *Gate) EnsureAttendanceAccess(ctx context.Context, actor Actor, attendanceID uuid.UUID) error {
	if actor.Role == constants.RoleSuperAdmin {
		return nil
	}
	owner, err := g.Resolver.AttendanceOwner(ctx, attendanceID)
	return g.ensure(actor, "Attendance", owner, err)
}

func (g *Gate) EnsureStudentAccess(ctx context.Context, actor Actor, studentID uuid.UUID) error {
	if actor.Role == constants.RoleSuperAdmin {
		return nil
	}
	owner, err := g.Resolver.StudentOwner(ctx, studentID)
	return g.ensure(actor, "Student", owner, err)
}

// EnsureSubjectTeacher: khusus marking attendance. Subject hilang → 404;
// teacher bukan pengampu → 403 (di sini identitas subject memang sudah diketahui).
func (g *Gate) EnsureSubjectTeacher(ctx context.Context, actor Actor, subjectID uuid.UUID) error {
	if actor.Role == constants.RoleSuperAdmin {
		return nil
	}
	teacherID, err := g.Resolver.SubjectTeacher(ctx, subjectID)
	if err != nil {
		if IsNotFound(err) {
			return notFound("Subject")
		}
		code, msg := helper.MapPGError(err)
		return fiber.NewError(code, msg)
	}
	if teacherID == nil || *teacherID != actor.ID {
		return fiber.NewError(fiber.StatusForbidden, "You are not authorized to take attendance for this subject")
	}
	return nil
}
