// internals/features/academics/guard/gorm_resolver.go
package guard

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormResolver menelusuri chain lewat JOIN, satu query per lookup.
type gormResolver struct {
	db *gorm.DB
}

func NewGormResolver(db *gorm.DB) ChainResolver {
	return &gormResolver{db: db}
}

func (r *gormResolver) scanOwner(ctx context.Context, query string, id uuid.UUID) (uuid.UUID, error) {
	var owner *uuid.UUID
	if err := r.db.WithContext(ctx).Raw(query, id).Scan(&owner).Error; err != nil {
		return uuid.Nil, err
	}
	if owner == nil {
		return uuid.Nil, ErrChainBroken
	}
	return *owner, nil
}

func (r *gormResolver) BatchOwner(ctx context.Context, batchID uuid.UUID) (uuid.UUID, error) {
	return r.scanOwner(ctx, `SELECT batch_admin_id FROM batches WHERE batch_id = ?`, batchID)
}

func (r *gormResolver) SemesterOwner(ctx context.Context, semesterID uuid.UUID) (uuid.UUID, error) {
	return r.scanOwner(ctx, `
		SELECT b.batch_admin_id
		FROM semesters s
		JOIN batches b ON b.batch_id = s.semester_batch_id
		WHERE s.semester_id = ?`, semesterID)
}

func (r *gormResolver) SubjectOwner(ctx context.Context, subjectID uuid.UUID) (uuid.UUID, error) {
	return r.scanOwner(ctx, `
		SELECT b.batch_admin_id
		FROM subjects sub
		JOIN semesters s ON s.semester_id = sub.subject_semester_id
		JOIN batches b ON b.batch_id = s.semester_batch_id
		WHERE sub.subject_id = ?`, subjectID)
}

func (r *gormResolver) SubjectTeacher(ctx context.Context, subjectID uuid.UUID) (*uuid.UUID, error) {
	var row struct {
		SubjectID        *uuid.UUID
		SubjectTeacherID *uuid.UUID
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT subject_id, subject_teacher_id FROM subjects WHERE subject_id = ?`, subjectID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.SubjectID == nil {
		return nil, ErrChainBroken
	}
	return row.SubjectTeacherID, nil
}

func (r *gormResolver) AttendanceOwner(ctx context.Context, attendanceID uuid.UUID) (uuid.UUID, error) {
	return r.scanOwner(ctx, `
		SELECT b.batch_admin_id
		FROM attendances a
		JOIN subjects sub ON sub.subject_id = a.attendance_subject_id
		JOIN semesters s ON s.semester_id = sub.subject_semester_id
		JOIN batches b ON b.batch_id = s.semester_batch_id
		WHERE a.attendance_id = ?`, attendanceID)
}

func (r *gormResolver) StudentOwner(ctx context.Context, studentID uuid.UUID) (uuid.UUID, error) {
	owner, err := r.scanOwner(ctx, `
		SELECT b.batch_admin_id
		FROM users u
		JOIN batches b ON b.batch_id = u.user_batch_id
		WHERE u.user_id = ? AND u.user_role = 'student'`, studentID)
	if err != nil {
		return uuid.Nil, err
	}
	return owner, nil
}

// IsNotFound membedakan chain putus dari error DB lain.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrChainBroken) || errors.Is(err, gorm.ErrRecordNotFound)
}
