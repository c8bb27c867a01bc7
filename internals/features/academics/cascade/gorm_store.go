// internals/features/academics/cascade/gorm_store.go
package cascade

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	attendanceModel "kampusku_backend/internals/features/attendance/model"
	batchModel "kampusku_backend/internals/features/academics/batches/model"
	semesterModel "kampusku_backend/internals/features/academics/semesters/model"
	subjectModel "kampusku_backend/internals/features/academics/subjects/model"
	userModel "kampusku_backend/internals/features/users/user/model"
	"kampusku_backend/internals/constants"
)

type gormStore struct {
	db *gorm.DB
}

// NewGormStore: db di sini biasanya *gorm.DB hasil Transaction, supaya
// seluruh cascade atomic.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) BatchIDsByAdmin(ctx context.Context, adminID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.db.WithContext(ctx).Model(&batchModel.BatchModel{}).
		Where("batch_admin_id = ?", adminID).
		Pluck("batch_id", &ids).Error
	return ids, err
}

func (s *gormStore) SemesterIDsByBatch(ctx context.Context, batchID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.db.WithContext(ctx).Model(&semesterModel.SemesterModel{}).
		Where("semester_batch_id = ?", batchID).
		Pluck("semester_id", &ids).Error
	return ids, err
}

func (s *gormStore) SubjectIDsBySemester(ctx context.Context, semesterID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.db.WithContext(ctx).Model(&subjectModel.SubjectModel{}).
		Where("subject_semester_id = ?", semesterID).
		Pluck("subject_id", &ids).Error
	return ids, err
}

func (s *gormStore) DeleteAttendanceBySubject(ctx context.Context, subjectID uuid.UUID) error {
	// entry dulu, baru header
	err := s.db.WithContext(ctx).
		Where("attendance_entry_attendance_id IN (?)",
			s.db.Model(&attendanceModel.AttendanceModel{}).
				Select("attendance_id").
				Where("attendance_subject_id = ?", subjectID),
		).
		Delete(&attendanceModel.AttendanceEntryModel{}).Error
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).
		Where("attendance_subject_id = ?", subjectID).
		Delete(&attendanceModel.AttendanceModel{}).Error
}

func (s *gormStore) DeleteSubject(ctx context.Context, subjectID uuid.UUID) error {
	return s.db.WithContext(ctx).
		Where("subject_id = ?", subjectID).
		Delete(&subjectModel.SubjectModel{}).Error
}

func (s *gormStore) DeleteSemester(ctx context.Context, semesterID uuid.UUID) error {
	return s.db.WithContext(ctx).
		Where("semester_id = ?", semesterID).
		Delete(&semesterModel.SemesterModel{}).Error
}

func (s *gormStore) DeleteStudentsByBatch(ctx context.Context, batchID uuid.UUID) error {
	return s.db.WithContext(ctx).
		Where("user_batch_id = ? AND user_role = ?", batchID, constants.RoleStudent).
		Delete(&userModel.UserModel{}).Error
}

func (s *gormStore) DeleteBatch(ctx context.Context, batchID uuid.UUID) error {
	return s.db.WithContext(ctx).
		Where("batch_id = ?", batchID).
		Delete(&batchModel.BatchModel{}).Error
}

func (s *gormStore) DeleteDefaultSubjectsByAdmin(ctx context.Context, adminID uuid.UUID) error {
	return s.db.WithContext(ctx).
		Where("default_subject_admin_id = ?", adminID).
		Delete(&subjectModel.DefaultSubjectModel{}).Error
}

func (s *gormStore) DeleteTeachersByAdmin(ctx context.Context, adminID uuid.UUID) error {
	return s.db.WithContext(ctx).
		Where("user_department_id = ? AND user_role = ?", adminID, constants.RoleTeacher).
		Delete(&userModel.UserModel{}).Error
}

func (s *gormStore) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	return s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&userModel.UserModel{}).Error
}
