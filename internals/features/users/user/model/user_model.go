// internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

/* =========================================================
   MODEL: users
   Satu tabel untuk semua role; kolom role-spesifik nullable.
========================================================= */

type UserModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`
	UserName  string    `gorm:"type:varchar(80);not null;column:user_name" json:"user_name"`
	UserEmail string    `gorm:"type:varchar(160);not null;uniqueIndex:uq_users_email;column:user_email" json:"user_email"`

	// super-admin | admin | teacher | student (CHECK di DB)
	UserRole string `gorm:"type:varchar(16);not null;column:user_role;index:idx_users_role" json:"user_role"`

	UserPassword          string     `gorm:"type:varchar(100);not null;column:user_password" json:"-"`
	UserPasswordChangedAt *time.Time `gorm:"column:user_password_changed_at" json:"-"`

	UserConfirmed bool `gorm:"not null;default:false;column:user_confirmed" json:"user_confirmed"`

	// admin only: nama department, unik di antara admin (partial unique index di DB)
	UserDepartment *string `gorm:"type:varchar(80);column:user_department" json:"user_department,omitempty"`

	// teacher only
	UserGender       *string    `gorm:"type:varchar(8);column:user_gender" json:"user_gender,omitempty"`
	UserDesignation  *string    `gorm:"type:varchar(40);column:user_designation" json:"user_designation,omitempty"`
	UserDepartmentID *uuid.UUID `gorm:"type:uuid;column:user_department_id;index:idx_users_department_id" json:"user_department_id,omitempty"`

	// student only
	UserRollNo         *int       `gorm:"column:user_roll_no" json:"user_roll_no,omitempty"`
	UserRegistrationNo *string    `gorm:"type:varchar(40);column:user_registration_no" json:"user_registration_no,omitempty"`
	UserBatchID        *uuid.UUID `gorm:"type:uuid;column:user_batch_id;index:idx_users_batch_id" json:"user_batch_id,omitempty"`

	// token konfirmasi & reset password (disimpan hash sha256)
	UserConfirmationToken    *string    `gorm:"type:varchar(64);column:user_confirmation_token" json:"-"`
	UserPasswordResetToken   *string    `gorm:"type:varchar(64);column:user_password_reset_token" json:"-"`
	UserPasswordResetExpires *time.Time `gorm:"column:user_password_reset_expires" json:"-"`

	UserCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:user_created_at" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:user_updated_at" json:"user_updated_at"`
}

func (UserModel) TableName() string { return "users" }

// SetPassword hash dengan cost 12 (mengikuti perilaku lama).
func (u *UserModel) SetPassword(plain string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), 12)
	if err != nil {
		return err
	}
	u.UserPassword = string(hashed)
	return nil
}

func (u *UserModel) CorrectPassword(candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.UserPassword), []byte(candidate)) == nil
}
