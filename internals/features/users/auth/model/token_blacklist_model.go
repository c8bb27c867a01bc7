// internals/features/users/auth/model/token_blacklist_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenBlacklistModel menyimpan JWT yang sudah di-logout sampai expired.
// Dibersihkan periodik oleh scheduler.
type TokenBlacklistModel struct {
	TokenBlacklistID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:token_blacklist_id" json:"token_blacklist_id"`
	TokenBlacklistToken     string    `gorm:"type:text;not null;uniqueIndex:uq_token_blacklist_token;column:token_blacklist_token" json:"token_blacklist_token"`
	TokenBlacklistExpiresAt time.Time `gorm:"type:timestamptz;not null;column:token_blacklist_expires_at;index:idx_token_blacklist_expires" json:"token_blacklist_expires_at"`
	TokenBlacklistCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:token_blacklist_created_at" json:"token_blacklist_created_at"`
}

func (TokenBlacklistModel) TableName() string { return "token_blacklist" }
