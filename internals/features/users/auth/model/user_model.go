// internals/features/users/auth/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`

	UserName  string `gorm:"type:varchar(100);not null;column:user_name" json:"user_name"`
	UserEmail string `gorm:"type:varchar(255);not null;uniqueIndex;column:user_email" json:"user_email"`

	// Kosong untuk akun Google-only
	UserPassword *string `gorm:"type:varchar(255);column:user_password" json:"-"`
	UserGoogleID *string `gorm:"type:varchar(64);index;column:user_google_id" json:"-"`

	// Role global akun: user | staff | admin | owner
	UserRole string `gorm:"type:varchar(20);not null;default:'user';column:user_role" json:"user_role"`

	UserIsActive bool `gorm:"not null;default:true;column:user_is_active" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt *time.Time     `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at,omitempty"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	s := string(hash)
	m.UserPassword = &s
	return nil
}

// CheckPassword: false juga untuk akun tanpa password (Google-only)
func (m *UserModel) CheckPassword(plain string) bool {
	if m.UserPassword == nil {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(*m.UserPassword), []byte(plain)) == nil
}
