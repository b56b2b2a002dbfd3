// internals/features/users/staff/model/staff_model.go
package model

import (
	"database/sql/driver"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/*
Status onboarding staff (sesuai ENUM di DB):
- "pending"  : sudah mengajukan bergabung, menunggu approval admin
- "active"   : di-approve, boleh absen
- "rejected" : ditolak
- "inactive" : dinonaktifkan (resign / kontrak habis)
*/
type StaffStatus string

const (
	StaffStatusPending  StaffStatus = "pending"
	StaffStatusActive   StaffStatus = "active"
	StaffStatusRejected StaffStatus = "rejected"
	StaffStatusInactive StaffStatus = "inactive"
)

// Pastikan selalu lower-case saat scan/save
func (s *StaffStatus) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = StaffStatus(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*s = StaffStatus(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*s = ""
	}
	return nil
}
func (s StaffStatus) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(s))), nil
}

type StaffModel struct {
	// PK
	StaffID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:staff_id" json:"staff_id"`

	// Relasi akun & tenant. OrgID nullable: akun bisa terdaftar
	// sebelum terikat klinik (MissingOrganizationContext saat absen).
	StaffUserID     uuid.UUID  `gorm:"type:uuid;not null;index;column:staff_user_id" json:"staff_user_id"`
	StaffOrgID      *uuid.UUID `gorm:"type:uuid;index;column:staff_org_id" json:"staff_org_id,omitempty"`
	StaffLocationID *uuid.UUID `gorm:"type:uuid;column:staff_location_id" json:"staff_location_id,omitempty"`

	// Identitas
	StaffFullName string  `gorm:"type:varchar(150);not null;column:staff_full_name" json:"staff_full_name"`
	StaffEmail    string  `gorm:"type:varchar(255);not null;index;column:staff_email" json:"staff_email"`
	StaffPhone    *string `gorm:"type:varchar(30);column:staff_phone" json:"staff_phone,omitempty"`
	StaffPhotoURL *string `gorm:"column:staff_photo_url" json:"staff_photo_url,omitempty"`

	// Profesi
	StaffJobTitle    *string        `gorm:"type:varchar(100);column:staff_job_title" json:"staff_job_title,omitempty"`
	StaffSpecialties pq.StringArray `gorm:"type:text[];column:staff_specialties" json:"staff_specialties,omitempty"`
	StaffHourlyRate  float64        `gorm:"not null;default:0;column:staff_hourly_rate" json:"staff_hourly_rate"`

	// Lisensi profesi (STR/SIP). Kosong = profesi tanpa lisensi.
	StaffLicenseNumber      *string    `gorm:"type:varchar(64);column:staff_license_number" json:"staff_license_number,omitempty"`
	StaffLicenseType        *string    `gorm:"type:varchar(32);column:staff_license_type" json:"staff_license_type,omitempty"`
	StaffLicenseExpiry      *time.Time `gorm:"type:date;column:staff_license_expiry" json:"staff_license_expiry,omitempty"`
	StaffLicenseDocumentURL *string    `gorm:"column:staff_license_document_url" json:"staff_license_document_url,omitempty"`

	// Onboarding
	StaffStatus          StaffStatus `gorm:"type:varchar(20);not null;default:'pending';column:staff_status" json:"staff_status"`
	StaffApprovedAt      *time.Time  `gorm:"column:staff_approved_at" json:"staff_approved_at,omitempty"`
	StaffRejectionReason *string     `gorm:"column:staff_rejection_reason" json:"staff_rejection_reason,omitempty"`

	// Audit
	StaffCreatedAt time.Time      `gorm:"column:staff_created_at;autoCreateTime" json:"staff_created_at"`
	StaffUpdatedAt *time.Time     `gorm:"column:staff_updated_at;autoUpdateTime" json:"staff_updated_at,omitempty"`
	StaffDeletedAt gorm.DeletedAt `gorm:"column:staff_deleted_at;index" json:"staff_deleted_at,omitempty"`
}

func (StaffModel) TableName() string { return "staffs" }

// LicenseExpired: lisensi ada tanggal kadaluarsanya dan sudah lewat.
// Staff tanpa lisensi (expiry nil) dianggap tidak kadaluarsa.
func (m *StaffModel) LicenseExpired(now time.Time) bool {
	if m.StaffLicenseExpiry == nil {
		return false
	}
	return m.StaffLicenseExpiry.Before(now)
}
