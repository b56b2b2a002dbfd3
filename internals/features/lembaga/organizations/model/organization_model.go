// internals/features/lembaga/organizations/model/organization_model.go
package model

import (
	"database/sql/driver"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/*
Status verifikasi organisasi (klinik):
- "pending"  : baru dibuat, menunggu verifikasi platform
- "approved" : terverifikasi, tampil di listing publik
- "rejected" : ditolak verifikator
*/
type OrgVerificationStatus string

const (
	OrgVerificationPending  OrgVerificationStatus = "pending"
	OrgVerificationApproved OrgVerificationStatus = "approved"
	OrgVerificationRejected OrgVerificationStatus = "rejected"
)

func (s *OrgVerificationStatus) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = OrgVerificationStatus(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*s = OrgVerificationStatus(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*s = ""
	}
	return nil
}
func (s OrgVerificationStatus) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(s))), nil
}

type OrganizationModel struct {
	OrganizationID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:organization_id" json:"organization_id"`

	// Akun owner yang membuat klinik
	OrganizationOwnerUserID uuid.UUID `gorm:"type:uuid;not null;index;column:organization_owner_user_id" json:"organization_owner_user_id"`

	OrganizationName    string  `gorm:"type:varchar(150);not null;column:organization_name" json:"organization_name"`
	OrganizationSlug    string  `gorm:"type:varchar(160);not null;uniqueIndex;column:organization_slug" json:"organization_slug"`
	OrganizationAddress *string `gorm:"type:text;column:organization_address" json:"organization_address,omitempty"`
	OrganizationCity    *string `gorm:"type:varchar(100);column:organization_city" json:"organization_city,omitempty"`
	OrganizationPhone   *string `gorm:"type:varchar(30);column:organization_phone" json:"organization_phone,omitempty"`
	OrganizationLogoURL *string `gorm:"column:organization_logo_url" json:"organization_logo_url,omitempty"`

	OrganizationVerificationStatus OrgVerificationStatus `gorm:"type:varchar(20);not null;default:'pending';column:organization_verification_status" json:"organization_verification_status"`
	OrganizationVerifiedAt         *time.Time            `gorm:"column:organization_verified_at" json:"organization_verified_at,omitempty"`
	OrganizationVerificationNotes  *string               `gorm:"type:text;column:organization_verification_notes" json:"organization_verification_notes,omitempty"`

	OrganizationCreatedAt time.Time      `gorm:"column:organization_created_at;autoCreateTime" json:"organization_created_at"`
	OrganizationUpdatedAt *time.Time     `gorm:"column:organization_updated_at;autoUpdateTime" json:"organization_updated_at,omitempty"`
	OrganizationDeletedAt gorm.DeletedAt `gorm:"column:organization_deleted_at;index" json:"organization_deleted_at,omitempty"`
}

func (OrganizationModel) TableName() string { return "organizations" }
