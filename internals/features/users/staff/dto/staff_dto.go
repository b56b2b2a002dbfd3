// internals/features/users/staff/dto/staff_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	stmodel "klinikku_backend/internals/features/users/staff/model"
)

/* ===================== REQUEST ===================== */

// JoinRequest: akun mengajukan bergabung ke satu klinik. Status awal pending.
type JoinRequest struct {
	StaffOrgID      uuid.UUID  `json:"staff_org_id" validate:"required"`
	StaffLocationID *uuid.UUID `json:"staff_location_id,omitempty"`

	StaffFullName string   `json:"staff_full_name" validate:"required,min=3,max=150"`
	StaffPhone    *string  `json:"staff_phone,omitempty" validate:"omitempty,max=30"`
	StaffJobTitle *string  `json:"staff_job_title,omitempty" validate:"omitempty,max=100"`
	Specialties   []string `json:"staff_specialties,omitempty" validate:"omitempty,dive,max=80"`

	StaffLicenseNumber *string `json:"staff_license_number,omitempty" validate:"omitempty,max=64"`
	StaffLicenseType   *string `json:"staff_license_type,omitempty" validate:"omitempty,oneof=STR SIP SIPP other"`
	StaffLicenseExpiry *string `json:"staff_license_expiry,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateStaffRequest struct {
	StaffFullName   *string  `json:"staff_full_name,omitempty" validate:"omitempty,min=3,max=150"`
	StaffPhone      *string  `json:"staff_phone,omitempty" validate:"omitempty,max=30"`
	StaffJobTitle   *string  `json:"staff_job_title,omitempty" validate:"omitempty,max=100"`
	Specialties     []string `json:"staff_specialties,omitempty" validate:"omitempty,dive,max=80"`
	StaffHourlyRate *float64 `json:"staff_hourly_rate,omitempty" validate:"omitempty,gte=0"`

	StaffLicenseNumber *string `json:"staff_license_number,omitempty" validate:"omitempty,max=64"`
	StaffLicenseType   *string `json:"staff_license_type,omitempty" validate:"omitempty,oneof=STR SIP SIPP other"`
	StaffLicenseExpiry *string `json:"staff_license_expiry,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type RejectStaffRequest struct {
	Reason string `json:"reason" validate:"required,min=3,max=500"`
}

/* ===================== RESPONSE ===================== */

type StaffResponse struct {
	StaffID         uuid.UUID  `json:"staff_id"`
	StaffUserID     uuid.UUID  `json:"staff_user_id"`
	StaffOrgID      *uuid.UUID `json:"staff_org_id,omitempty"`
	StaffLocationID *uuid.UUID `json:"staff_location_id,omitempty"`

	StaffFullName string   `json:"staff_full_name"`
	StaffEmail    string   `json:"staff_email"`
	StaffPhone    *string  `json:"staff_phone,omitempty"`
	StaffPhotoURL *string  `json:"staff_photo_url,omitempty"`
	StaffJobTitle *string  `json:"staff_job_title,omitempty"`
	Specialties   []string `json:"staff_specialties,omitempty"`

	StaffLicenseNumber      *string    `json:"staff_license_number,omitempty"`
	StaffLicenseType        *string    `json:"staff_license_type,omitempty"`
	StaffLicenseExpiry      *time.Time `json:"staff_license_expiry,omitempty"`
	StaffLicenseDocumentURL *string    `json:"staff_license_document_url,omitempty"`
	LicenseExpired          bool       `json:"license_expired"`

	StaffStatus          stmodel.StaffStatus `json:"staff_status"`
	StaffApprovedAt      *time.Time          `json:"staff_approved_at,omitempty"`
	StaffRejectionReason *string             `json:"staff_rejection_reason,omitempty"`
	StaffCreatedAt       time.Time           `json:"staff_created_at"`
}

func NewStaffResponse(m *stmodel.StaffModel, now time.Time) StaffResponse {
	return StaffResponse{
		StaffID:                 m.StaffID,
		StaffUserID:             m.StaffUserID,
		StaffOrgID:              m.StaffOrgID,
		StaffLocationID:         m.StaffLocationID,
		StaffFullName:           m.StaffFullName,
		StaffEmail:              m.StaffEmail,
		StaffPhone:              m.StaffPhone,
		StaffPhotoURL:           m.StaffPhotoURL,
		StaffJobTitle:           m.StaffJobTitle,
		Specialties:             m.StaffSpecialties,
		StaffLicenseNumber:      m.StaffLicenseNumber,
		StaffLicenseType:        m.StaffLicenseType,
		StaffLicenseExpiry:      m.StaffLicenseExpiry,
		StaffLicenseDocumentURL: m.StaffLicenseDocumentURL,
		LicenseExpired:          m.LicenseExpired(now),
		StaffStatus:             m.StaffStatus,
		StaffApprovedAt:         m.StaffApprovedAt,
		StaffRejectionReason:    m.StaffRejectionReason,
		StaffCreatedAt:          m.StaffCreatedAt,
	}
}
