// internals/features/leave/leave_requests/model/leave_request_model.go
package model

import (
	"database/sql/driver"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
	LeaveStatusCanceled LeaveStatus = "canceled"
)

func (s *LeaveStatus) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = LeaveStatus(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*s = LeaveStatus(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*s = ""
	}
	return nil
}
func (s LeaveStatus) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(s))), nil
}

type LeaveType string

const (
	LeaveTypeAnnual LeaveType = "annual"
	LeaveTypeSick   LeaveType = "sick"
	LeaveTypeUnpaid LeaveType = "unpaid"
	LeaveTypeOther  LeaveType = "other"
)

type LeaveRequestModel struct {
	LeaveRequestID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:leave_request_id" json:"leave_request_id"`
	LeaveRequestOrgID   uuid.UUID `gorm:"type:uuid;not null;index;column:leave_request_org_id" json:"leave_request_org_id"`
	LeaveRequestStaffID uuid.UUID `gorm:"type:uuid;not null;index;column:leave_request_staff_id" json:"leave_request_staff_id"`

	LeaveRequestType      LeaveType `gorm:"type:varchar(20);not null;default:'annual';column:leave_request_type" json:"leave_request_type"`
	LeaveRequestStartDate time.Time `gorm:"type:date;not null;column:leave_request_start_date" json:"leave_request_start_date"`
	LeaveRequestEndDate   time.Time `gorm:"type:date;not null;column:leave_request_end_date" json:"leave_request_end_date"`
	LeaveRequestReason    *string   `gorm:"column:leave_request_reason" json:"leave_request_reason,omitempty"`

	LeaveRequestStatus     LeaveStatus `gorm:"type:varchar(20);not null;default:'pending';column:leave_request_status" json:"leave_request_status"`
	LeaveRequestReviewedBy *uuid.UUID  `gorm:"type:uuid;column:leave_request_reviewed_by" json:"leave_request_reviewed_by,omitempty"`
	LeaveRequestReviewedAt *time.Time  `gorm:"column:leave_request_reviewed_at" json:"leave_request_reviewed_at,omitempty"`
	LeaveRequestReviewNote *string     `gorm:"column:leave_request_review_note" json:"leave_request_review_note,omitempty"`

	LeaveRequestCreatedAt time.Time      `gorm:"column:leave_request_created_at;autoCreateTime" json:"leave_request_created_at"`
	LeaveRequestUpdatedAt *time.Time     `gorm:"column:leave_request_updated_at;autoUpdateTime" json:"leave_request_updated_at,omitempty"`
	LeaveRequestDeletedAt gorm.DeletedAt `gorm:"column:leave_request_deleted_at;index" json:"leave_request_deleted_at,omitempty"`
}

func (LeaveRequestModel) TableName() string { return "leave_requests" }
