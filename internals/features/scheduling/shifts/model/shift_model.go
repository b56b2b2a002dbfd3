// internals/features/scheduling/shifts/model/shift_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftModel: jadwal dinas bertanggal per staff.
// Hari dengan shift dianggap "expected working day" saat klasifikasi Absent.
type ShiftModel struct {
	ShiftID      uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:shift_id" json:"shift_id"`
	ShiftOrgID   uuid.UUID  `gorm:"type:uuid;not null;index;column:shift_org_id" json:"shift_org_id"`
	ShiftStaffID uuid.UUID  `gorm:"type:uuid;not null;index:idx_shift_staff_date;column:shift_staff_id" json:"shift_staff_id"`
	ShiftLocationID *uuid.UUID `gorm:"type:uuid;column:shift_location_id" json:"shift_location_id,omitempty"`

	ShiftDate      time.Time `gorm:"type:date;not null;index:idx_shift_staff_date;column:shift_date" json:"shift_date"`
	ShiftStartTime string    `gorm:"type:varchar(5);not null;column:shift_start_time" json:"shift_start_time"` // "08:00"
	ShiftEndTime   string    `gorm:"type:varchar(5);not null;column:shift_end_time" json:"shift_end_time"`   // "16:00"
	ShiftNote      *string   `gorm:"column:shift_note" json:"shift_note,omitempty"`

	ShiftCreatedAt time.Time      `gorm:"column:shift_created_at;autoCreateTime" json:"shift_created_at"`
	ShiftUpdatedAt *time.Time     `gorm:"column:shift_updated_at;autoUpdateTime" json:"shift_updated_at,omitempty"`
	ShiftDeletedAt gorm.DeletedAt `gorm:"column:shift_deleted_at;index" json:"shift_deleted_at,omitempty"`
}

func (ShiftModel) TableName() string { return "shifts" }
