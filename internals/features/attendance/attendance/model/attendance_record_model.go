// internals/features/attendance/attendance/model/attendance_record_model.go
package model

import (
	"database/sql/driver"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/*
Status kehadiran harian (sesuai ENUM di DB):
- "present"  : clock-in dan clock-out lengkap
- "partial"  : clock-in ada, clock-out tidak (hari sudah lewat)
- "absent"   : hari kerja terjadwal tanpa record
- "on_leave" : tercover cuti yang di-approve
*/
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusPartial AttendanceStatus = "partial"
	StatusAbsent  AttendanceStatus = "absent"
	StatusOnLeave AttendanceStatus = "on_leave"
)

func (s *AttendanceStatus) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = AttendanceStatus(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*s = AttendanceStatus(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*s = ""
	}
	return nil
}
func (s AttendanceStatus) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(s))), nil
}

// BreakInterval: satu interval istirahat dalam sehari.
// EndTime nil = istirahat masih berjalan.
type BreakInterval struct {
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
}

// AttendanceRecordModel: satu baris per (org, staff, tanggal lokal).
// Breaks disimpan sebagai list JSON di baris yang sama supaya setiap
// transisi tetap satu update atomik per record.
type AttendanceRecordModel struct {
	AttendanceRecordID      uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_record_id" json:"attendance_record_id"`
	AttendanceRecordOrgID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_attendance_org_staff_date,unique;column:attendance_record_org_id" json:"attendance_record_org_id"`
	AttendanceRecordStaffID uuid.UUID  `gorm:"type:uuid;not null;index:idx_attendance_org_staff_date,unique;column:attendance_record_staff_id" json:"attendance_record_staff_id"`
	AttendanceRecordDate    time.Time  `gorm:"type:date;not null;index:idx_attendance_org_staff_date,unique;column:attendance_record_date" json:"attendance_record_date"`
	AttendanceRecordLocationID *uuid.UUID `gorm:"type:uuid;column:attendance_record_location_id" json:"attendance_record_location_id,omitempty"`

	AttendanceRecordClockIn  *time.Time `gorm:"column:attendance_record_clock_in" json:"attendance_record_clock_in,omitempty"`
	AttendanceRecordClockOut *time.Time `gorm:"column:attendance_record_clock_out" json:"attendance_record_clock_out,omitempty"`

	// Maksimal satu interval lunch per hari
	AttendanceRecordLunchStart           *time.Time `gorm:"column:attendance_record_lunch_start" json:"attendance_record_lunch_start,omitempty"`
	AttendanceRecordLunchEnd             *time.Time `gorm:"column:attendance_record_lunch_end" json:"attendance_record_lunch_end,omitempty"`
	AttendanceRecordLunchDurationMinutes *int       `gorm:"column:attendance_record_lunch_duration_minutes" json:"attendance_record_lunch_duration_minutes,omitempty"`

	AttendanceRecordBreaks     datatypes.JSONType[[]BreakInterval] `gorm:"type:jsonb;column:attendance_record_breaks" json:"attendance_record_breaks"`
	AttendanceRecordBreakCount int                                 `gorm:"not null;default:0;column:attendance_record_break_count" json:"attendance_record_break_count"`

	AttendanceRecordIsOnLunch bool `gorm:"not null;default:false;column:attendance_record_is_on_lunch" json:"attendance_record_is_on_lunch"`
	AttendanceRecordIsOnBreak bool `gorm:"not null;default:false;column:attendance_record_is_on_break" json:"attendance_record_is_on_break"`

	// Jam kerja final (desimal), diisi saat clock-out
	AttendanceRecordTotalHours *float64         `gorm:"type:decimal(6,2);column:attendance_record_total_hours" json:"attendance_record_total_hours,omitempty"`
	AttendanceRecordStatus     AttendanceStatus `gorm:"type:varchar(20);not null;default:'partial';column:attendance_record_status" json:"attendance_record_status"`

	AttendanceRecordCreatedAt time.Time      `gorm:"column:attendance_record_created_at;autoCreateTime" json:"attendance_record_created_at"`
	AttendanceRecordUpdatedAt *time.Time     `gorm:"column:attendance_record_updated_at;autoUpdateTime" json:"attendance_record_updated_at,omitempty"`
	AttendanceRecordDeletedAt gorm.DeletedAt `gorm:"column:attendance_record_deleted_at;index" json:"attendance_record_deleted_at,omitempty"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }

// IsOpen: shift masih berjalan (sudah clock-in, belum clock-out)
func (m *AttendanceRecordModel) IsOpen() bool {
	return m.AttendanceRecordClockIn != nil && m.AttendanceRecordClockOut == nil
}

// Breaks mengembalikan salinan list break dari kolom JSON
func (m *AttendanceRecordModel) Breaks() []BreakInterval {
	return m.AttendanceRecordBreaks.Data()
}

// SetBreaks menulis ulang kolom JSON break
func (m *AttendanceRecordModel) SetBreaks(b []BreakInterval) {
	m.AttendanceRecordBreaks = datatypes.NewJSONType(b)
}

// OpenBreakIndex: index break yang belum selesai, -1 kalau tidak ada
func (m *AttendanceRecordModel) OpenBreakIndex() int {
	for i, b := range m.Breaks() {
		if b.EndTime == nil {
			return i
		}
	}
	return -1
}
