// internals/features/attendance/attendance/dto/attendance_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	amodel "klinikku_backend/internals/features/attendance/attendance/model"
	"klinikku_backend/internals/features/attendance/attendance/service"
)

/* ===================== QUERIES ===================== */

type ReportQuery struct {
	StaffID *uuid.UUID `query:"staff_id"`
	Start   string     `query:"start" validate:"required,datetime=2006-01-02"`
	End     string     `query:"end" validate:"required,datetime=2006-01-02"`
}

/* ===================== RESPONSES ===================== */

type BreakIntervalResponse struct {
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
}

type AttendanceRecordResponse struct {
	AttendanceRecordID      uuid.UUID  `json:"attendance_record_id"`
	AttendanceRecordStaffID uuid.UUID  `json:"attendance_record_staff_id"`
	AttendanceRecordDate    string     `json:"attendance_record_date"`
	AttendanceRecordLocationID *uuid.UUID `json:"attendance_record_location_id,omitempty"`

	ClockIn  *time.Time `json:"clock_in,omitempty"`
	ClockOut *time.Time `json:"clock_out,omitempty"`

	LunchStart           *time.Time `json:"lunch_start,omitempty"`
	LunchEnd             *time.Time `json:"lunch_end,omitempty"`
	LunchDurationMinutes *int       `json:"lunch_duration_minutes,omitempty"`

	Breaks     []BreakIntervalResponse `json:"breaks"`
	BreakCount int                     `json:"break_count"`

	IsOnLunch bool `json:"is_on_lunch"`
	IsOnBreak bool `json:"is_on_break"`

	TotalHours *float64                `json:"total_hours,omitempty"`
	Status     amodel.AttendanceStatus `json:"status"`

	// Durasi kerja berjalan (detik) untuk tampilan timer live
	LiveDurationSeconds int64 `json:"live_duration_seconds"`
}

func NewAttendanceRecordResponse(m *amodel.AttendanceRecordModel, now time.Time) *AttendanceRecordResponse {
	if m == nil {
		return nil
	}

	breaks := make([]BreakIntervalResponse, 0, len(m.Breaks()))
	for _, b := range m.Breaks() {
		breaks = append(breaks, BreakIntervalResponse{
			StartTime:       b.StartTime,
			EndTime:         b.EndTime,
			DurationMinutes: b.DurationMinutes,
		})
	}

	return &AttendanceRecordResponse{
		AttendanceRecordID:         m.AttendanceRecordID,
		AttendanceRecordStaffID:    m.AttendanceRecordStaffID,
		AttendanceRecordDate:       m.AttendanceRecordDate.Format("2006-01-02"),
		AttendanceRecordLocationID: m.AttendanceRecordLocationID,

		ClockIn:  m.AttendanceRecordClockIn,
		ClockOut: m.AttendanceRecordClockOut,

		LunchStart:           m.AttendanceRecordLunchStart,
		LunchEnd:             m.AttendanceRecordLunchEnd,
		LunchDurationMinutes: m.AttendanceRecordLunchDurationMinutes,

		Breaks:     breaks,
		BreakCount: m.AttendanceRecordBreakCount,

		IsOnLunch: m.AttendanceRecordIsOnLunch,
		IsOnBreak: m.AttendanceRecordIsOnBreak,

		TotalHours: m.AttendanceRecordTotalHours,
		Status:     m.AttendanceRecordStatus,

		LiveDurationSeconds: int64(service.ComputeLiveDuration(m, now).Seconds()),
	}
}
