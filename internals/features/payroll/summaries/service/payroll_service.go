// internals/features/payroll/summaries/service/payroll_service.go
package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	amodel "klinikku_backend/internals/features/attendance/attendance/model"
	smodel "klinikku_backend/internals/features/lembaga/org_settings/model"
	stmodel "klinikku_backend/internals/features/users/staff/model"
)

// AttendanceSource: baris absensi satu periode (diimplementasikan AttendanceRepository)
type AttendanceSource interface {
	QueryByDateRange(ctx context.Context, orgID uuid.UUID, staffID *uuid.UUID, start, end time.Time) ([]amodel.AttendanceRecordModel, error)
}

type StaffSource interface {
	ListByOrg(ctx context.Context, orgID uuid.UUID, status *stmodel.StaffStatus, limit, offset int) ([]stmodel.StaffModel, int64, error)
}

// StaffSummary: rekap satu staff untuk satu periode payroll
type StaffSummary struct {
	StaffID       uuid.UUID `json:"staff_id"`
	StaffFullName string    `json:"staff_full_name"`
	StaffJobTitle string    `json:"staff_job_title"`

	PresentDays int `json:"present_days"`
	PartialDays int `json:"partial_days"`
	AbsentDays  int `json:"absent_days"`
	LeaveDays   int `json:"leave_days"`

	TotalHours    float64 `json:"total_hours"`
	RegularHours  float64 `json:"regular_hours"`
	OvertimeHours float64 `json:"overtime_hours"`

	HourlyRate float64 `json:"hourly_rate"`
	GrossPay   float64 `json:"gross_pay"`
}

type PeriodSummary struct {
	OrgID       uuid.UUID      `json:"org_id"`
	PeriodStart time.Time      `json:"period_start"`
	PeriodEnd   time.Time      `json:"period_end"`
	Staff       []StaffSummary `json:"staff"`
}

type PayrollService struct {
	Attendance AttendanceSource
	Staff      StaffSource
}

// BuildPeriodSummary merekap jam kerja semua staff aktif dalam satu periode.
// Lembur dihitung per hari: jam di atas ambang harian organisasi.
func (s *PayrollService) BuildPeriodSummary(ctx context.Context, orgID uuid.UUID, settings *smodel.OrgSettingModel, start, end time.Time) (*PeriodSummary, error) {
	active := stmodel.StaffStatusActive
	staffs, _, err := s.Staff.ListByOrg(ctx, orgID, &active, 1000, 0)
	if err != nil {
		return nil, err
	}

	rows, err := s.Attendance.QueryByDateRange(ctx, orgID, nil, start, end)
	if err != nil {
		return nil, err
	}

	byStaff := make(map[uuid.UUID][]amodel.AttendanceRecordModel)
	for _, r := range rows {
		byStaff[r.AttendanceRecordStaffID] = append(byStaff[r.AttendanceRecordStaffID], r)
	}

	out := &PeriodSummary{OrgID: orgID, PeriodStart: start, PeriodEnd: end}
	threshold := settings.OrgSettingOvertimeDailyThresholdHours
	for i := range staffs {
		st := &staffs[i]
		sum := StaffSummary{
			StaffID:       st.StaffID,
			StaffFullName: st.StaffFullName,
			HourlyRate:    st.StaffHourlyRate,
		}
		if st.StaffJobTitle != nil {
			sum.StaffJobTitle = *st.StaffJobTitle
		}

		for _, rec := range byStaff[st.StaffID] {
			switch rec.AttendanceRecordStatus {
			case amodel.StatusPresent:
				sum.PresentDays++
			case amodel.StatusPartial:
				sum.PartialDays++
			case amodel.StatusAbsent:
				sum.AbsentDays++
			case amodel.StatusOnLeave:
				sum.LeaveDays++
			}
			if rec.AttendanceRecordTotalHours == nil {
				continue
			}
			h := *rec.AttendanceRecordTotalHours
			sum.TotalHours += h
			if h > threshold {
				sum.OvertimeHours += h - threshold
				sum.RegularHours += threshold
			} else {
				sum.RegularHours += h
			}
		}

		sum.TotalHours = round2(sum.TotalHours)
		sum.RegularHours = round2(sum.RegularHours)
		sum.OvertimeHours = round2(sum.OvertimeHours)
		// Gross sederhana: lembur 1.5x. Format transfer bank di luar lingkup.
		sum.GrossPay = round2(sum.RegularHours*sum.HourlyRate + sum.OvertimeHours*sum.HourlyRate*1.5)

		out.Staff = append(out.Staff, sum)
	}
	return out, nil
}

// ExportXLSX menulis rekap ke workbook untuk diunduh admin
func (s *PayrollService) ExportXLSX(summary *PeriodSummary) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Rekap Payroll"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Nama", "Jabatan", "Hadir", "Parsial", "Absen", "Cuti",
		"Total Jam", "Jam Reguler", "Jam Lembur", "Tarif/Jam", "Gross"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, st := range summary.Staff {
		values := []any{st.StaffFullName, st.StaffJobTitle,
			st.PresentDays, st.PartialDays, st.AbsentDays, st.LeaveDays,
			st.TotalHours, st.RegularHours, st.OvertimeHours, st.HourlyRate, st.GrossPay}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	title := fmt.Sprintf("Periode %s s/d %s",
		summary.PeriodStart.Format("2006-01-02"), summary.PeriodEnd.Format("2006-01-02"))
	if err := f.SetCellValue(sheet, "M1", title); err != nil {
		return nil, err
	}
	return f, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
