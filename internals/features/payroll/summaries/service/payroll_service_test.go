package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	amodel "klinikku_backend/internals/features/attendance/attendance/model"
	smodel "klinikku_backend/internals/features/lembaga/org_settings/model"
	stmodel "klinikku_backend/internals/features/users/staff/model"
)

type fakeAttendance struct{ rows []amodel.AttendanceRecordModel }

func (f *fakeAttendance) QueryByDateRange(_ context.Context, _ uuid.UUID, _ *uuid.UUID, _, _ time.Time) ([]amodel.AttendanceRecordModel, error) {
	return f.rows, nil
}

type fakeStaffList struct{ items []stmodel.StaffModel }

func (f *fakeStaffList) ListByOrg(_ context.Context, _ uuid.UUID, _ *stmodel.StaffStatus, _, _ int) ([]stmodel.StaffModel, int64, error) {
	return f.items, int64(len(f.items)), nil
}

func hoursPtr(v float64) *float64 { return &v }

func TestBuildPeriodSummaryOvertimeSplit(t *testing.T) {
	orgID := uuid.New()
	staffID := uuid.New()

	staff := stmodel.StaffModel{
		StaffID:         staffID,
		StaffOrgID:      &orgID,
		StaffFullName:   "Dokter Umum",
		StaffHourlyRate: 100,
		StaffStatus:     stmodel.StaffStatusActive,
	}

	// 3 hari: 8 jam pas, 10 jam (2 lembur), 7.5 jam
	rows := []amodel.AttendanceRecordModel{
		{AttendanceRecordStaffID: staffID, AttendanceRecordStatus: amodel.StatusPresent, AttendanceRecordTotalHours: hoursPtr(8)},
		{AttendanceRecordStaffID: staffID, AttendanceRecordStatus: amodel.StatusPresent, AttendanceRecordTotalHours: hoursPtr(10)},
		{AttendanceRecordStaffID: staffID, AttendanceRecordStatus: amodel.StatusPresent, AttendanceRecordTotalHours: hoursPtr(7.5)},
	}

	svc := &PayrollService{
		Attendance: &fakeAttendance{rows: rows},
		Staff:      &fakeStaffList{items: []stmodel.StaffModel{staff}},
	}

	settings := smodel.DefaultOrgSetting(orgID) // ambang lembur 8 jam/hari
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	sum, err := svc.BuildPeriodSummary(context.Background(), orgID, settings, start, end)
	if err != nil {
		t.Fatalf("BuildPeriodSummary: %v", err)
	}
	if len(sum.Staff) != 1 {
		t.Fatalf("expected 1 staff, got %d", len(sum.Staff))
	}

	st := sum.Staff[0]
	if st.PresentDays != 3 {
		t.Fatalf("present days = %d, expected 3", st.PresentDays)
	}
	if st.TotalHours != 25.5 {
		t.Fatalf("total hours = %v, expected 25.5", st.TotalHours)
	}
	if st.RegularHours != 23.5 {
		t.Fatalf("regular hours = %v, expected 23.5", st.RegularHours)
	}
	if st.OvertimeHours != 2 {
		t.Fatalf("overtime hours = %v, expected 2", st.OvertimeHours)
	}
	// 23.5*100 + 2*100*1.5 = 2650
	if st.GrossPay != 2650 {
		t.Fatalf("gross pay = %v, expected 2650", st.GrossPay)
	}
}

func TestBuildPeriodSummaryCountsStatuses(t *testing.T) {
	orgID := uuid.New()
	staffID := uuid.New()

	staff := stmodel.StaffModel{
		StaffID:       staffID,
		StaffOrgID:    &orgID,
		StaffFullName: "Perawat Jaga",
		StaffStatus:   stmodel.StaffStatusActive,
	}
	rows := []amodel.AttendanceRecordModel{
		{AttendanceRecordStaffID: staffID, AttendanceRecordStatus: amodel.StatusPartial, AttendanceRecordTotalHours: nil},
		{AttendanceRecordStaffID: staffID, AttendanceRecordStatus: amodel.StatusAbsent},
		{AttendanceRecordStaffID: staffID, AttendanceRecordStatus: amodel.StatusOnLeave},
	}

	svc := &PayrollService{
		Attendance: &fakeAttendance{rows: rows},
		Staff:      &fakeStaffList{items: []stmodel.StaffModel{staff}},
	}
	sum, err := svc.BuildPeriodSummary(context.Background(), orgID, smodel.DefaultOrgSetting(orgID),
		time.Now().AddDate(0, -1, 0), time.Now())
	if err != nil {
		t.Fatalf("BuildPeriodSummary: %v", err)
	}

	st := sum.Staff[0]
	if st.PartialDays != 1 || st.AbsentDays != 1 || st.LeaveDays != 1 {
		t.Fatalf("hitung status salah: %+v", st)
	}
	if st.TotalHours != 0 || st.GrossPay != 0 {
		t.Fatalf("jam tanpa clock-out tidak boleh dihitung: %+v", st)
	}
}

func TestExportXLSXHasHeaderAndRows(t *testing.T) {
	svc := &PayrollService{}
	sum := &PeriodSummary{
		PeriodStart: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		Staff: []StaffSummary{
			{StaffFullName: "Bidan Praktik", TotalHours: 160, RegularHours: 160, HourlyRate: 80, GrossPay: 12800},
		},
	}

	f, err := svc.ExportXLSX(sum)
	if err != nil {
		t.Fatalf("ExportXLSX: %v", err)
	}

	got, err := f.GetCellValue("Rekap Payroll", "A1")
	if err != nil || got != "Nama" {
		t.Fatalf("header A1 = %q (%v), expected Nama", got, err)
	}
	got, err = f.GetCellValue("Rekap Payroll", "A2")
	if err != nil || got != "Bidan Praktik" {
		t.Fatalf("A2 = %q (%v), expected nama staff", got, err)
	}
}
