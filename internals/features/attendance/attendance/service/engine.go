// internals/features/attendance/attendance/service/engine.go
package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	amodel "klinikku_backend/internals/features/attendance/attendance/model"
	smodel "klinikku_backend/internals/features/lembaga/org_settings/model"
	stmodel "klinikku_backend/internals/features/users/staff/model"
	"klinikku_backend/internals/helpers/clock"
	"klinikku_backend/internals/helpers/dbtime"
)

/* ===================== STORE CONTRACTS ===================== */

// RecordStore: penyimpanan record absensi. Get* mengembalikan (nil, nil)
// kalau record tidak ada — bukan error.
type RecordStore interface {
	GetForDate(ctx context.Context, orgID, staffID uuid.UUID, date time.Time) (*amodel.AttendanceRecordModel, error)
	GetByID(ctx context.Context, orgID, recordID uuid.UUID) (*amodel.AttendanceRecordModel, error)
	Create(ctx context.Context, rec *amodel.AttendanceRecordModel) error
	Update(ctx context.Context, rec *amodel.AttendanceRecordModel) error
}

type SettingsStore interface {
	Get(ctx context.Context, orgID uuid.UUID) (*smodel.OrgSettingModel, error)
}

type StaffStore interface {
	Get(ctx context.Context, staffID uuid.UUID) (*stmodel.StaffModel, error)
}

type LeaveStore interface {
	IsOnApprovedLeave(ctx context.Context, staffID uuid.UUID, date time.Time) (bool, error)
}

type ShiftStore interface {
	HasShiftOn(ctx context.Context, staffID uuid.UUID, date time.Time) (bool, error)
}

// AuditSink menerima jejak transisi (best-effort, tidak boleh menggagalkan aksi)
type AuditSink interface {
	Log(ctx context.Context, event AuditEvent)
}

type AuditEvent struct {
	OrgID    uuid.UUID `json:"org_id"`
	StaffID  uuid.UUID `json:"staff_id"`
	RecordID uuid.UUID `json:"record_id"`
	Action   string    `json:"action"`
	At       time.Time `json:"at"`
}

/* ===================== ENGINE ===================== */

// AttendanceEngine memvalidasi dan menerapkan satu transisi state per aksi
// pada record absensi harian. Semua precondition dicek sebelum mutasi;
// pelanggaran mengembalikan sentinel error dan record tidak berubah.
//
// State machine per (staff, hari):
//
//	[NoRecord] --ClockIn--> [Working]
//	[Working] --StartLunch--> [OnLunch] --EndLunch--> [Working]
//	[Working] --StartBreak--> [OnBreak] --EndBreak--> [Working]
//	[Working] --ClockOut--> [Closed]  (terminal)
type AttendanceEngine struct {
	Records  RecordStore
	Settings SettingsStore
	Staff    StaffStore
	Leaves   LeaveStore
	Shifts   ShiftStore
	Audit    AuditSink   // opsional
	Now      clock.Clock // nil = jam sistem
}

func (e *AttendanceEngine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return clock.Real()
}

// ClockIn membuka record hari ini untuk staff.
// Gagal: ErrAlreadyClockedIn, ErrRecordClosed, ErrLicenseExpired,
// ErrStaffNotActive, ErrMissingOrganizationContext.
func (e *AttendanceEngine) ClockIn(ctx context.Context, staffID uuid.UUID) (*amodel.AttendanceRecordModel, error) {
	st, err := e.Staff.Get(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if st == nil || st.StaffOrgID == nil {
		return nil, ErrMissingOrganizationContext
	}
	if st.StaffStatus != stmodel.StaffStatusActive {
		return nil, ErrStaffNotActive
	}

	now := e.now()
	if st.LicenseExpired(now) {
		return nil, ErrLicenseExpired
	}

	orgID := *st.StaffOrgID
	settings, err := e.Settings.Get(ctx, orgID)
	if err != nil {
		return nil, err
	}
	date := dbtime.DateOnly(now, settings.Location())

	existing, err := e.Records.GetForDate(ctx, orgID, staffID, date)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.IsOpen() {
			return nil, ErrAlreadyClockedIn
		}
		// Closed = terminal untuk hari itu
		return nil, ErrRecordClosed
	}

	rec := &amodel.AttendanceRecordModel{
		AttendanceRecordOrgID:      orgID,
		AttendanceRecordStaffID:    staffID,
		AttendanceRecordDate:       date,
		AttendanceRecordLocationID: st.StaffLocationID,
		AttendanceRecordClockIn:    &now,
		AttendanceRecordStatus:     amodel.StatusPartial,
	}
	rec.SetBreaks([]amodel.BreakInterval{})

	if err := e.Records.Create(ctx, rec); err != nil {
		return nil, err
	}
	e.audit(ctx, rec, "clock_in", now)
	return rec, nil
}

// ClockOut menutup shift dan menghitung total jam kerja.
// Fail-closed: lunch/break yang masih terbuka harus diakhiri dulu —
// tidak ada auto-close diam-diam yang membuang durasi istirahat.
func (e *AttendanceEngine) ClockOut(ctx context.Context, orgID, recordID uuid.UUID) (*amodel.AttendanceRecordModel, error) {
	rec, err := e.Records.GetByID(ctx, orgID, recordID)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.AttendanceRecordClockIn == nil || rec.AttendanceRecordClockOut != nil {
		return nil, ErrNotClockedIn
	}
	if rec.AttendanceRecordIsOnLunch || rec.AttendanceRecordIsOnBreak {
		return nil, ErrOpenLunchOrBreak
	}

	now := e.now()
	total := workedHours(rec, now)

	rec.AttendanceRecordClockOut = &now
	rec.AttendanceRecordTotalHours = &total
	rec.AttendanceRecordStatus = amodel.StatusPresent

	if err := e.Records.Update(ctx, rec); err != nil {
		return nil, err
	}
	e.audit(ctx, rec, "clock_out", now)
	return rec, nil
}

// StartLunch: maksimal satu interval lunch per hari
func (e *AttendanceEngine) StartLunch(ctx context.Context, orgID, recordID uuid.UUID) (*amodel.AttendanceRecordModel, error) {
	settings, err := e.Settings.Get(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if !settings.OrgSettingLunchEnabled {
		return nil, ErrLunchNotEnabled
	}

	rec, err := e.Records.GetByID(ctx, orgID, recordID)
	if err != nil {
		return nil, err
	}
	if rec == nil || !rec.IsOpen() {
		return nil, ErrNotClockedIn
	}
	if rec.AttendanceRecordIsOnLunch {
		return nil, ErrAlreadyOnLunch
	}
	if rec.AttendanceRecordIsOnBreak {
		return nil, ErrAlreadyOnBreak
	}
	if rec.AttendanceRecordLunchStart != nil {
		return nil, ErrLunchAlreadyUsed
	}

	now := e.now()
	rec.AttendanceRecordLunchStart = &now
	rec.AttendanceRecordIsOnLunch = true

	if err := e.Records.Update(ctx, rec); err != nil {
		return nil, err
	}
	e.audit(ctx, rec, "start_lunch", now)
	return rec, nil
}

func (e *AttendanceEngine) EndLunch(ctx context.Context, orgID, recordID uuid.UUID) (*amodel.AttendanceRecordModel, error) {
	rec, err := e.Records.GetByID(ctx, orgID, recordID)
	if err != nil {
		return nil, err
	}
	if rec == nil || !rec.AttendanceRecordIsOnLunch || rec.AttendanceRecordLunchStart == nil {
		return nil, ErrNotOnLunch
	}

	now := e.now()
	mins := roundMinutes(now.Sub(*rec.AttendanceRecordLunchStart))
	rec.AttendanceRecordLunchEnd = &now
	rec.AttendanceRecordLunchDurationMinutes = &mins
	rec.AttendanceRecordIsOnLunch = false

	if err := e.Records.Update(ctx, rec); err != nil {
		return nil, err
	}
	e.audit(ctx, rec, "end_lunch", now)
	return rec, nil
}

// StartBreak menambah interval break baru, dibatasi max_breaks_per_day
func (e *AttendanceEngine) StartBreak(ctx context.Context, orgID, recordID uuid.UUID) (*amodel.AttendanceRecordModel, error) {
	settings, err := e.Settings.Get(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if !settings.OrgSettingBreaksEnabled {
		return nil, ErrBreaksNotEnabled
	}

	rec, err := e.Records.GetByID(ctx, orgID, recordID)
	if err != nil {
		return nil, err
	}
	if rec == nil || !rec.IsOpen() {
		return nil, ErrNotClockedIn
	}
	if rec.AttendanceRecordIsOnLunch {
		return nil, ErrAlreadyOnLunch
	}
	if rec.AttendanceRecordIsOnBreak {
		return nil, ErrAlreadyOnBreak
	}
	if rec.AttendanceRecordBreakCount >= settings.OrgSettingMaxBreaksPerDay {
		return nil, ErrBreakLimitReached
	}

	now := e.now()
	breaks := append(rec.Breaks(), amodel.BreakInterval{StartTime: now})
	rec.SetBreaks(breaks)
	rec.AttendanceRecordBreakCount = len(breaks)
	rec.AttendanceRecordIsOnBreak = true

	if err := e.Records.Update(ctx, rec); err != nil {
		return nil, err
	}
	e.audit(ctx, rec, "start_break", now)
	return rec, nil
}

func (e *AttendanceEngine) EndBreak(ctx context.Context, orgID, recordID uuid.UUID) (*amodel.AttendanceRecordModel, error) {
	rec, err := e.Records.GetByID(ctx, orgID, recordID)
	if err != nil {
		return nil, err
	}
	if rec == nil || !rec.AttendanceRecordIsOnBreak {
		return nil, ErrNotOnBreak
	}
	idx := rec.OpenBreakIndex()
	if idx < 0 {
		return nil, ErrNotOnBreak
	}

	now := e.now()
	breaks := rec.Breaks()
	mins := roundMinutes(now.Sub(breaks[idx].StartTime))
	breaks[idx].EndTime = &now
	breaks[idx].DurationMinutes = &mins
	rec.SetBreaks(breaks)
	rec.AttendanceRecordIsOnBreak = false

	if err := e.Records.Update(ctx, rec); err != nil {
		return nil, err
	}
	e.audit(ctx, rec, "end_break", now)
	return rec, nil
}

// ClassifyStatus menentukan status harian untuk baris laporan historis.
// Urutan: record menang, lalu cuti, lalu absent untuk hari kerja terjadwal.
// Hari yang bukan hari kerja dan tanpa record mengembalikan status kosong.
func (e *AttendanceEngine) ClassifyStatus(ctx context.Context, staffID uuid.UUID, date time.Time, rec *amodel.AttendanceRecordModel, settings *smodel.OrgSettingModel) (amodel.AttendanceStatus, error) {
	if rec != nil {
		if rec.AttendanceRecordClockIn != nil && rec.AttendanceRecordClockOut != nil {
			return amodel.StatusPresent, nil
		}
		if rec.AttendanceRecordClockIn != nil {
			return amodel.StatusPartial, nil
		}
		// record auto-generate scheduler (absent/on_leave) sudah membawa status
		return rec.AttendanceRecordStatus, nil
	}

	onLeave, err := e.Leaves.IsOnApprovedLeave(ctx, staffID, date)
	if err != nil {
		return "", err
	}
	if onLeave {
		return amodel.StatusOnLeave, nil
	}

	expected := settings.IsWorkday(date.Weekday())
	if !expected && e.Shifts != nil {
		if has, err := e.Shifts.HasShiftOn(ctx, staffID, date); err == nil && has {
			expected = true
		}
	}
	if expected {
		return amodel.StatusAbsent, nil
	}
	return "", nil
}

func (e *AttendanceEngine) audit(ctx context.Context, rec *amodel.AttendanceRecordModel, action string, at time.Time) {
	if e.Audit == nil {
		return
	}
	e.Audit.Log(ctx, AuditEvent{
		OrgID:    rec.AttendanceRecordOrgID,
		StaffID:  rec.AttendanceRecordStaffID,
		RecordID: rec.AttendanceRecordID,
		Action:   action,
		At:       at,
	})
}

/* ===================== PURE HELPERS ===================== */

// ComputeLiveDuration: durasi kerja berjalan untuk tampilan live.
// Pure function — dipanggil dua kali dengan now sama hasilnya sama.
// Interval lunch/break yang masih terbuka membekukan timer pada saat
// interval dimulai (interval terbuka tidak dihitung sebagai waktu kerja).
func ComputeLiveDuration(rec *amodel.AttendanceRecordModel, now time.Time) time.Duration {
	if rec == nil || rec.AttendanceRecordClockIn == nil {
		return 0
	}

	end := now
	if rec.AttendanceRecordClockOut != nil && rec.AttendanceRecordClockOut.Before(end) {
		end = *rec.AttendanceRecordClockOut
	}
	// timer beku selama interval terbuka
	if rec.AttendanceRecordIsOnLunch && rec.AttendanceRecordLunchStart != nil && rec.AttendanceRecordLunchStart.Before(end) {
		end = *rec.AttendanceRecordLunchStart
	}
	if rec.AttendanceRecordIsOnBreak {
		if idx := rec.OpenBreakIndex(); idx >= 0 {
			if s := rec.Breaks()[idx].StartTime; s.Before(end) {
				end = s
			}
		}
	}

	d := end.Sub(*rec.AttendanceRecordClockIn) - closedIntervals(rec, end)
	if d < 0 {
		return 0
	}
	return d
}

// workedHours: jam kerja final desimal (2 digit), floor di nol
func workedHours(rec *amodel.AttendanceRecordModel, clockOut time.Time) float64 {
	d := clockOut.Sub(*rec.AttendanceRecordClockIn) - closedIntervals(rec, clockOut)
	if d < 0 {
		d = 0
	}
	return math.Round(d.Hours()*100) / 100
}

// closedIntervals menjumlah durasi lunch + break yang sudah selesai
// (dipotong pada limit bila end interval melewatinya)
func closedIntervals(rec *amodel.AttendanceRecordModel, limit time.Time) time.Duration {
	var sum time.Duration
	if rec.AttendanceRecordLunchStart != nil && rec.AttendanceRecordLunchEnd != nil {
		sum += intervalWithin(*rec.AttendanceRecordLunchStart, *rec.AttendanceRecordLunchEnd, limit)
	}
	for _, b := range rec.Breaks() {
		if b.EndTime != nil {
			sum += intervalWithin(b.StartTime, *b.EndTime, limit)
		}
	}
	return sum
}

func intervalWithin(start, end, limit time.Time) time.Duration {
	if end.After(limit) {
		end = limit
	}
	if end.Before(start) {
		return 0
	}
	return end.Sub(start)
}

func roundMinutes(d time.Duration) int {
	return int(math.Round(d.Minutes()))
}
