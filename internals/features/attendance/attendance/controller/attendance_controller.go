// internals/features/attendance/attendance/controller/attendance_controller.go
package controller

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	aDTO "klinikku_backend/internals/features/attendance/attendance/dto"
	amodel "klinikku_backend/internals/features/attendance/attendance/model"
	aRepo "klinikku_backend/internals/features/attendance/attendance/repository"
	"klinikku_backend/internals/features/attendance/attendance/service"
	sRepo "klinikku_backend/internals/features/lembaga/org_settings/repository"
	lRepo "klinikku_backend/internals/features/leave/leave_requests/repository"
	shRepo "klinikku_backend/internals/features/scheduling/shifts/repository"
	stRepo "klinikku_backend/internals/features/users/staff/repository"
	helper "klinikku_backend/internals/helpers"
	helperAuth "klinikku_backend/internals/helpers/auth"
	"klinikku_backend/internals/helpers/dbtime"
)

var validate = validator.New()

type AttendanceController struct {
	DB       *gorm.DB
	Engine   *service.AttendanceEngine
	Records  *aRepo.AttendanceRepository
	Settings *sRepo.OrgSettingRepository
}

// NewAttendanceController merakit engine dengan repository GORM.
// audit boleh nil (trail nonaktif).
func NewAttendanceController(db *gorm.DB, audit service.AuditSink) *AttendanceController {
	records := aRepo.NewAttendanceRepository(db)
	settings := sRepo.NewOrgSettingRepository(db)

	engine := &service.AttendanceEngine{
		Records:  records,
		Settings: settings,
		Staff:    stRepo.NewStaffRepository(db),
		Leaves:   lRepo.NewLeaveRepository(db),
		Shifts:   shRepo.NewShiftRepository(db),
		Audit:    audit,
	}

	return &AttendanceController{
		DB:       db,
		Engine:   engine,
		Records:  records,
		Settings: settings,
	}
}

/* ===================== STAFF HANDLERS ===================== */

// POST /u/attendance/clock-in
func (h *AttendanceController) ClockIn(c *fiber.Ctx) error {
	staffID, err := helperAuth.GetStaffUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	rec, err := h.Engine.ClockIn(c.UserContext(), staffID)
	if err != nil {
		return helper.Error(c, service.StatusFor(err), err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Clock-in berhasil",
		aDTO.NewAttendanceRecordResponse(rec, time.Now().UTC()))
}

// POST /u/attendance/clock-out
func (h *AttendanceController) ClockOut(c *fiber.Ctx) error {
	return h.transition(c, service.ErrNotClockedIn, h.Engine.ClockOut, "Clock-out berhasil")
}

// POST /u/attendance/lunch/start
func (h *AttendanceController) StartLunch(c *fiber.Ctx) error {
	return h.transition(c, service.ErrNotClockedIn, h.Engine.StartLunch, "Lunch dimulai")
}

// POST /u/attendance/lunch/end
func (h *AttendanceController) EndLunch(c *fiber.Ctx) error {
	return h.transition(c, service.ErrNotOnLunch, h.Engine.EndLunch, "Lunch selesai")
}

// POST /u/attendance/break/start
func (h *AttendanceController) StartBreak(c *fiber.Ctx) error {
	return h.transition(c, service.ErrNotClockedIn, h.Engine.StartBreak, "Break dimulai")
}

// POST /u/attendance/break/end
func (h *AttendanceController) EndBreak(c *fiber.Ctx) error {
	return h.transition(c, service.ErrNotOnBreak, h.Engine.EndBreak, "Break selesai")
}

// transition: resolve record terbuka milik staff lalu jalankan aksi engine.
// noOpenErr dikembalikan kalau tidak ada shift berjalan (mis. NotClockedIn).
func (h *AttendanceController) transition(
	c *fiber.Ctx,
	noOpenErr error,
	op func(ctx context.Context, orgID, recordID uuid.UUID) (*amodel.AttendanceRecordModel, error),
	okMsg string,
) error {
	staffID, err := helperAuth.GetStaffUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	orgID, err := helperAuth.GetOrgUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	open, err := h.Records.GetOpenForStaff(c.UserContext(), orgID, staffID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil record absensi")
	}
	if open == nil {
		return helper.Error(c, service.StatusFor(noOpenErr), noOpenErr.Error())
	}

	rec, err := op(c.UserContext(), orgID, open.AttendanceRecordID)
	if err != nil {
		return helper.Error(c, service.StatusFor(err), err.Error())
	}
	return helper.Success(c, okMsg, aDTO.NewAttendanceRecordResponse(rec, time.Now().UTC()))
}

// GET /u/attendance/today — record hari ini + timer live
func (h *AttendanceController) Today(c *fiber.Ctx) error {
	staffID, err := helperAuth.GetStaffUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	orgID, err := helperAuth.GetOrgUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	now := time.Now().UTC()
	today := dbtime.DateOnly(now, dbtime.GetOrgLocation(c))
	rec, err := h.Records.GetForDate(c.UserContext(), orgID, staffID, today)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil record absensi")
	}

	return helper.Success(c, "OK", aDTO.NewAttendanceRecordResponse(rec, now))
}

// GET /u/attendance/history?start=&end=
func (h *AttendanceController) MyHistory(c *fiber.Ctx) error {
	staffID, err := helperAuth.GetStaffUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return h.report(c, &staffID)
}

/* ===================== ADMIN HANDLERS ===================== */

// GET /a/attendance?start=&end=&staff_id=
func (h *AttendanceController) Report(c *fiber.Ctx) error {
	var staffID *uuid.UUID
	if v := c.Query("staff_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "staff_id tidak valid")
		}
		staffID = &id
	}
	return h.report(c, staffID)
}

func (h *AttendanceController) report(c *fiber.Ctx, staffID *uuid.UUID) error {
	orgID, err := helperAuth.GetOrgUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := aDTO.ReportQuery{Start: c.Query("start"), End: c.Query("end")}
	if err := validate.Struct(q); err != nil {
		return helper.ValidationError(c, err)
	}
	start, _ := time.Parse("2006-01-02", q.Start)
	end, _ := time.Parse("2006-01-02", q.End)
	if end.Before(start) {
		return helper.Error(c, fiber.StatusBadRequest, "Rentang tanggal tidak valid")
	}

	rows, err := h.Records.QueryByDateRange(c.UserContext(), orgID, staffID, start, end)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data absensi")
	}

	now := time.Now().UTC()
	items := make([]*aDTO.AttendanceRecordResponse, 0, len(rows))
	for i := range rows {
		items = append(items, aDTO.NewAttendanceRecordResponse(&rows[i], now))
	}
	return helper.Success(c, "OK", items)
}
