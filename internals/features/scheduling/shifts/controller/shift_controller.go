// internals/features/scheduling/shifts/controller/shift_controller.go
package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"klinikku_backend/internals/features/scheduling/shifts/dto"
	shmodel "klinikku_backend/internals/features/scheduling/shifts/model"
	"klinikku_backend/internals/features/scheduling/shifts/repository"
	strepo "klinikku_backend/internals/features/users/staff/repository"
	helper "klinikku_backend/internals/helpers"
	helperauth "klinikku_backend/internals/helpers/auth"
)

var validate = validator.New()

type ShiftController struct {
	DB     *gorm.DB
	Shifts *repository.ShiftRepository
	Staff  *strepo.StaffRepository
}

func NewShiftController(db *gorm.DB) *ShiftController {
	return &ShiftController{
		DB:     db,
		Shifts: repository.NewShiftRepository(db),
		Staff:  strepo.NewStaffRepository(db),
	}
}

/* ===================== ADMIN ===================== */

// POST /api/a/shifts
func (ctl *ShiftController) Assign(c *fiber.Ctx) error {
	orgID, err := helperauth.GetOrgUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.AssignShiftRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.EndTime <= req.StartTime {
		return helper.Error(c, fiber.StatusBadRequest, "Jam selesai harus setelah jam mulai")
	}

	// Staff harus milik org yang sama
	st, err := ctl.Staff.Get(c.Context(), req.StaffID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal cek staff")
	}
	if st == nil || st.StaffOrgID == nil || *st.StaffOrgID != orgID {
		return helper.Error(c, fiber.StatusNotFound, "Staff tidak ditemukan")
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	m := shmodel.ShiftModel{
		ShiftOrgID:      orgID,
		ShiftStaffID:    req.StaffID,
		ShiftLocationID: req.LocationID,
		ShiftDate:       date,
		ShiftStartTime:  req.StartTime,
		ShiftEndTime:    req.EndTime,
		ShiftNote:       req.Note,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat shift")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Shift dibuat", m)
}

// GET /api/a/shifts?start=&end=&staff_id=
func (ctl *ShiftController) List(c *fiber.Ctx) error {
	orgID, err := helperauth.GetOrgUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var q dto.ShiftRangeQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := validate.Struct(q); err != nil {
		return helper.ValidationError(c, err)
	}

	var staffID *uuid.UUID
	if v := c.Query("staff_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "staff_id tidak valid")
		}
		staffID = &id
	}

	start, _ := time.Parse("2006-01-02", q.Start)
	end, _ := time.Parse("2006-01-02", q.End)
	rows, err := ctl.Shifts.ListByRange(c.Context(), orgID, staffID, start, end)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}
	return helper.Success(c, "OK", rows)
}

// PUT /api/a/shifts/:id
func (ctl *ShiftController) Update(c *fiber.Ctx) error {
	m, err := ctl.loadOrgShift(c)
	if err != nil {
		return err
	}

	var req dto.UpdateShiftRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.Date != nil {
		d, _ := time.Parse("2006-01-02", *req.Date)
		m.ShiftDate = d
	}
	if req.StartTime != nil {
		m.ShiftStartTime = *req.StartTime
	}
	if req.EndTime != nil {
		m.ShiftEndTime = *req.EndTime
	}
	if m.ShiftEndTime <= m.ShiftStartTime {
		return helper.Error(c, fiber.StatusBadRequest, "Jam selesai harus setelah jam mulai")
	}
	if req.LocationID != nil {
		m.ShiftLocationID = req.LocationID
	}
	if req.Note != nil {
		m.ShiftNote = req.Note
	}

	if err := ctl.DB.WithContext(c.Context()).Save(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan shift")
	}
	return helper.Success(c, "Shift diperbarui", m)
}

// DELETE /api/a/shifts/:id
func (ctl *ShiftController) Delete(c *fiber.Ctx) error {
	m, err := ctl.loadOrgShift(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.WithContext(c.Context()).Delete(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus shift")
	}
	return helper.Success(c, "Shift dihapus", nil)
}

/* ===================== USER ===================== */

// GET /api/u/shifts?start=&end= — jadwal milik staff yang login
func (ctl *ShiftController) MySchedule(c *fiber.Ctx) error {
	orgID, err := helperauth.GetOrgUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	staffID, err := helperauth.GetStaffUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var q dto.ShiftRangeQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := validate.Struct(q); err != nil {
		return helper.ValidationError(c, err)
	}

	start, _ := time.Parse("2006-01-02", q.Start)
	end, _ := time.Parse("2006-01-02", q.End)
	rows, err := ctl.Shifts.ListByRange(c.Context(), orgID, &staffID, start, end)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}
	return helper.Success(c, "OK", rows)
}

/* ===================== INTERNAL ===================== */

func (ctl *ShiftController) loadOrgShift(c *fiber.Ctx) (*shmodel.ShiftModel, error) {
	orgID, err := helperauth.GetOrgUUID(c)
	if err != nil {
		return nil, helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.Error(c, fiber.StatusBadRequest, "ID shift tidak valid")
	}

	var m shmodel.ShiftModel
	err = ctl.DB.WithContext(c.Context()).
		Where("shift_id = ? AND shift_org_id = ?", id, orgID).
		First(&m).Error
	if err != nil {
		return nil, helper.Error(c, fiber.StatusNotFound, "Shift tidak ditemukan")
	}
	return &m, nil
}
