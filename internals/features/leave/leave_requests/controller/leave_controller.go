// internals/features/leave/leave_requests/controller/leave_controller.go
package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"klinikku_backend/internals/features/leave/leave_requests/dto"
	lmodel "klinikku_backend/internals/features/leave/leave_requests/model"
	"klinikku_backend/internals/features/leave/leave_requests/repository"
	helper "klinikku_backend/internals/helpers"
	helperauth "klinikku_backend/internals/helpers/auth"
)

var validate = validator.New()

type LeaveController struct {
	DB     *gorm.DB
	Leaves *repository.LeaveRepository
}

func NewLeaveController(db *gorm.DB) *LeaveController {
	return &LeaveController{DB: db, Leaves: repository.NewLeaveRepository(db)}
}

/* ===================== USER ===================== */

// POST /api/u/leave-requests
func (ctl *LeaveController) Create(c *fiber.Ctx) error {
	orgID, err := helperauth.GetOrgUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	staffID, err := helperauth.GetStaffUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	if end.Before(start) {
		return helper.Error(c, fiber.StatusBadRequest, "Tanggal selesai sebelum tanggal mulai")
	}

	overlap, err := ctl.Leaves.HasOverlap(c.Context(), staffID, start, end)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal cek pengajuan cuti")
	}
	if overlap {
		return helper.Error(c, fiber.StatusConflict, "Sudah ada pengajuan cuti pada rentang tanggal itu")
	}

	m := lmodel.LeaveRequestModel{
		LeaveRequestOrgID:     orgID,
		LeaveRequestStaffID:   staffID,
		LeaveRequestType:      lmodel.LeaveType(req.Type),
		LeaveRequestStartDate: start,
		LeaveRequestEndDate:   end,
		LeaveRequestReason:    req.Reason,
		LeaveRequestStatus:    lmodel.LeaveStatusPending,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat pengajuan cuti")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pengajuan cuti terkirim", m)
}

// GET /api/u/leave-requests — milik staff yang login
func (ctl *LeaveController) MyList(c *fiber.Ctx) error {
	staffID, err := helperauth.GetStaffUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)
	q := ctl.DB.WithContext(c.Context()).Model(&lmodel.LeaveRequestModel{}).
		Where("leave_request_staff_id = ?", staffID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil pengajuan cuti")
	}
	var rows []lmodel.LeaveRequestModel
	if err := q.Order("leave_request_start_date DESC").
		Limit(paging.Limit()).Offset(paging.Offset()).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil pengajuan cuti")
	}
	return helper.Success(c, "OK", fiber.Map{
		"items":      rows,
		"pagination": helper.BuildMeta(total, paging, len(rows)),
	})
}

// POST /api/u/leave-requests/:id/cancel — hanya pending milik sendiri
func (ctl *LeaveController) Cancel(c *fiber.Ctx) error {
	staffID, err := helperauth.GetStaffUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID pengajuan tidak valid")
	}

	var m lmodel.LeaveRequestModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("leave_request_id = ? AND leave_request_staff_id = ?", id, staffID).
		First(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Pengajuan tidak ditemukan")
	}
	if m.LeaveRequestStatus != lmodel.LeaveStatusPending {
		return helper.Error(c, fiber.StatusConflict, "Hanya pengajuan pending yang bisa dibatalkan")
	}

	m.LeaveRequestStatus = lmodel.LeaveStatusCanceled
	if err := ctl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membatalkan pengajuan")
	}
	return helper.Success(c, "Pengajuan dibatalkan", m)
}

/* ===================== ADMIN ===================== */

// GET /api/a/leave-requests?status=pending
func (ctl *LeaveController) List(c *fiber.Ctx) error {
	orgID, err := helperauth.GetOrgUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)
	q := ctl.DB.WithContext(c.Context()).Model(&lmodel.LeaveRequestModel{}).
		Where("leave_request_org_id = ?", orgID)
	if s := c.Query("status"); s != "" {
		q = q.Where("leave_request_status = ?", s)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil pengajuan cuti")
	}
	var rows []lmodel.LeaveRequestModel
	if err := q.Order("leave_request_created_at DESC").
		Limit(paging.Limit()).Offset(paging.Offset()).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil pengajuan cuti")
	}
	return helper.Success(c, "OK", fiber.Map{
		"items":      rows,
		"pagination": helper.BuildMeta(total, paging, len(rows)),
	})
}

// POST /api/a/leave-requests/:id/approve
func (ctl *LeaveController) Approve(c *fiber.Ctx) error {
	return ctl.review(c, lmodel.LeaveStatusApproved, "Pengajuan cuti di-approve")
}

// POST /api/a/leave-requests/:id/reject
func (ctl *LeaveController) Reject(c *fiber.Ctx) error {
	return ctl.review(c, lmodel.LeaveStatusRejected, "Pengajuan cuti ditolak")
}

func (ctl *LeaveController) review(c *fiber.Ctx, status lmodel.LeaveStatus, okMsg string) error {
	orgID, err := helperauth.GetOrgUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	reviewerID, err := helperauth.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID pengajuan tidak valid")
	}

	var req dto.ReviewLeaveRequest
	// body opsional
	_ = c.BodyParser(&req)
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m lmodel.LeaveRequestModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("leave_request_id = ? AND leave_request_org_id = ?", id, orgID).
		First(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Pengajuan tidak ditemukan")
	}
	if m.LeaveRequestStatus != lmodel.LeaveStatusPending {
		return helper.Error(c, fiber.StatusConflict, "Pengajuan sudah direview")
	}

	now := time.Now().UTC()
	m.LeaveRequestStatus = status
	m.LeaveRequestReviewedBy = &reviewerID
	m.LeaveRequestReviewedAt = &now
	m.LeaveRequestReviewNote = req.Note

	if err := ctl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan review")
	}
	return helper.Success(c, okMsg, m)
}
