// internals/features/users/staff/controller/staff_controller.go
package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	helper "klinikku_backend/internals/helpers"
	helperauth "klinikku_backend/internals/helpers/auth"
	"klinikku_backend/internals/helpers/oss"

	authmodel "klinikku_backend/internals/features/users/auth/model"
	"klinikku_backend/internals/features/users/staff/dto"
	stmodel "klinikku_backend/internals/features/users/staff/model"
	"klinikku_backend/internals/features/users/staff/repository"
)

var validate = validator.New()

type StaffController struct {
	DB    *gorm.DB
	Staff *repository.StaffRepository
}

func NewStaffController(db *gorm.DB) *StaffController {
	return &StaffController{DB: db, Staff: repository.NewStaffRepository(db)}
}

/* ===================== USER: ONBOARDING & PROFIL ===================== */

// POST /api/u/staff/join
// Akun login mengajukan bergabung ke klinik. Profil dibuat status pending.
func (ctl *StaffController) JoinOrg(c *fiber.Ctx) error {
	userID, err := helperauth.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.JoinRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Satu akun satu profil staff
	existing, err := ctl.Staff.GetByUser(c.Context(), userID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal cek profil staff")
	}
	if existing != nil {
		return helper.Error(c, fiber.StatusConflict, "Akun sudah memiliki profil staff")
	}

	var user authmodel.UserModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("user_id = ?", userID).First(&user).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Akun tidak ditemukan")
	}

	m := stmodel.StaffModel{
		StaffUserID:        userID,
		StaffOrgID:         &req.StaffOrgID,
		StaffLocationID:    req.StaffLocationID,
		StaffFullName:      req.StaffFullName,
		StaffEmail:         user.UserEmail,
		StaffPhone:         req.StaffPhone,
		StaffJobTitle:      req.StaffJobTitle,
		StaffSpecialties:   pq.StringArray(req.Specialties),
		StaffLicenseNumber: req.StaffLicenseNumber,
		StaffLicenseType:   req.StaffLicenseType,
		StaffStatus:        stmodel.StaffStatusPending,
	}
	if req.StaffLicenseExpiry != nil {
		t, err := time.Parse("2006-01-02", *req.StaffLicenseExpiry)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Format tanggal lisensi tidak valid (YYYY-MM-DD)")
		}
		m.StaffLicenseExpiry = &t
	}

	if err := ctl.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat profil staff")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated,
		"Pengajuan bergabung terkirim, menunggu persetujuan admin",
		dto.NewStaffResponse(&m, time.Now().UTC()))
}

// GET /api/u/staff/me
func (ctl *StaffController) Me(c *fiber.Ctx) error {
	userID, err := helperauth.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	m, err := ctl.Staff.GetByUser(c.Context(), userID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil profil staff")
	}
	if m == nil {
		return helper.Error(c, fiber.StatusNotFound, "Profil staff belum ada")
	}
	return helper.Success(c, "OK", dto.NewStaffResponse(m, time.Now().UTC()))
}

// PUT /api/u/staff/me
func (ctl *StaffController) UpdateMe(c *fiber.Ctx) error {
	userID, err := helperauth.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	// hourly rate hanya boleh diubah admin
	req.StaffHourlyRate = nil

	m, err := ctl.Staff.GetByUser(c.Context(), userID)
	if err != nil || m == nil {
		return helper.Error(c, fiber.StatusNotFound, "Profil staff belum ada")
	}

	if err := applyUpdate(m, &req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.Context()).Save(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan profil staff")
	}
	return helper.Success(c, "Profil staff diperbarui", dto.NewStaffResponse(m, time.Now().UTC()))
}

// POST /api/u/staff/me/photo — multipart "photo", dikonversi WebP lalu ke OSS
func (ctl *StaffController) UploadPhoto(c *fiber.Ctx) error {
	userID, err := helperauth.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	m, err := ctl.Staff.GetByUser(c.Context(), userID)
	if err != nil || m == nil {
		return helper.Error(c, fiber.StatusNotFound, "Profil staff belum ada")
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "File photo wajib diunggah")
	}
	url, err := oss.UploadImageAsWebP("staff/photos", fh)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	m.StaffPhotoURL = &url
	if err := ctl.DB.WithContext(c.Context()).Save(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan foto")
	}
	return helper.Success(c, "Foto profil diunggah", fiber.Map{"staff_photo_url": url})
}

// POST /api/u/staff/me/license-document — multipart "document" (PDF/scan)
func (ctl *StaffController) UploadLicenseDocument(c *fiber.Ctx) error {
	userID, err := helperauth.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	m, err := ctl.Staff.GetByUser(c.Context(), userID)
	if err != nil || m == nil {
		return helper.Error(c, fiber.StatusNotFound, "Profil staff belum ada")
	}

	fh, err := c.FormFile("document")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "File document wajib diunggah")
	}
	url, err := oss.UploadRawDocument("staff/licenses", fh)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	m.StaffLicenseDocumentURL = &url
	if err := ctl.DB.WithContext(c.Context()).Save(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan dokumen lisensi")
	}
	return helper.Success(c, "Dokumen lisensi diunggah", fiber.Map{"staff_license_document_url": url})
}

/* ===================== ADMIN: APPROVAL & MANAJEMEN ===================== */

// GET /api/a/staff?status=pending&page=1&per_page=20
func (ctl *StaffController) List(c *fiber.Ctx) error {
	orgID, err := helperauth.GetOrgUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var status *stmodel.StaffStatus
	if s := c.Query("status"); s != "" {
		st := stmodel.StaffStatus(s)
		switch st {
		case stmodel.StaffStatusPending, stmodel.StaffStatusActive,
			stmodel.StaffStatusRejected, stmodel.StaffStatusInactive:
			status = &st
		default:
			return helper.Error(c, fiber.StatusBadRequest, "Status tidak dikenal")
		}
	}

	paging := helper.ResolvePaging(c, 20, 100)
	rows, total, err := ctl.Staff.ListByOrg(c.Context(), orgID, status, paging.Limit(), paging.Offset())
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar staff")
	}

	now := time.Now().UTC()
	items := make([]dto.StaffResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewStaffResponse(&rows[i], now))
	}
	return helper.Success(c, "OK", fiber.Map{
		"items":      items,
		"pagination": helper.BuildMeta(total, paging, len(items)),
	})
}

// POST /api/a/staff/:id/approve
func (ctl *StaffController) Approve(c *fiber.Ctx) error {
	m, err := ctl.loadOrgStaff(c)
	if err != nil {
		return err
	}
	if m.StaffStatus != stmodel.StaffStatusPending {
		return helper.Error(c, fiber.StatusConflict, "Hanya pengajuan pending yang bisa di-approve")
	}

	now := time.Now().UTC()
	m.StaffStatus = stmodel.StaffStatusActive
	m.StaffApprovedAt = &now
	m.StaffRejectionReason = nil
	if err := ctl.DB.WithContext(c.Context()).Save(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan approval")
	}
	return helper.Success(c, "Staff di-approve", dto.NewStaffResponse(m, now))
}

// POST /api/a/staff/:id/reject
func (ctl *StaffController) Reject(c *fiber.Ctx) error {
	m, err := ctl.loadOrgStaff(c)
	if err != nil {
		return err
	}
	if m.StaffStatus != stmodel.StaffStatusPending {
		return helper.Error(c, fiber.StatusConflict, "Hanya pengajuan pending yang bisa ditolak")
	}

	var req dto.RejectStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m.StaffStatus = stmodel.StaffStatusRejected
	m.StaffRejectionReason = &req.Reason
	if err := ctl.DB.WithContext(c.Context()).Save(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan penolakan")
	}
	return helper.Success(c, "Pengajuan ditolak", dto.NewStaffResponse(m, time.Now().UTC()))
}

// POST /api/a/staff/:id/deactivate — resign / kontrak habis
func (ctl *StaffController) Deactivate(c *fiber.Ctx) error {
	m, err := ctl.loadOrgStaff(c)
	if err != nil {
		return err
	}
	if m.StaffStatus != stmodel.StaffStatusActive {
		return helper.Error(c, fiber.StatusConflict, "Hanya staff aktif yang bisa dinonaktifkan")
	}

	m.StaffStatus = stmodel.StaffStatusInactive
	if err := ctl.DB.WithContext(c.Context()).Save(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menonaktifkan staff")
	}
	return helper.Success(c, "Staff dinonaktifkan", dto.NewStaffResponse(m, time.Now().UTC()))
}

// PUT /api/a/staff/:id — admin boleh set hourly rate & data profesi
func (ctl *StaffController) Update(c *fiber.Ctx) error {
	m, err := ctl.loadOrgStaff(c)
	if err != nil {
		return err
	}

	var req dto.UpdateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := applyUpdate(m, &req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if req.StaffHourlyRate != nil {
		m.StaffHourlyRate = *req.StaffHourlyRate
	}
	if err := ctl.DB.WithContext(c.Context()).Save(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan staff")
	}
	return helper.Success(c, "Staff diperbarui", dto.NewStaffResponse(m, time.Now().UTC()))
}

/* ===================== INTERNAL ===================== */

// loadOrgStaff: param :id, dan staff harus milik org admin yang login
func (ctl *StaffController) loadOrgStaff(c *fiber.Ctx) (*stmodel.StaffModel, error) {
	orgID, err := helperauth.GetOrgUUID(c)
	if err != nil {
		return nil, helper.FromFiberError(c, err)
	}
	staffID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.Error(c, fiber.StatusBadRequest, "ID staff tidak valid")
	}

	m, err := ctl.Staff.Get(c.Context(), staffID)
	if err != nil {
		return nil, helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil staff")
	}
	if m == nil || m.StaffOrgID == nil || *m.StaffOrgID != orgID {
		return nil, helper.Error(c, fiber.StatusNotFound, "Staff tidak ditemukan")
	}
	return m, nil
}

func applyUpdate(m *stmodel.StaffModel, req *dto.UpdateStaffRequest) error {
	if req.StaffFullName != nil {
		m.StaffFullName = *req.StaffFullName
	}
	if req.StaffPhone != nil {
		m.StaffPhone = req.StaffPhone
	}
	if req.StaffJobTitle != nil {
		m.StaffJobTitle = req.StaffJobTitle
	}
	if req.Specialties != nil {
		m.StaffSpecialties = pq.StringArray(req.Specialties)
	}
	if req.StaffLicenseNumber != nil {
		m.StaffLicenseNumber = req.StaffLicenseNumber
	}
	if req.StaffLicenseType != nil {
		m.StaffLicenseType = req.StaffLicenseType
	}
	if req.StaffLicenseExpiry != nil {
		t, err := time.Parse("2006-01-02", *req.StaffLicenseExpiry)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Format tanggal lisensi tidak valid (YYYY-MM-DD)")
		}
		m.StaffLicenseExpiry = &t
	}
	return nil
}
