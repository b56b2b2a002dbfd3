// internals/features/lembaga/organizations/controller/organization_controller.go
package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"klinikku_backend/internals/features/lembaga/organizations/dto"
	orgmodel "klinikku_backend/internals/features/lembaga/organizations/model"
	helper "klinikku_backend/internals/helpers"
	helperauth "klinikku_backend/internals/helpers/auth"
	"klinikku_backend/internals/helpers/oss"
)

var validate = validator.New()

type OrganizationController struct {
	DB *gorm.DB
}

func NewOrganizationController(db *gorm.DB) *OrganizationController {
	return &OrganizationController{DB: db}
}

/* ===================== PUBLIC ===================== */

// GET /api/public/organizations?q=&page=&per_page=
// Listing publik hanya klinik terverifikasi.
func (ctl *OrganizationController) ListPublic(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&orgmodel.OrganizationModel{}).
		Where("organization_verification_status = ?", orgmodel.OrgVerificationApproved)
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(organization_name) LIKE ? OR LOWER(COALESCE(organization_city, '')) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar klinik")
	}
	var rows []orgmodel.OrganizationModel
	if err := q.Order("organization_name ASC").
		Limit(paging.Limit()).Offset(paging.Offset()).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar klinik")
	}

	return helper.Success(c, "OK", fiber.Map{
		"items":      rows,
		"pagination": helper.BuildMeta(total, paging, len(rows)),
	})
}

// GET /api/public/organizations/:slug
func (ctl *OrganizationController) GetBySlug(c *fiber.Ctx) error {
	var m orgmodel.OrganizationModel
	err := ctl.DB.WithContext(c.Context()).
		Where("organization_slug = ?", strings.ToLower(c.Params("slug"))).
		First(&m).Error
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Klinik tidak ditemukan")
	}
	return helper.Success(c, "OK", m)
}

/* ===================== USER: BUAT & KELOLA MILIK SENDIRI ===================== */

// POST /api/u/organizations — akun login mendirikan klinik (jadi owner-nya)
func (ctl *OrganizationController) Create(c *fiber.Ctx) error {
	userID, err := helperauth.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateOrganizationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := orgmodel.OrganizationModel{
		OrganizationOwnerUserID:        userID,
		OrganizationName:               strings.TrimSpace(req.OrganizationName),
		OrganizationSlug:               buildSlug(req.OrganizationName),
		OrganizationAddress:            req.OrganizationAddress,
		OrganizationCity:               req.OrganizationCity,
		OrganizationPhone:              req.OrganizationPhone,
		OrganizationVerificationStatus: orgmodel.OrgVerificationPending,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat klinik")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Klinik dibuat, menunggu verifikasi", m)
}

// PUT /api/u/organizations/:id
func (ctl *OrganizationController) Update(c *fiber.Ctx) error {
	m, err := ctl.loadOwned(c)
	if err != nil {
		return err
	}

	var req dto.UpdateOrganizationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.OrganizationName != nil {
		m.OrganizationName = strings.TrimSpace(*req.OrganizationName)
	}
	if req.OrganizationAddress != nil {
		m.OrganizationAddress = req.OrganizationAddress
	}
	if req.OrganizationCity != nil {
		m.OrganizationCity = req.OrganizationCity
	}
	if req.OrganizationPhone != nil {
		m.OrganizationPhone = req.OrganizationPhone
	}
	if err := ctl.DB.WithContext(c.Context()).Save(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan klinik")
	}
	return helper.Success(c, "Klinik diperbarui", m)
}

// POST /api/u/organizations/:id/logo — multipart "logo"
func (ctl *OrganizationController) UploadLogo(c *fiber.Ctx) error {
	m, err := ctl.loadOwned(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("logo")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "File logo wajib diunggah")
	}
	url, err := oss.UploadImageAsWebP("organizations/logos", fh)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	m.OrganizationLogoURL = &url
	if err := ctl.DB.WithContext(c.Context()).Save(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan logo")
	}
	return helper.Success(c, "Logo diunggah", fiber.Map{"organization_logo_url": url})
}

// DELETE /api/u/organizations/:id — soft delete
func (ctl *OrganizationController) Delete(c *fiber.Ctx) error {
	m, err := ctl.loadOwned(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.WithContext(c.Context()).Delete(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus klinik")
	}
	return helper.Success(c, "Klinik dihapus", nil)
}

// POST /api/u/organizations/:id/restore
func (ctl *OrganizationController) Restore(c *fiber.Ctx) error {
	userID, err := helperauth.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	orgID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID klinik tidak valid")
	}

	res := ctl.DB.WithContext(c.Context()).Unscoped().
		Model(&orgmodel.OrganizationModel{}).
		Where("organization_id = ? AND organization_owner_user_id = ? AND organization_deleted_at IS NOT NULL", orgID, userID).
		Update("organization_deleted_at", nil)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memulihkan klinik")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Klinik terhapus tidak ditemukan")
	}
	return helper.Success(c, "Klinik dipulihkan", nil)
}

/* ===================== OWNER PLATFORM: VERIFIKASI ===================== */

// POST /api/o/organizations/:id/verify
func (ctl *OrganizationController) Verify(c *fiber.Ctx) error {
	orgID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID klinik tidak valid")
	}

	var req dto.VerifyOrganizationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m orgmodel.OrganizationModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("organization_id = ?", orgID).First(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Klinik tidak ditemukan")
	}

	now := time.Now().UTC()
	if req.Approved {
		m.OrganizationVerificationStatus = orgmodel.OrgVerificationApproved
		m.OrganizationVerifiedAt = &now
	} else {
		m.OrganizationVerificationStatus = orgmodel.OrgVerificationRejected
		m.OrganizationVerifiedAt = nil
	}
	m.OrganizationVerificationNotes = req.Notes

	if err := ctl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan verifikasi")
	}
	return helper.Success(c, "Status verifikasi disimpan", m)
}

/* ===================== INTERNAL ===================== */

func (ctl *OrganizationController) loadOwned(c *fiber.Ctx) (*orgmodel.OrganizationModel, error) {
	userID, err := helperauth.GetUserUUID(c)
	if err != nil {
		return nil, helper.FromFiberError(c, err)
	}
	orgID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.Error(c, fiber.StatusBadRequest, "ID klinik tidak valid")
	}

	var m orgmodel.OrganizationModel
	err = ctl.DB.WithContext(c.Context()).
		Where("organization_id = ? AND organization_owner_user_id = ?", orgID, userID).
		First(&m).Error
	if err != nil {
		return nil, helper.Error(c, fiber.StatusNotFound, "Klinik tidak ditemukan")
	}
	return &m, nil
}

// buildSlug: lower-kebab + suffix pendek supaya unik tanpa roundtrip cek DB
func buildSlug(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash && b.Len() > 0 {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	base := strings.Trim(b.String(), "-")
	if base == "" {
		base = "klinik"
	}
	return fmt.Sprintf("%s-%s", base, uuid.NewString()[:8])
}
