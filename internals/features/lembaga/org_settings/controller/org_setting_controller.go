// internals/features/lembaga/org_settings/controller/org_setting_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"klinikku_backend/internals/features/lembaga/org_settings/dto"
	"klinikku_backend/internals/features/lembaga/org_settings/repository"
	helper "klinikku_backend/internals/helpers"
	helperauth "klinikku_backend/internals/helpers/auth"
)

var validate = validator.New()

type OrgSettingController struct {
	Settings *repository.OrgSettingRepository
}

func NewOrgSettingController(db *gorm.DB) *OrgSettingController {
	return &OrgSettingController{Settings: repository.NewOrgSettingRepository(db)}
}

// GET /api/a/org-settings — default kalau belum pernah disimpan
func (ctl *OrgSettingController) Get(c *fiber.Ctx) error {
	orgID, err := helperauth.GetOrgUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	m, err := ctl.Settings.Get(c.Context(), orgID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kebijakan absensi")
	}
	return helper.Success(c, "OK", m)
}

// PUT /api/a/org-settings — partial update di atas default/kebijakan lama
func (ctl *OrgSettingController) Update(c *fiber.Ctx) error {
	orgID, err := helperauth.GetOrgUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateOrgSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := ctl.Settings.Get(c.Context(), orgID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kebijakan absensi")
	}
	req.Apply(m)

	if err := ctl.Settings.Upsert(c.Context(), m); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan kebijakan absensi")
	}
	return helper.Success(c, "Kebijakan absensi disimpan", m)
}
