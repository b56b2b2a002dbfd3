// internals/features/lembaga/org_settings/route/org_setting_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"klinikku_backend/internals/constants"
	"klinikku_backend/internals/features/lembaga/org_settings/controller"
	"klinikku_backend/internals/middlewares/features"
)

// OrgSettingAdminRoutes: kebijakan absensi hanya untuk admin/owner
func OrgSettingAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewOrgSettingController(db)

	settings := admin.Group("/org-settings",
		features.OnlyRolesSlice(constants.RoleErrorAdmin("mengatur kebijakan absensi"), constants.AdminAndAbove),
	)
	settings.Get("/", ctl.Get)
	settings.Put("/", ctl.Update)
}
