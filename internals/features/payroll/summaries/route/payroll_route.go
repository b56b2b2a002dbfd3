// internals/features/payroll/summaries/route/payroll_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"klinikku_backend/internals/constants"
	"klinikku_backend/internals/features/payroll/summaries/controller"
	"klinikku_backend/internals/middlewares/features"
)

// PayrollAdminRoutes: rekap & export payroll per periode
func PayrollAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewPayrollController(db)

	payroll := admin.Group("/payroll",
		features.OnlyRolesSlice(constants.RoleErrorAdmin("rekap payroll"), constants.AdminAndAbove),
	)
	payroll.Get("/summary", ctl.Summary)
	payroll.Get("/export", ctl.Export)
}
