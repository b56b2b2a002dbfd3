package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"klinikku_backend/internals/constants"
	acontroller "klinikku_backend/internals/features/attendance/attendance/controller"
	"klinikku_backend/internals/middlewares/features"
)

// AttendanceAdminRoutes: laporan kehadiran → /api/a/attendance/...
func AttendanceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := acontroller.NewAttendanceController(db, nil)

	att := admin.Group("/attendance",
		features.OnlyRolesSlice(
			constants.RoleErrorAdmin("laporan kehadiran"),
			constants.AdminAndAbove,
		),
	)

	att.Get("/", ctrl.Report)
}
