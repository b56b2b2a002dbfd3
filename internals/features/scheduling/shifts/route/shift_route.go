// internals/features/scheduling/shifts/route/shift_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"klinikku_backend/internals/constants"
	"klinikku_backend/internals/features/scheduling/shifts/controller"
	"klinikku_backend/internals/middlewares/features"
)

// ShiftUserRoutes: staff melihat jadwalnya sendiri
func ShiftUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := controller.NewShiftController(db)
	user.Get("/shifts", ctl.MySchedule)
}

// ShiftAdminRoutes: admin menyusun jadwal dinas
func ShiftAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewShiftController(db)

	shifts := admin.Group("/shifts",
		features.OnlyRolesSlice(constants.RoleErrorAdmin("mengelola jadwal dinas"), constants.AdminAndAbove),
	)
	shifts.Post("/", ctl.Assign)
	shifts.Get("/", ctl.List)
	shifts.Put("/:id", ctl.Update)
	shifts.Delete("/:id", ctl.Delete)
}
