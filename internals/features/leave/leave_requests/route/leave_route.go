// internals/features/leave/leave_requests/route/leave_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"klinikku_backend/internals/constants"
	"klinikku_backend/internals/features/leave/leave_requests/controller"
	"klinikku_backend/internals/middlewares/features"
)

// LeaveUserRoutes: pengajuan & pembatalan cuti oleh staff
func LeaveUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := controller.NewLeaveController(db)

	leave := user.Group("/leave-requests")
	leave.Post("/", ctl.Create)
	leave.Get("/", ctl.MyList)
	leave.Post("/:id/cancel", ctl.Cancel)
}

// LeaveAdminRoutes: review cuti oleh admin klinik
func LeaveAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewLeaveController(db)

	leave := admin.Group("/leave-requests",
		features.OnlyRolesSlice(constants.RoleErrorAdmin("review cuti"), constants.AdminAndAbove),
	)
	leave.Get("/", ctl.List)
	leave.Post("/:id/approve", ctl.Approve)
	leave.Post("/:id/reject", ctl.Reject)
}
