// internals/features/users/staff/route/staff_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"klinikku_backend/internals/constants"
	"klinikku_backend/internals/features/users/staff/controller"
	"klinikku_backend/internals/middlewares/features"
)

// StaffUserRoutes: onboarding & profil diri (semua akun login)
func StaffUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := controller.NewStaffController(db)

	staff := user.Group("/staff")
	staff.Post("/join", ctl.JoinOrg)
	staff.Get("/me", ctl.Me)
	staff.Put("/me", ctl.UpdateMe)
	staff.Post("/me/photo", ctl.UploadPhoto)
	staff.Post("/me/license-document", ctl.UploadLicenseDocument)
}

// StaffAdminRoutes: approval & manajemen staff satu klinik
func StaffAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewStaffController(db)

	staff := admin.Group("/staff",
		features.OnlyRolesSlice(constants.RoleErrorAdmin("mengelola staff"), constants.AdminAndAbove),
	)
	staff.Get("/", ctl.List)
	staff.Put("/:id", ctl.Update)
	staff.Post("/:id/approve", ctl.Approve)
	staff.Post("/:id/reject", ctl.Reject)
	staff.Post("/:id/deactivate", ctl.Deactivate)
}
