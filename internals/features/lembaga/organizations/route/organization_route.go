// internals/features/lembaga/organizations/route/organization_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"klinikku_backend/internals/constants"
	"klinikku_backend/internals/features/lembaga/organizations/controller"
	"klinikku_backend/internals/middlewares/features"
)

// OrganizationPublicRoutes: listing & detail klinik terverifikasi
func OrganizationPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctl := controller.NewOrganizationController(db)

	orgs := public.Group("/organizations")
	orgs.Get("/", ctl.ListPublic)
	orgs.Get("/:slug", ctl.GetBySlug)
}

// OrganizationUserRoutes: owner klinik mengelola kliniknya sendiri
func OrganizationUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := controller.NewOrganizationController(db)

	orgs := user.Group("/organizations")
	orgs.Post("/", ctl.Create)
	orgs.Put("/:id", ctl.Update)
	orgs.Post("/:id/logo", ctl.UploadLogo)
	orgs.Delete("/:id", ctl.Delete)
	orgs.Post("/:id/restore", ctl.Restore)
}

// OrganizationOwnerRoutes: verifikasi klinik oleh owner platform
func OrganizationOwnerRoutes(owner fiber.Router, db *gorm.DB) {
	ctl := controller.NewOrganizationController(db)

	orgs := owner.Group("/organizations",
		features.OnlyRolesSlice(constants.RoleErrorOwner("verifikasi klinik"), constants.OwnerOnly),
	)
	orgs.Post("/:id/verify", ctl.Verify)
}
