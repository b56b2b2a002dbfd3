// internals/features/finance/billing/route/billing_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"klinikku_backend/internals/constants"
	"klinikku_backend/internals/features/finance/billing/controller"
	"klinikku_backend/internals/middlewares/features"
)

// BillingPublicRoutes: webhook pembayaran (tanpa token, dipanggil midtrans)
func BillingPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctl := controller.NewBillingController(db)
	public.Post("/billing/notification", ctl.HandleNotification)
}

// BillingAdminRoutes: tagihan langganan organisasi
func BillingAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewBillingController(db)

	billing := admin.Group("/billing",
		features.OnlyRolesSlice(constants.RoleErrorAdmin("mengelola tagihan"), constants.AdminAndAbove),
	)
	billing.Post("/invoices", ctl.CreateInvoice)
	billing.Get("/invoices", ctl.ListInvoices)
}
