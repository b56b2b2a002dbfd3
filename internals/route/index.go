// internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"klinikku_backend/internals/configs"
	attendanceRoute "klinikku_backend/internals/features/attendance/attendance/route"
	aservice "klinikku_backend/internals/features/attendance/attendance/service"
	billingRoute "klinikku_backend/internals/features/finance/billing/route"
	orgSettingRoute "klinikku_backend/internals/features/lembaga/org_settings/route"
	organizationRoute "klinikku_backend/internals/features/lembaga/organizations/route"
	leaveRoute "klinikku_backend/internals/features/leave/leave_requests/route"
	payrollRoute "klinikku_backend/internals/features/payroll/summaries/route"
	shiftRoute "klinikku_backend/internals/features/scheduling/shifts/route"
	authRoute "klinikku_backend/internals/features/users/auth/route"
	authservice "klinikku_backend/internals/features/users/auth/service"
	staffRoute "klinikku_backend/internals/features/users/staff/route"
	authmw "klinikku_backend/internals/middlewares/auth_org"
)

// SetupRoutes menyusun seluruh route dalam empat grup:
//
//	/api/public : tanpa token (auth, listing klinik, webhook pembayaran)
//	/api/u      : token wajib, semua role (absensi, profil, cuti, jadwal)
//	/api/a      : token wajib, admin klinik ke atas
//	/api/o      : token wajib, owner platform
func SetupRoutes(app *fiber.App, db *gorm.DB, audit aservice.AuditSink) {
	api := app.Group("/api")

	/* ===== PUBLIC ===== */
	public := api.Group("/public")
	authRoute.AuthPublicRoutes(public, db)
	organizationRoute.OrganizationPublicRoutes(public, db)
	billingRoute.BillingPublicRoutes(public, db)

	/* ===== AUTHENTICATED ===== */
	authJWT := authmw.AuthJWT(authmw.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		BlacklistChecker:    authservice.NewBlacklistChecker(db),
		AllowCookieFallback: true,
	})

	user := api.Group("/u", authJWT)
	authRoute.AuthUserRoutes(user, db)
	staffRoute.StaffUserRoutes(user, db)
	organizationRoute.OrganizationUserRoutes(user, db)
	attendanceRoute.AttendanceUserRoutes(user, db, audit)
	leaveRoute.LeaveUserRoutes(user, db)
	shiftRoute.ShiftUserRoutes(user, db)

	admin := api.Group("/a", authJWT)
	staffRoute.StaffAdminRoutes(admin, db)
	orgSettingRoute.OrgSettingAdminRoutes(admin, db)
	attendanceRoute.AttendanceAdminRoutes(admin, db)
	leaveRoute.LeaveAdminRoutes(admin, db)
	shiftRoute.ShiftAdminRoutes(admin, db)
	payrollRoute.PayrollAdminRoutes(admin, db)
	billingRoute.BillingAdminRoutes(admin, db)

	owner := api.Group("/o", authJWT)
	organizationRoute.OrganizationOwnerRoutes(owner, db)

	/* ===== HEALTHCHECK ===== */
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}
