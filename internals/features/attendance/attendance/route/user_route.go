package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	acontroller "klinikku_backend/internals/features/attendance/attendance/controller"
	"klinikku_backend/internals/features/attendance/attendance/service"
	"klinikku_backend/internals/middlewares"
)

// AttendanceUserRoutes: aksi absensi staff → /api/u/attendance/...
func AttendanceUserRoutes(user fiber.Router, db *gorm.DB, audit service.AuditSink) {
	ctrl := acontroller.NewAttendanceController(db, audit)

	att := user.Group("/attendance")

	// transisi state (rate-limit cegah double-submit dari dua tab)
	actions := att.Group("/", middlewares.AttendanceActionRateLimiter())
	actions.Post("/clock-in", ctrl.ClockIn)
	actions.Post("/clock-out", ctrl.ClockOut)
	actions.Post("/lunch/start", ctrl.StartLunch)
	actions.Post("/lunch/end", ctrl.EndLunch)
	actions.Post("/break/start", ctrl.StartBreak)
	actions.Post("/break/end", ctrl.EndBreak)

	// read-only
	att.Get("/today", ctrl.Today)
	att.Get("/history", ctrl.MyHistory)
}
