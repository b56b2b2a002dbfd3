// internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"klinikku_backend/internals/features/users/auth/controller"
	"klinikku_backend/internals/middlewares"
)

// AuthPublicRoutes: endpoint tanpa token
func AuthPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctl := controller.NewAuthController(db)

	auth := public.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	auth.Post("/login/google", middlewares.LoginRateLimiter(), ctl.GoogleLogin)
	auth.Post("/refresh", ctl.Refresh)
}

// AuthUserRoutes: endpoint yang butuh token
func AuthUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := controller.NewAuthController(db)
	user.Post("/auth/logout", ctl.Logout)
}
