package features

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	helperAuth "klinikku_backend/internals/helpers/auth"
)

// OnlyRolesSlice menolak request kalau role di token tidak ada dalam daftar.
// errMsg memakai template dari constants (lihat constants/roles.go).
func OnlyRolesSlice(errMsg string, allowed []string) fiber.Handler {
	allowSet := make(map[string]struct{}, len(allowed))
	for _, r := range allowed {
		allowSet[strings.ToLower(strings.TrimSpace(r))] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		if helperAuth.IsOwner(c) {
			return c.Next()
		}
		role := helperAuth.GetRole(c)
		if role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Role not found")
		}
		if _, ok := allowSet[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, errMsg)
		}
		return c.Next()
	}
}

// IsOrgAdmin: guard untuk grup /api/a — wajib admin organisasi (atau owner)
func IsOrgAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if helperAuth.IsOwner(c) {
			return c.Next()
		}
		if helperAuth.GetRole(c) != "admin" {
			return fiber.NewError(fiber.StatusForbidden, "Aksi ini hanya untuk admin organisasi")
		}
		if _, err := helperAuth.GetOrgUUID(c); err != nil {
			return err
		}
		return c.Next()
	}
}

// IsOwnerGlobal: guard untuk grup /api/o — super-admin platform
func IsOwnerGlobal() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helperAuth.IsOwner(c) && helperAuth.GetRole(c) != "owner" {
			return fiber.NewError(fiber.StatusForbidden, "Aksi ini hanya untuk owner platform")
		}
		return c.Next()
	}
}

// RequireOrgScope memastikan token membawa org_id (untuk grup per-tenant)
func RequireOrgScope() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := helperAuth.GetOrgUUID(c); err != nil {
			return err
		}
		return c.Next()
	}
}
