package helperauth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Nama-nama locals yang diisi middleware AuthJWT.
// Dipakai lintas controller supaya tidak ada string lepas.
const (
	LocUserID  = "user_id"
	LocOrgID   = "org_id"
	LocStaffID = "staff_id"
	LocRole    = "role"
	LocIsOwner = "is_owner"
)

// GetUserUUID mengambil user_id dari locals (hasil parse JWT)
func GetUserUUID(c *fiber.Ctx) (uuid.UUID, error) {
	return localUUID(c, LocUserID, "User tidak terautentikasi")
}

// GetOrgUUID mengambil org_id aktif dari token.
// Error 428 kalau token tidak membawa organisasi (belum terikat klinik mana pun).
func GetOrgUUID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := localUUID(c, LocOrgID, "")
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusPreconditionRequired, "Token tidak membawa konteks organisasi")
	}
	return id, nil
}

// GetStaffUUID mengambil staff_id dari token (hanya ada untuk role staff)
func GetStaffUUID(c *fiber.Ctx) (uuid.UUID, error) {
	return localUUID(c, LocStaffID, "Token tidak membawa staff_id")
}

func GetRole(c *fiber.Ctx) string {
	if v := c.Locals(LocRole); v != nil {
		if s, ok := v.(string); ok {
			return strings.ToLower(strings.TrimSpace(s))
		}
	}
	return ""
}

func IsOwner(c *fiber.Ctx) bool {
	if v := c.Locals(LocIsOwner); v != nil {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

func localUUID(c *fiber.Ctx, key, msg string) (uuid.UUID, error) {
	if msg == "" {
		msg = "Unauthorized"
	}
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, msg)
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, msg)
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, msg)
	}
	return id, nil
}
