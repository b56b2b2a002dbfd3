// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Nama locals mengikuti yg di-set di middleware AuthJWT
const (
	LocOrgTimezone = "org_timezone" // string, misal "Asia/Jakarta"
	LocOrgLoc      = "org_loc"      // *time.Location
)

// GetOrgLocation mengambil *time.Location organisasi:
// 1) Prioritas: c.Locals("org_loc") yang diisi middleware
// 2) Kalau belum ada: coba baca "org_timezone" (string) lalu LoadLocation
// 3) Fallback terakhir: time.UTC
func GetOrgLocation(c *fiber.Ctx) *time.Location {
	if c == nil {
		return time.UTC
	}

	if v := c.Locals(LocOrgLoc); v != nil {
		if loc, ok := v.(*time.Location); ok && loc != nil {
			return loc
		}
	}

	if v := c.Locals(LocOrgTimezone); v != nil {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			if loc, err := time.LoadLocation(strings.TrimSpace(s)); err == nil {
				// cache ke locals biar next call lebih murah
				c.Locals(LocOrgLoc, loc)
				return loc
			}
		}
	}

	return time.UTC
}

// DateOnly memotong timestamp ke tanggal kalender pada timezone organisasi.
// Kunci record absensi adalah (org, staff, tanggal lokal), bukan tanggal UTC.
func DateOnly(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
}
