// internals/features/attendance/attendance/service/errors.go
package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Semua pelanggaran precondition dikembalikan sebagai sentinel error,
// dicek sebelum mutasi — record tidak pernah berubah saat gagal.
var (
	// Shift-state mismatch
	ErrAlreadyClockedIn = errors.New("sudah clock-in hari ini")
	ErrNotClockedIn     = errors.New("belum clock-in")
	ErrRecordClosed     = errors.New("record sudah clock-out, tidak bisa diubah")

	// Kelayakan aktor
	ErrLicenseExpired             = errors.New("lisensi profesi kadaluarsa, perbarui profil atau hubungi admin")
	ErrMissingOrganizationContext = errors.New("akun belum terikat organisasi/lokasi, hubungi admin")
	ErrStaffNotActive             = errors.New("staff belum aktif / belum di-approve organisasi")

	// Kebijakan & urutan aksi
	ErrLunchNotEnabled    = errors.New("fitur lunch tidak diaktifkan organisasi")
	ErrBreaksNotEnabled   = errors.New("fitur break tidak diaktifkan organisasi")
	ErrLunchAlreadyUsed   = errors.New("jatah lunch hari ini sudah dipakai")
	ErrBreakLimitReached  = errors.New("jumlah break hari ini sudah mencapai batas")
	ErrAlreadyOnLunch     = errors.New("sedang lunch")
	ErrAlreadyOnBreak     = errors.New("sedang break")
	ErrNotOnLunch         = errors.New("tidak sedang lunch")
	ErrNotOnBreak         = errors.New("tidak sedang break")
	ErrOpenLunchOrBreak   = errors.New("masih ada lunch/break yang belum diakhiri")
)

// StatusFor memetakan sentinel engine ke HTTP status untuk controller.
// Error lain (storage dll) diteruskan sebagai 500.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrAlreadyClockedIn),
		errors.Is(err, ErrNotClockedIn),
		errors.Is(err, ErrRecordClosed),
		errors.Is(err, ErrLunchAlreadyUsed),
		errors.Is(err, ErrBreakLimitReached),
		errors.Is(err, ErrAlreadyOnLunch),
		errors.Is(err, ErrAlreadyOnBreak),
		errors.Is(err, ErrNotOnLunch),
		errors.Is(err, ErrNotOnBreak),
		errors.Is(err, ErrOpenLunchOrBreak):
		return fiber.StatusConflict
	case errors.Is(err, ErrLunchNotEnabled),
		errors.Is(err, ErrBreaksNotEnabled),
		errors.Is(err, ErrLicenseExpired),
		errors.Is(err, ErrStaffNotActive):
		return fiber.StatusForbidden
	case errors.Is(err, ErrMissingOrganizationContext):
		return fiber.StatusPreconditionRequired
	default:
		return fiber.StatusInternalServerError
	}
}
