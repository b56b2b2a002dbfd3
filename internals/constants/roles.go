package constants

import "fmt"

// Role dasar aplikasi
const (
	RoleUser  = "user"  // akun terdaftar, belum terikat organisasi
	RoleStaff = "staff" // tenaga kesehatan yang sudah di-approve organisasi
	RoleAdmin = "admin" // admin organisasi (klinik/employer)
	RoleOwner = "owner" // super-admin platform
)

// Template pesan error role
const (
	ErrOnlyStaffCanAccess  = "❌ Hanya staff, admin, atau owner yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyOwnersCanAccess = "❌ Hanya owner yang boleh mengakses fitur %s."
)

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorOwner(feature string) string {
	return fmt.Sprintf(ErrOnlyOwnersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleStaff,
		RoleAdmin,
		RoleOwner,
	}

	StaffAndAbove = []string{
		RoleStaff,
		RoleAdmin,
		RoleOwner,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleOwner,
	}

	OwnerOnly = []string{
		RoleOwner,
	}
)
