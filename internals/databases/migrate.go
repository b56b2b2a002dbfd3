package database

import (
	"log"

	amodel "klinikku_backend/internals/features/attendance/attendance/model"
	bmodel "klinikku_backend/internals/features/finance/billing/model"
	smodel "klinikku_backend/internals/features/lembaga/org_settings/model"
	orgmodel "klinikku_backend/internals/features/lembaga/organizations/model"
	lmodel "klinikku_backend/internals/features/leave/leave_requests/model"
	shmodel "klinikku_backend/internals/features/scheduling/shifts/model"
	authmodel "klinikku_backend/internals/features/users/auth/model"
	stmodel "klinikku_backend/internals/features/users/staff/model"
)

// AutoMigrate dijalankan saat DB_AUTOMIGRATE=true (development).
// Production memakai migration SQL terpisah.
func AutoMigrate() {
	if getenv("DB_AUTOMIGRATE", "false") != "true" {
		return
	}
	log.Println("🛠️ AutoMigrate jalan...")

	err := DB.AutoMigrate(
		&authmodel.UserModel{},
		&authmodel.TokenBlacklistModel{},
		&orgmodel.OrganizationModel{},
		&smodel.OrgSettingModel{},
		&stmodel.StaffModel{},
		&amodel.AttendanceRecordModel{},
		&lmodel.LeaveRequestModel{},
		&shmodel.ShiftModel{},
		&bmodel.InvoiceModel{},
	)
	if err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ AutoMigrate selesai")
}
