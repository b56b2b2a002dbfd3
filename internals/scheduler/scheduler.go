// internals/scheduler/scheduler.go
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	amodel "klinikku_backend/internals/features/attendance/attendance/model"
	arepo "klinikku_backend/internals/features/attendance/attendance/repository"
	aservice "klinikku_backend/internals/features/attendance/attendance/service"
	orgmodel "klinikku_backend/internals/features/lembaga/organizations/model"
	srepo "klinikku_backend/internals/features/lembaga/org_settings/repository"
	lrepo "klinikku_backend/internals/features/leave/leave_requests/repository"
	shrepo "klinikku_backend/internals/features/scheduling/shifts/repository"
	authservice "klinikku_backend/internals/features/users/auth/service"
	stmodel "klinikku_backend/internals/features/users/staff/model"
	strepo "klinikku_backend/internals/features/users/staff/repository"
	"klinikku_backend/internals/helpers/dbtime"
)

// Start mendaftarkan job background lalu menjalankan cron.
// Jam WIB dipakai sebagai patokan semua jadwal.
func Start(db *gorm.DB) *cron.Cron {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		loc = time.UTC
	}
	c := cron.New(cron.WithLocation(loc))

	// 00:30 — tandai absen/cuti untuk hari kemarin
	if _, err := c.AddFunc("30 0 * * *", func() { MarkMissingAttendance(db) }); err != nil {
		log.Println("❌ gagal mendaftarkan job absent-marker:", err)
	}

	// 02:00 — bersihkan token blacklist kedaluwarsa
	if _, err := c.AddFunc("0 2 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		n, err := authservice.PurgeExpiredBlacklist(ctx, db)
		if err != nil {
			log.Println("❌ purge token blacklist gagal:", err)
			return
		}
		log.Printf("🧹 token blacklist dibersihkan: %d baris", n)
	}); err != nil {
		log.Println("❌ gagal mendaftarkan job purge blacklist:", err)
	}

	c.Start()
	log.Println("⏰ Scheduler aktif")
	return c
}

// MarkMissingAttendance membuat record absent/on_leave untuk staff aktif
// yang diharapkan kerja kemarin tapi tidak punya record sama sekali.
// Dipisah dari cron supaya bisa dipanggil manual (backfill).
func MarkMissingAttendance(db *gorm.DB) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	records := arepo.NewAttendanceRepository(db)
	settingsRepo := srepo.NewOrgSettingRepository(db)
	staffRepo := strepo.NewStaffRepository(db)

	engine := &aservice.AttendanceEngine{
		Records:  records,
		Settings: settingsRepo,
		Staff:    staffRepo,
		Leaves:   lrepo.NewLeaveRepository(db),
		Shifts:   shrepo.NewShiftRepository(db),
	}

	var orgs []orgmodel.OrganizationModel
	if err := db.WithContext(ctx).
		Where("organization_verification_status = ?", orgmodel.OrgVerificationApproved).
		Find(&orgs).Error; err != nil {
		log.Println("❌ absent-marker: gagal mengambil organisasi:", err)
		return
	}

	marked := 0
	for _, org := range orgs {
		settings, err := settingsRepo.Get(ctx, org.OrganizationID)
		if err != nil {
			log.Println("⚠️ absent-marker: skip org", org.OrganizationID, ":", err)
			continue
		}

		// "kemarin" menurut zona waktu organisasi
		loc := settings.Location()
		yesterday := dbtime.DateOnly(time.Now().In(loc).AddDate(0, 0, -1), loc)

		active := stmodel.StaffStatusActive
		staffs, _, err := staffRepo.ListByOrg(ctx, org.OrganizationID, &active, 1000, 0)
		if err != nil {
			log.Println("⚠️ absent-marker: skip org", org.OrganizationID, ":", err)
			continue
		}

		for i := range staffs {
			st := &staffs[i]
			rec, err := records.GetForDate(ctx, org.OrganizationID, st.StaffID, yesterday)
			if err != nil || rec != nil {
				continue
			}

			status, err := engine.ClassifyStatus(ctx, st.StaffID, yesterday, nil, settings)
			if err != nil || status == "" {
				continue
			}

			m := &amodel.AttendanceRecordModel{
				AttendanceRecordOrgID:   org.OrganizationID,
				AttendanceRecordStaffID: st.StaffID,
				AttendanceRecordDate:    yesterday,
				AttendanceRecordStatus:  status,
			}
			if err := records.Create(ctx, m); err != nil {
				log.Println("⚠️ absent-marker: gagal membuat record:", err)
				continue
			}
			marked++
		}
	}
	log.Printf("📋 absent-marker selesai: %d record dibuat", marked)
}
