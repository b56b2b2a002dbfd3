// internals/features/lembaga/org_settings/model/org_setting_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OrgSettingModel menyimpan kebijakan absensi per organisasi.
// Satu baris per organisasi; dibaca engine lewat SettingsStore.
type OrgSettingModel struct {
	OrgSettingID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:org_setting_id" json:"org_setting_id"`
	OrgSettingOrgID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:org_setting_org_id" json:"org_setting_org_id"`

	// Kebijakan istirahat
	OrgSettingLunchEnabled    bool `gorm:"not null;default:true;column:org_setting_lunch_enabled" json:"org_setting_lunch_enabled"`
	OrgSettingBreaksEnabled   bool `gorm:"not null;default:true;column:org_setting_breaks_enabled" json:"org_setting_breaks_enabled"`
	OrgSettingMaxBreaksPerDay int  `gorm:"not null;default:2;column:org_setting_max_breaks_per_day" json:"org_setting_max_breaks_per_day"`

	// Zona waktu menentukan "hari kalender" kunci record absensi
	OrgSettingTimezone string `gorm:"type:varchar(64);not null;default:'Asia/Jakarta';column:org_setting_timezone" json:"org_setting_timezone"`

	// Hari kerja (0=Minggu .. 6=Sabtu); dipakai klasifikasi Absent
	OrgSettingWorkdays pq.Int64Array `gorm:"type:integer[];column:org_setting_workdays" json:"org_setting_workdays"`

	// Ambang lembur harian untuk rekap payroll
	OrgSettingOvertimeDailyThresholdHours float64 `gorm:"not null;default:8;column:org_setting_overtime_daily_threshold_hours" json:"org_setting_overtime_daily_threshold_hours"`

	// Kebijakan tambahan bentuk bebas (grace period dll), belum dinormalisasi
	OrgSettingPolicy datatypes.JSON `gorm:"type:jsonb;column:org_setting_policy" json:"org_setting_policy,omitempty"`

	OrgSettingCreatedAt time.Time      `gorm:"column:org_setting_created_at;autoCreateTime" json:"org_setting_created_at"`
	OrgSettingUpdatedAt *time.Time     `gorm:"column:org_setting_updated_at;autoUpdateTime" json:"org_setting_updated_at,omitempty"`
	OrgSettingDeletedAt gorm.DeletedAt `gorm:"column:org_setting_deleted_at;index" json:"org_setting_deleted_at,omitempty"`
}

func (OrgSettingModel) TableName() string { return "org_settings" }

// DefaultOrgSetting dipakai saat organisasi belum pernah menyimpan kebijakan
func DefaultOrgSetting(orgID uuid.UUID) *OrgSettingModel {
	return &OrgSettingModel{
		OrgSettingOrgID:                       orgID,
		OrgSettingLunchEnabled:                true,
		OrgSettingBreaksEnabled:               true,
		OrgSettingMaxBreaksPerDay:             2,
		OrgSettingTimezone:                    "Asia/Jakarta",
		OrgSettingWorkdays:                    pq.Int64Array{1, 2, 3, 4, 5}, // Senin-Jumat
		OrgSettingOvertimeDailyThresholdHours: 8,
	}
}

// Location memuat zona waktu organisasi (fallback UTC bila invalid)
func (s *OrgSettingModel) Location() *time.Location {
	if loc, err := time.LoadLocation(s.OrgSettingTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// IsWorkday: apakah weekday termasuk hari kerja organisasi
func (s *OrgSettingModel) IsWorkday(d time.Weekday) bool {
	for _, w := range s.OrgSettingWorkdays {
		if int(d) == int(w) {
			return true
		}
	}
	return false
}
