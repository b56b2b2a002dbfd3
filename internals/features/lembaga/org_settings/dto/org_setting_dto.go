// internals/features/lembaga/org_settings/dto/org_setting_dto.go
package dto

import (
	"encoding/json"

	"github.com/lib/pq"
	"gorm.io/datatypes"

	smodel "klinikku_backend/internals/features/lembaga/org_settings/model"
)

// UpdateOrgSettingRequest: partial update, field nil tidak diubah
type UpdateOrgSettingRequest struct {
	LunchEnabled    *bool `json:"org_setting_lunch_enabled,omitempty"`
	BreaksEnabled   *bool `json:"org_setting_breaks_enabled,omitempty"`
	MaxBreaksPerDay *int  `json:"org_setting_max_breaks_per_day,omitempty" validate:"omitempty,gte=0,lte=10"`

	Timezone *string `json:"org_setting_timezone,omitempty" validate:"omitempty,timezone"`
	Workdays []int64 `json:"org_setting_workdays,omitempty" validate:"omitempty,max=7,dive,gte=0,lte=6"`

	OvertimeDailyThresholdHours *float64 `json:"org_setting_overtime_daily_threshold_hours,omitempty" validate:"omitempty,gt=0,lte=24"`

	Policy json.RawMessage `json:"org_setting_policy,omitempty"`
}

func (r *UpdateOrgSettingRequest) Apply(m *smodel.OrgSettingModel) {
	if r.LunchEnabled != nil {
		m.OrgSettingLunchEnabled = *r.LunchEnabled
	}
	if r.BreaksEnabled != nil {
		m.OrgSettingBreaksEnabled = *r.BreaksEnabled
	}
	if r.MaxBreaksPerDay != nil {
		m.OrgSettingMaxBreaksPerDay = *r.MaxBreaksPerDay
	}
	if r.Timezone != nil {
		m.OrgSettingTimezone = *r.Timezone
	}
	if r.Workdays != nil {
		m.OrgSettingWorkdays = pq.Int64Array(r.Workdays)
	}
	if r.OvertimeDailyThresholdHours != nil {
		m.OrgSettingOvertimeDailyThresholdHours = *r.OvertimeDailyThresholdHours
	}
	if r.Policy != nil {
		m.OrgSettingPolicy = datatypes.JSON(r.Policy)
	}
}
