// internals/features/lembaga/org_settings/repository/org_setting_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	smodel "klinikku_backend/internals/features/lembaga/org_settings/model"
)

type OrgSettingRepository struct {
	DB *gorm.DB
}

func NewOrgSettingRepository(db *gorm.DB) *OrgSettingRepository {
	return &OrgSettingRepository{DB: db}
}

// Get mengembalikan kebijakan organisasi; fallback default kalau belum pernah diset
func (r *OrgSettingRepository) Get(ctx context.Context, orgID uuid.UUID) (*smodel.OrgSettingModel, error) {
	var m smodel.OrgSettingModel
	err := r.DB.WithContext(ctx).
		Where("org_setting_org_id = ?", orgID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return smodel.DefaultOrgSetting(orgID), nil
		}
		return nil, err
	}
	return &m, nil
}

// Upsert menyimpan kebijakan (satu baris per organisasi)
func (r *OrgSettingRepository) Upsert(ctx context.Context, m *smodel.OrgSettingModel) error {
	var existing smodel.OrgSettingModel
	err := r.DB.WithContext(ctx).
		Where("org_setting_org_id = ?", m.OrgSettingOrgID).
		First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.DB.WithContext(ctx).Create(m).Error
		}
		return err
	}
	m.OrgSettingID = existing.OrgSettingID
	return r.DB.WithContext(ctx).Save(m).Error
}
