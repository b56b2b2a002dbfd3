// internals/features/users/staff/repository/staff_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	stmodel "klinikku_backend/internals/features/users/staff/model"
)

type StaffRepository struct {
	DB *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{DB: db}
}

// Get: (nil, nil) kalau staff tidak ada
func (r *StaffRepository) Get(ctx context.Context, staffID uuid.UUID) (*stmodel.StaffModel, error) {
	var m stmodel.StaffModel
	err := r.DB.WithContext(ctx).
		Where("staff_id = ?", staffID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// GetByUser: profil staff milik satu akun pada satu organisasi
func (r *StaffRepository) GetByUser(ctx context.Context, userID uuid.UUID) (*stmodel.StaffModel, error) {
	var m stmodel.StaffModel
	err := r.DB.WithContext(ctx).
		Where("staff_user_id = ?", userID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// ListByOrg dengan filter status opsional
func (r *StaffRepository) ListByOrg(ctx context.Context, orgID uuid.UUID, status *stmodel.StaffStatus, limit, offset int) ([]stmodel.StaffModel, int64, error) {
	q := r.DB.WithContext(ctx).Model(&stmodel.StaffModel{}).
		Where("staff_org_id = ?", orgID)
	if status != nil {
		q = q.Where("staff_status = ?", *status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []stmodel.StaffModel
	if err := q.Order("staff_full_name ASC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
