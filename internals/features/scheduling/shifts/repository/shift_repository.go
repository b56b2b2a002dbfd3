// internals/features/scheduling/shifts/repository/shift_repository.go
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	shmodel "klinikku_backend/internals/features/scheduling/shifts/model"
)

type ShiftRepository struct {
	DB *gorm.DB
}

func NewShiftRepository(db *gorm.DB) *ShiftRepository {
	return &ShiftRepository{DB: db}
}

// HasShiftOn: dipakai engine untuk menandai hari "expected"
func (r *ShiftRepository) HasShiftOn(ctx context.Context, staffID uuid.UUID, date time.Time) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&shmodel.ShiftModel{}).
		Where("shift_staff_id = ? AND shift_date = ?", staffID, date.Format("2006-01-02")).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByRange untuk kalender jadwal; staffID opsional
func (r *ShiftRepository) ListByRange(ctx context.Context, orgID uuid.UUID, staffID *uuid.UUID, start, end time.Time) ([]shmodel.ShiftModel, error) {
	q := r.DB.WithContext(ctx).
		Where("shift_org_id = ? AND shift_date BETWEEN ? AND ?",
			orgID, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if staffID != nil {
		q = q.Where("shift_staff_id = ?", *staffID)
	}

	var rows []shmodel.ShiftModel
	if err := q.Order("shift_date ASC, shift_start_time ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
