// internals/features/leave/leave_requests/repository/leave_repository.go
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	lmodel "klinikku_backend/internals/features/leave/leave_requests/model"
)

type LeaveRepository struct {
	DB *gorm.DB
}

func NewLeaveRepository(db *gorm.DB) *LeaveRepository {
	return &LeaveRepository{DB: db}
}

// IsOnApprovedLeave: dipakai engine untuk klasifikasi status On Leave
func (r *LeaveRepository) IsOnApprovedLeave(ctx context.Context, staffID uuid.UUID, date time.Time) (bool, error) {
	var count int64
	day := date.Format("2006-01-02")
	err := r.DB.WithContext(ctx).Model(&lmodel.LeaveRequestModel{}).
		Where("leave_request_staff_id = ? AND leave_request_status = ? AND leave_request_start_date <= ? AND leave_request_end_date >= ?",
			staffID, lmodel.LeaveStatusApproved, day, day).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// HasOverlap: ada pengajuan pending/approved yang beririsan dengan rentang baru
func (r *LeaveRepository) HasOverlap(ctx context.Context, staffID uuid.UUID, start, end time.Time) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&lmodel.LeaveRequestModel{}).
		Where("leave_request_staff_id = ? AND leave_request_status IN ? AND leave_request_start_date <= ? AND leave_request_end_date >= ?",
			staffID,
			[]lmodel.LeaveStatus{lmodel.LeaveStatusPending, lmodel.LeaveStatusApproved},
			end.Format("2006-01-02"), start.Format("2006-01-02")).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
