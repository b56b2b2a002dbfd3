// internals/features/attendance/attendance/repository/attendance_repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	amodel "klinikku_backend/internals/features/attendance/attendance/model"
)

// AttendanceRepository: implementasi RecordStore di atas GORM.
// Update per-baris Postgres adalah titik serialisasi transisi
// (single-writer-per-record), engine tidak perlu locking sendiri.
type AttendanceRepository struct {
	DB *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{DB: db}
}

func (r *AttendanceRepository) GetForDate(ctx context.Context, orgID, staffID uuid.UUID, date time.Time) (*amodel.AttendanceRecordModel, error) {
	var m amodel.AttendanceRecordModel
	err := r.DB.WithContext(ctx).
		Where("attendance_record_org_id = ? AND attendance_record_staff_id = ? AND attendance_record_date = ?",
			orgID, staffID, date.Format("2006-01-02")).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *AttendanceRepository) GetByID(ctx context.Context, orgID, recordID uuid.UUID) (*amodel.AttendanceRecordModel, error) {
	var m amodel.AttendanceRecordModel
	err := r.DB.WithContext(ctx).
		Where("attendance_record_id = ? AND attendance_record_org_id = ?", recordID, orgID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *AttendanceRepository) Create(ctx context.Context, rec *amodel.AttendanceRecordModel) error {
	return r.DB.WithContext(ctx).Create(rec).Error
}

func (r *AttendanceRepository) Update(ctx context.Context, rec *amodel.AttendanceRecordModel) error {
	return r.DB.WithContext(ctx).Save(rec).Error
}

// GetOpenForStaff: record hari berjalan yang masih terbuka (untuk view live)
func (r *AttendanceRepository) GetOpenForStaff(ctx context.Context, orgID, staffID uuid.UUID) (*amodel.AttendanceRecordModel, error) {
	var m amodel.AttendanceRecordModel
	err := r.DB.WithContext(ctx).
		Where("attendance_record_org_id = ? AND attendance_record_staff_id = ? AND attendance_record_clock_in IS NOT NULL AND attendance_record_clock_out IS NULL",
			orgID, staffID).
		Order("attendance_record_date DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// QueryByDateRange untuk laporan admin; staffID opsional
func (r *AttendanceRepository) QueryByDateRange(ctx context.Context, orgID uuid.UUID, staffID *uuid.UUID, start, end time.Time) ([]amodel.AttendanceRecordModel, error) {
	q := r.DB.WithContext(ctx).
		Where("attendance_record_org_id = ? AND attendance_record_date BETWEEN ? AND ?",
			orgID, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if staffID != nil {
		q = q.Where("attendance_record_staff_id = ?", *staffID)
	}

	var rows []amodel.AttendanceRecordModel
	if err := q.Order("attendance_record_date ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
