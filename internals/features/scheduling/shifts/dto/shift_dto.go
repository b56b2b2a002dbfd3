// internals/features/scheduling/shifts/dto/shift_dto.go
package dto

import "github.com/google/uuid"

type AssignShiftRequest struct {
	StaffID    uuid.UUID  `json:"shift_staff_id" validate:"required"`
	LocationID *uuid.UUID `json:"shift_location_id,omitempty"`

	Date      string  `json:"shift_date" validate:"required,datetime=2006-01-02"`
	StartTime string  `json:"shift_start_time" validate:"required,datetime=15:04"`
	EndTime   string  `json:"shift_end_time" validate:"required,datetime=15:04"`
	Note      *string `json:"shift_note,omitempty" validate:"omitempty,max=300"`
}

type UpdateShiftRequest struct {
	LocationID *uuid.UUID `json:"shift_location_id,omitempty"`
	Date       *string    `json:"shift_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StartTime  *string    `json:"shift_start_time,omitempty" validate:"omitempty,datetime=15:04"`
	EndTime    *string    `json:"shift_end_time,omitempty" validate:"omitempty,datetime=15:04"`
	Note       *string    `json:"shift_note,omitempty" validate:"omitempty,max=300"`
}

type ShiftRangeQuery struct {
	Start string `query:"start" validate:"required,datetime=2006-01-02"`
	End   string `query:"end" validate:"required,datetime=2006-01-02"`
}
