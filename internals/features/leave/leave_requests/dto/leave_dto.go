// internals/features/leave/leave_requests/dto/leave_dto.go
package dto

type CreateLeaveRequest struct {
	Type      string  `json:"leave_request_type" validate:"required,oneof=annual sick unpaid other"`
	StartDate string  `json:"leave_request_start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string  `json:"leave_request_end_date" validate:"required,datetime=2006-01-02"`
	Reason    *string `json:"leave_request_reason,omitempty" validate:"omitempty,max=500"`
}

type ReviewLeaveRequest struct {
	Note *string `json:"note,omitempty" validate:"omitempty,max=500"`
}
