package dto

import (
	"time"

	"talenthr/internal/models"
)

type LeaveCreate struct {
	EmployeeID string    `json:"employee_id" validate:"required"`
	Type       string    `json:"type" validate:"required,oneof=annual sick unpaid parental"`
	StartDate  time.Time `json:"start_date" validate:"required"`
	EndDate    time.Time `json:"end_date" validate:"required,gtefield=StartDate"`
	Reason     string    `json:"reason,omitempty"`
}

type LeaveUpdate struct {
	Type      *string    `json:"type,omitempty" validate:"omitempty,oneof=annual sick unpaid parental"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Reason    *string    `json:"reason,omitempty"`
	Status    *string    `json:"status,omitempty" validate:"omitempty,oneof=pending approved rejected cancelled"`
}

type LeaveResponse struct {
	Success bool                `json:"success"`
	Leave   models.LeaveRequest `json:"leave"`
}

type LeaveListResponse struct {
	Success bool                  `json:"success"`
	Leaves  []models.LeaveRequest `json:"leaves"`
}
