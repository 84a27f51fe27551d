package dto

import (
	"time"

	"talenthr/internal/models"
)

type EmployeeCreate struct {
	UserID         string                  `json:"user_id" validate:"required"`
	DepartmentID   string                  `json:"department_id,omitempty"`
	ManagerID      string                  `json:"manager_id,omitempty"`
	Position       string                  `json:"position" validate:"required"`
	EmploymentType string                  `json:"employment_type" validate:"required,oneof=full-time part-time contract intern"`
	HireDate       time.Time               `json:"hire_date" validate:"required"`
	Salary         float64                 `json:"salary,omitempty" validate:"omitempty,gte=0"`
	Contact        models.Contact          `json:"contact,omitempty"`
	Emergency      models.EmergencyContact `json:"emergency_contact,omitempty"`
}

type EmployeeUpdate struct {
	DepartmentID   *string                  `json:"department_id,omitempty"`
	ManagerID      *string                  `json:"manager_id,omitempty"`
	Position       *string                  `json:"position,omitempty" validate:"omitempty,min=1"`
	EmploymentType *string                  `json:"employment_type,omitempty" validate:"omitempty,oneof=full-time part-time contract intern"`
	HireDate       *time.Time               `json:"hire_date,omitempty"`
	Salary         *float64                 `json:"salary,omitempty" validate:"omitempty,gte=0"`
	Contact        *models.Contact          `json:"contact,omitempty"`
	Emergency      *models.EmergencyContact `json:"emergency_contact,omitempty"`
	Status         *string                  `json:"status,omitempty" validate:"omitempty,oneof=active on-leave terminated resigned"`
}

type EmployeeResponse struct {
	Success  bool            `json:"success"`
	Employee models.Employee `json:"employee"`
}

type EmployeeListResponse struct {
	Success   bool              `json:"success"`
	Employees []models.Employee `json:"employees"`
}
