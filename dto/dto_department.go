package dto

import "talenthr/internal/models"

type DepartmentCreate struct {
	Name               string  `json:"name" validate:"required,min=1,max=120"`
	Code               string  `json:"code,omitempty"`
	Description        string  `json:"description,omitempty"`
	ParentDepartmentID string  `json:"parent_department_id,omitempty"`
	ManagerID          string  `json:"manager_id,omitempty"`
	Budget             float64 `json:"budget,omitempty" validate:"omitempty,gte=0"`
	Location           string  `json:"location,omitempty"`
}

// Update fields are pointers so absent and present-but-empty are
// distinguishable; empty parent/manager clears the reference.
type DepartmentUpdate struct {
	Name               *string  `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Code               *string  `json:"code,omitempty"`
	Description        *string  `json:"description,omitempty"`
	ParentDepartmentID *string  `json:"parent_department_id,omitempty"`
	ManagerID          *string  `json:"manager_id,omitempty"`
	Budget             *float64 `json:"budget,omitempty" validate:"omitempty,gte=0"`
	Location           *string  `json:"location,omitempty"`
	Status             *string  `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

type DepartmentResponse struct {
	Success    bool              `json:"success"`
	Department models.Department `json:"department"`
}

type DepartmentListResponse struct {
	Success     bool                `json:"success"`
	Departments []models.Department `json:"departments"`
}
