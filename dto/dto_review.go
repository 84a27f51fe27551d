package dto

import "talenthr/internal/models"

type ReviewCreate struct {
	EmployeeID string        `json:"employee_id" validate:"required"`
	Period     string        `json:"period" validate:"required"`
	Rating     int           `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Strengths  string        `json:"strengths,omitempty"`
	Goals      []models.Goal `json:"goals,omitempty"`
}

type ReviewUpdate struct {
	Rating       *int           `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Strengths    *string        `json:"strengths,omitempty"`
	Improvements *string        `json:"improvements,omitempty"`
	Goals        *[]models.Goal `json:"goals,omitempty"`
	Status       *string        `json:"status,omitempty" validate:"omitempty,oneof=draft submitted acknowledged"`
}

type ReviewResponse struct {
	Success bool          `json:"success"`
	Review  models.Review `json:"review"`
}

type ReviewListResponse struct {
	Success bool            `json:"success"`
	Reviews []models.Review `json:"reviews"`
}
