package dto

import (
	"time"

	"talenthr/internal/models"
)

type JobPostingCreate struct {
	Title        string             `json:"title" validate:"required,min=2"`
	DepartmentID string             `json:"department_id,omitempty"`
	Description  string             `json:"description,omitempty"`
	Requirements []string           `json:"requirements,omitempty"`
	Salary       models.SalaryRange `json:"salary_range,omitempty"`
}

type JobPostingUpdate struct {
	Title        *string             `json:"title,omitempty" validate:"omitempty,min=2"`
	DepartmentID *string             `json:"department_id,omitempty"`
	Description  *string             `json:"description,omitempty"`
	Requirements *[]string           `json:"requirements,omitempty"`
	Salary       *models.SalaryRange `json:"salary_range,omitempty"`
	Status       *string             `json:"status,omitempty" validate:"omitempty,oneof=draft open closed"`
}

type JobPostingResponse struct {
	Success bool              `json:"success"`
	Job     models.JobPosting `json:"job"`
}

type JobPostingListResponse struct {
	Success bool                `json:"success"`
	Jobs    []models.JobPosting `json:"jobs"`
}

type CandidateCreate struct {
	JobPostingID string `json:"job_posting_id" validate:"required"`
	FirstName    string `json:"firstname" validate:"required"`
	LastName     string `json:"lastname" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone,omitempty"`
	ResumeURL    string `json:"resume_url,omitempty" validate:"omitempty,url"`
}

type CandidateUpdate struct {
	FirstName *string `json:"firstname,omitempty" validate:"omitempty,min=1"`
	LastName  *string `json:"lastname,omitempty" validate:"omitempty,min=1"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     *string `json:"phone,omitempty"`
	ResumeURL *string `json:"resume_url,omitempty" validate:"omitempty,url"`
	Stage     *string `json:"stage,omitempty" validate:"omitempty,oneof=applied screening interview offer hired rejected"`
	Notes     *string `json:"notes,omitempty"`
}

type CandidateResponse struct {
	Success   bool             `json:"success"`
	Candidate models.Candidate `json:"candidate"`
}

type CandidateListResponse struct {
	Success    bool               `json:"success"`
	Candidates []models.Candidate `json:"candidates"`
}

type InterviewCreate struct {
	CandidateID   string    `json:"candidate_id" validate:"required"`
	InterviewerID string    `json:"interviewer_id" validate:"required"`
	ScheduledAt   time.Time `json:"scheduled_at" validate:"required"`
	Type          string    `json:"type,omitempty"`
}

type InterviewUpdate struct {
	InterviewerID *string    `json:"interviewer_id,omitempty"`
	ScheduledAt   *time.Time `json:"scheduled_at,omitempty"`
	Type          *string    `json:"type,omitempty"`
	Feedback      *string    `json:"feedback,omitempty"`
	Status        *string    `json:"status,omitempty" validate:"omitempty,oneof=scheduled completed cancelled"`
}

type InterviewResponse struct {
	Success   bool             `json:"success"`
	Interview models.Interview `json:"interview"`
}

type InterviewListResponse struct {
	Success    bool               `json:"success"`
	Interviews []models.Interview `json:"interviews"`
}
