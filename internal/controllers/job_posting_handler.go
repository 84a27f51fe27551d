package controllers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"talenthr/dto"
	"talenthr/internal/guard"
	"talenthr/internal/models"
	"talenthr/utils"
)

type JobPostingStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (models.JobPosting, error)
	List(ctx context.Context, companyID bson.ObjectID) ([]models.JobPosting, error)
	Insert(ctx context.Context, j models.JobPosting) (models.JobPosting, error)
	Update(ctx context.Context, j models.JobPosting) error
}

type PipelineCounter interface {
	CountInPipeline(ctx context.Context, jobPostingID bson.ObjectID) (int64, error)
}

type JobPostingHandler struct {
	jobs        JobPostingStore
	departments DepartmentDirectory
	candidates  PipelineCounter
}

func NewJobPostingHandler(jobs JobPostingStore, departments DepartmentDirectory, candidates PipelineCounter) *JobPostingHandler {
	return &JobPostingHandler{jobs: jobs, departments: departments, candidates: candidates}
}

func (h *JobPostingHandler) checkDepartment(c *fiber.Ctx, viewer models.User, departmentHex string) error {
	if departmentHex == "" {
		return nil
	}
	departmentID, err := utils.Oid(departmentHex)
	if err != nil {
		return guard.BadRequest("Invalid department")
	}
	_, err = guard.Reference(c.Context(), func(ctx context.Context) (models.Department, error) {
		return h.departments.FindByID(ctx, departmentID)
	}, viewer.CompanyID, "department")
	return err
}

// ListJobPostings godoc
// @Summary      List job postings
// @Tags         recruitment
// @Produce      json
// @Success      200 {object} dto.JobPostingListResponse
// @Router       /api/jobs [get]
func (h *JobPostingHandler) ListJobPostings(c *fiber.Ctx) error {
	viewer, err := viewerFrom(c)
	if err != nil {
		return err
	}

	jobs, err := h.jobs.List(c.Context(), viewer.CompanyID)
	if err != nil {
		return err
	}
	return c.JSON(dto.JobPostingListResponse{Success: true, Jobs: jobs})
}

// GetJobPosting godoc
// @Summary      Get a job posting
// @Tags         recruitment
// @Produce      json
// @Param        id path string true "Job Posting ID"
// @Success      200 {object} dto.JobPostingResponse
// @Failure      403 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/jobs/{id} [get]
func (h *JobPostingHandler) GetJobPosting(c *fiber.Ctx) error {
	viewer, err := viewerFrom(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	job, err := guard.Fetch(c.Context(), func(ctx context.Context) (models.JobPosting, error) {
		return h.jobs.FindByID(ctx, id)
	}, viewer.CompanyID, "Job posting")
	if err != nil {
		return err
	}
	return c.JSON(dto.JobPostingResponse{Success: true, Job: job})
}

// CreateJobPosting godoc
// @Summary      Create a job posting
// @Tags         recruitment
// @Accept       json
// @Produce      json
// @Param        body body dto.JobPostingCreate true "Job posting"
// @Success      201 {object} dto.JobPostingResponse
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/jobs [post]
func (h *JobPostingHandler) CreateJobPosting(c *fiber.Ctx) error {
	viewer, err := viewerFrom(c)
	if err != nil {
		return err
	}

	var body dto.JobPostingCreate
	if err := parseAndValidate(c, &body); err != nil {
		return err
	}

	if err := h.checkDepartment(c, viewer, body.DepartmentID); err != nil {
		return err
	}

	job := models.JobPosting{
		CompanyID:    viewer.CompanyID,
		Title:        body.Title,
		Description:  body.Description,
		Requirements: body.Requirements,
		Salary:       body.Salary,
		Status:       models.JobDraft,
	}
	if body.DepartmentID != "" {
		job.DepartmentID, _ = utils.Oid(body.DepartmentID)
	}

	job, err = h.jobs.Insert(c.Context(), job)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.JobPostingResponse{Success: true, Job: job})
}

// UpdateJobPosting godoc
// @Summary      Update a job posting
// @Tags         recruitment
// @Accept       json
// @Produce      json
// @Param        id path string true "Job Posting ID"
// @Param        body body dto.JobPostingUpdate true "Fields to update"
// @Success      200 {object} dto.JobPostingResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      403 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/jobs/{id} [put]
func (h *JobPostingHandler) UpdateJobPosting(c *fiber.Ctx) error {
	viewer, err := viewerFrom(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	job, err := guard.Fetch(c.Context(), func(ctx context.Context) (models.JobPosting, error) {
		return h.jobs.FindByID(ctx, id)
	}, viewer.CompanyID, "Job posting")
	if err != nil {
		return err
	}

	var body dto.JobPostingUpdate
	if err := parseAndValidate(c, &body); err != nil {
		return err
	}

	departmentHex := ""
	if body.DepartmentID != nil {
		departmentHex = *body.DepartmentID
	}
	if err := h.checkDepartment(c, viewer, departmentHex); err != nil {
		return err
	}

	guard.MergeString(&job.Title, body.Title)
	guard.MergeString(&job.Description, body.Description)
	guard.MergeString(&job.Status, body.Status)
	if body.Requirements != nil {
		job.Requirements = *body.Requirements
	}
	if body.Salary != nil {
		job.Salary = *body.Salary
	}
	if err := guard.MergeRef(&job.DepartmentID, body.DepartmentID, "department"); err != nil {
		return err
	}

	if err := h.jobs.Update(c.Context(), job); err != nil {
		return err
	}
	return c.JSON(dto.JobPostingResponse{Success: true, Job: job})
}

// DeleteJobPosting godoc
// @Summary      Close a job posting
// @Description  Soft delete; rejected while candidates are still in the pipeline
// @Tags         recruitment
// @Produce      json
// @Param        id path string true "Job Posting ID"
// @Success      200 {object} dto.MessageResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      403 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/jobs/{id} [delete]
func (h *JobPostingHandler) DeleteJobPosting(c *fiber.Ctx) error {
	viewer, err := viewerFrom(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	job, err := guard.Fetch(c.Context(), func(ctx context.Context) (models.JobPosting, error) {
		return h.jobs.FindByID(ctx, id)
	}, viewer.CompanyID, "Job posting")
	if err != nil {
		return err
	}

	err = guard.Dependents(c.Context(), "job posting",
		guard.Dependency{
			Label:  "candidate(s) in the pipeline",
			Remedy: "Please resolve them first.",
			Count: func(ctx context.Context) (int64, error) {
				return h.candidates.CountInPipeline(ctx, job.ID)
			},
		},
	)
	if err != nil {
		return err
	}

	job.Status = models.JobClosed
	if err := h.jobs.Update(c.Context(), job); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Job posting closed successfully"})
}
