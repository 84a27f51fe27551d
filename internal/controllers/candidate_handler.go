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

type CandidateStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (models.Candidate, error)
	List(ctx context.Context, companyID bson.ObjectID) ([]models.Candidate, error)
	Insert(ctx context.Context, cand models.Candidate) (models.Candidate, error)
	Update(ctx context.Context, cand models.Candidate) error
}

type JobPostingDirectory interface {
	FindByID(ctx context.Context, id bson.ObjectID) (models.JobPosting, error)
}

type ScheduledInterviewCounter interface {
	CountScheduledByCandidate(ctx context.Context, candidateID bson.ObjectID) (int64, error)
}

type CandidateHandler struct {
	candidates CandidateStore
	jobs       JobPostingDirectory
	interviews ScheduledInterviewCounter
}

func NewCandidateHandler(candidates CandidateStore, jobs JobPostingDirectory, interviews ScheduledInterviewCounter) *CandidateHandler {
	return &CandidateHandler{candidates: candidates, jobs: jobs, interviews: interviews}
}

// ListCandidates godoc
// @Summary      List candidates
// @Tags         recruitment
// @Produce      json
// @Success      200 {object} dto.CandidateListResponse
// @Router       /api/candidates [get]
func (h *CandidateHandler) ListCandidates(c *fiber.Ctx) error {
	viewer, err := viewerFrom(c)
	if err != nil {
		return err
	}

	candidates, err := h.candidates.List(c.Context(), viewer.CompanyID)
	if err != nil {
		return err
	}
	return c.JSON(dto.CandidateListResponse{Success: true, Candidates: candidates})
}

// GetCandidate godoc
// @Summary      Get a candidate
// @Tags         recruitment
// @Produce      json
// @Param        id path string true "Candidate ID"
// @Success      200 {object} dto.CandidateResponse
// @Failure      403 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/candidates/{id} [get]
func (h *CandidateHandler) GetCandidate(c *fiber.Ctx) error {
	viewer, err := viewerFrom(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	candidate, err := guard.Fetch(c.Context(), func(ctx context.Context) (models.Candidate, error) {
		return h.candidates.FindByID(ctx, id)
	}, viewer.CompanyID, "Candidate")
	if err != nil {
		return err
	}
	return c.JSON(dto.CandidateResponse{Success: true, Candidate: candidate})
}

// CreateCandidate godoc
// @Summary      Add a candidate to a job posting
// @Tags         recruitment
// @Accept       json
// @Produce      json
// @Param        body body dto.CandidateCreate true "Candidate"
// @Success      201 {object} dto.CandidateResponse
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/candidates [post]
func (h *CandidateHandler) CreateCandidate(c *fiber.Ctx) error {
	viewer, err := viewerFrom(c)
	if err != nil {
		return err
	}

	var body dto.CandidateCreate
	if err := parseAndValidate(c, &body); err != nil {
		return err
	}

	jobID, err := utils.Oid(body.JobPostingID)
	if err != nil {
		return guard.BadRequest("Invalid job posting")
	}
	job, err := guard.Reference(c.Context(), func(ctx context.Context) (models.JobPosting, error) {
		return h.jobs.FindByID(ctx, jobID)
	}, viewer.CompanyID, "job posting")
	if err != nil {
		return err
	}
	if job.Status == models.JobClosed {
		return guard.BadRequest("Job posting is closed")
	}

	candidate, err := h.candidates.Insert(c.Context(), models.Candidate{
		CompanyID:    viewer.CompanyID,
		JobPostingID: job.ID,
		FirstName:    body.FirstName,
		LastName:     body.LastName,
		Email:        body.Email,
		Phone:        body.Phone,
		ResumeURL:    body.ResumeURL,
		Stage:        models.StageApplied,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CandidateResponse{Success: true, Candidate: candidate})
}

// UpdateCandidate godoc
// @Summary      Update a candidate
// @Description  Partial update; stage transitions go through here
// @Tags         recruitment
// @Accept       json
// @Produce      json
// @Param        id path string true "Candidate ID"
// @Param        body body dto.CandidateUpdate true "Fields to update"
// @Success      200 {object} dto.CandidateResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      403 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/candidates/{id} [put]
func (h *CandidateHandler) UpdateCandidate(c *fiber.Ctx) error {
	viewer, err := viewerFrom(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	candidate, err := guard.Fetch(c.Context(), func(ctx context.Context) (models.Candidate, error) {
		return h.candidates.FindByID(ctx, id)
	}, viewer.CompanyID, "Candidate")
	if err != nil {
		return err
	}

	var body dto.CandidateUpdate
	if err := parseAndValidate(c, &body); err != nil {
		return err
	}

	guard.MergeString(&candidate.FirstName, body.FirstName)
	guard.MergeString(&candidate.LastName, body.LastName)
	guard.MergeString(&candidate.Email, body.Email)
	guard.MergeString(&candidate.Phone, body.Phone)
	guard.MergeString(&candidate.ResumeURL, body.ResumeURL)
	guard.MergeString(&candidate.Stage, body.Stage)
	guard.MergeString(&candidate.Notes, body.Notes)

	if err := h.candidates.Update(c.Context(), candidate); err != nil {
		return err
	}
	return c.JSON(dto.CandidateResponse{Success: true, Candidate: candidate})
}

// DeleteCandidate godoc
// @Summary      Reject a candidate
// @Description  Soft delete; rejected while interviews are still scheduled
// @Tags         recruitment
// @Produce      json
// @Param        id path string true "Candidate ID"
// @Success      200 {object} dto.MessageResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      403 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/candidates/{id} [delete]
func (h *CandidateHandler) DeleteCandidate(c *fiber.Ctx) error {
	viewer, err := viewerFrom(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	candidate, err := guard.Fetch(c.Context(), func(ctx context.Context) (models.Candidate, error) {
		return h.candidates.FindByID(ctx, id)
	}, viewer.CompanyID, "Candidate")
	if err != nil {
		return err
	}

	err = guard.Dependents(c.Context(), "candidate",
		guard.Dependency{
			Label:  "scheduled interview(s)",
			Remedy: "Please cancel them first.",
			Count: func(ctx context.Context) (int64, error) {
				return h.interviews.CountScheduledByCandidate(ctx, candidate.ID)
			},
		},
	)
	if err != nil {
		return err
	}

	candidate.Stage = models.StageRejected
	if err := h.candidates.Update(c.Context(), candidate); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Candidate rejected successfully"})
}
