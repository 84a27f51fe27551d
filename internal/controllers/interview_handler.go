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

type InterviewStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (models.Interview, error)
	List(ctx context.Context, companyID bson.ObjectID) ([]models.Interview, error)
	Insert(ctx context.Context, i models.Interview) (models.Interview, error)
	Update(ctx context.Context, i models.Interview) error
}

type CandidateDirectory interface {
	FindByID(ctx context.Context, id bson.ObjectID) (models.Candidate, error)
}

type InterviewHandler struct {
	interviews InterviewStore
	candidates CandidateDirectory
	users      UserDirectory
}

func NewInterviewHandler(interviews InterviewStore, candidates CandidateDirectory, users UserDirectory) *InterviewHandler {
	return &InterviewHandler{interviews: interviews, candidates: candidates, users: users}
}

// ListInterviews godoc
// @Summary      List interviews
// @Tags         recruitment
// @Produce      json
// @Success      200 {object} dto.InterviewListResponse
// @Router       /api/interviews [get]
func (h *InterviewHandler) ListInterviews(c *fiber.Ctx) error {
	viewer, err := viewerFrom(c)
	if err != nil {
		return err
	}

	interviews, err := h.interviews.List(c.Context(), viewer.CompanyID)
	if err != nil {
		return err
	}
	return c.JSON(dto.InterviewListResponse{Success: true, Interviews: interviews})
}

// GetInterview godoc
// @Summary      Get an interview
// @Tags         recruitment
// @Produce      json
// @Param        id path string true "Interview ID"
// @Success      200 {object} dto.InterviewResponse
// @Failure      403 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/interviews/{id} [get]
func (h *InterviewHandler) GetInterview(c *fiber.Ctx) error {
	viewer, err := viewerFrom(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	interview, err := guard.Fetch(c.Context(), func(ctx context.Context) (models.Interview, error) {
		return h.interviews.FindByID(ctx, id)
	}, viewer.CompanyID, "Interview")
	if err != nil {
		return err
	}
	return c.JSON(dto.InterviewResponse{Success: true, Interview: interview})
}

// CreateInterview godoc
// @Summary      Schedule an interview
// @Tags         recruitment
// @Accept       json
// @Produce      json
// @Param        body body dto.InterviewCreate true "Interview"
// @Success      201 {object} dto.InterviewResponse
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/interviews [post]
func (h *InterviewHandler) CreateInterview(c *fiber.Ctx) error {
	viewer, err := viewerFrom(c)
	if err != nil {
		return err
	}

	var body dto.InterviewCreate
	if err := parseAndValidate(c, &body); err != nil {
		return err
	}

	candidateID, err := utils.Oid(body.CandidateID)
	if err != nil {
		return guard.BadRequest("Invalid candidate")
	}
	candidate, err := guard.Reference(c.Context(), func(ctx context.Context) (models.Candidate, error) {
		return h.candidates.FindByID(ctx, candidateID)
	}, viewer.CompanyID, "candidate")
	if err != nil {
		return err
	}

	interviewerID, err := utils.Oid(body.InterviewerID)
	if err != nil {
		return guard.BadRequest("Invalid interviewer")
	}
	interviewer, err := guard.Reference(c.Context(), func(ctx context.Context) (models.User, error) {
		return h.users.FindByID(ctx, interviewerID)
	}, viewer.CompanyID, "interviewer")
	if err != nil {
		return err
	}

	interview, err := h.interviews.Insert(c.Context(), models.Interview{
		CompanyID:     viewer.CompanyID,
		CandidateID:   candidate.ID,
		InterviewerID: interviewer.ID,
		ScheduledAt:   body.ScheduledAt,
		Type:          body.Type,
		Status:        models.InterviewScheduled,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.InterviewResponse{Success: true, Interview: interview})
}

// UpdateInterview godoc
// @Summary      Update an interview
// @Tags         recruitment
// @Accept       json
// @Produce      json
// @Param        id path string true "Interview ID"
// @Param        body body dto.InterviewUpdate true "Fields to update"
// @Success      200 {object} dto.InterviewResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      403 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/interviews/{id} [put]
func (h *InterviewHandler) UpdateInterview(c *fiber.Ctx) error {
	viewer, err := viewerFrom(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	interview, err := guard.Fetch(c.Context(), func(ctx context.Context) (models.Interview, error) {
		return h.interviews.FindByID(ctx, id)
	}, viewer.CompanyID, "Interview")
	if err != nil {
		return err
	}

	var body dto.InterviewUpdate
	if err := parseAndValidate(c, &body); err != nil {
		return err
	}

	if body.InterviewerID != nil {
		interviewerID, err := utils.Oid(*body.InterviewerID)
		if err != nil {
			return guard.BadRequest("Invalid interviewer")
		}
		_, err = guard.Reference(c.Context(), func(ctx context.Context) (models.User, error) {
			return h.users.FindByID(ctx, interviewerID)
		}, viewer.CompanyID, "interviewer")
		if err != nil {
			return err
		}
		interview.InterviewerID = interviewerID
	}

	guard.MergeString(&interview.Type, body.Type)
	guard.MergeString(&interview.Feedback, body.Feedback)
	guard.MergeString(&interview.Status, body.Status)
	guard.MergeTime(&interview.ScheduledAt, body.ScheduledAt)

	if err := h.interviews.Update(c.Context(), interview); err != nil {
		return err
	}
	return c.JSON(dto.InterviewResponse{Success: true, Interview: interview})
}

// DeleteInterview godoc
// @Summary      Cancel an interview
// @Tags         recruitment
// @Produce      json
// @Param        id path string true "Interview ID"
// @Success      200 {object} dto.MessageResponse
// @Failure      403 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/interviews/{id} [delete]
func (h *InterviewHandler) DeleteInterview(c *fiber.Ctx) error {
	viewer, err := viewerFrom(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	interview, err := guard.Fetch(c.Context(), func(ctx context.Context) (models.Interview, error) {
		return h.interviews.FindByID(ctx, id)
	}, viewer.CompanyID, "Interview")
	if err != nil {
		return err
	}

	interview.Status = models.InterviewCancelled
	if err := h.interviews.Update(c.Context(), interview); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Interview cancelled successfully"})
}
