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

type ReviewStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (models.Review, error)
	List(ctx context.Context, companyID bson.ObjectID) ([]models.Review, error)
	Insert(ctx context.Context, r models.Review) (models.Review, error)
	Update(ctx context.Context, r models.Review) error
}

type ReviewHandler struct {
	reviews   ReviewStore
	employees EmployeeDirectory
}

func NewReviewHandler(reviews ReviewStore, employees EmployeeDirectory) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, employees: employees}
}

// ListReviews godoc
// @Summary      List performance reviews
// @Tags         performance
// @Produce      json
// @Success      200 {object} dto.ReviewListResponse
// @Router       /api/reviews [get]
func (h *ReviewHandler) ListReviews(c *fiber.Ctx) error {
	viewer, err := viewerFrom(c)
	if err != nil {
		return err
	}

	reviews, err := h.reviews.List(c.Context(), viewer.CompanyID)
	if err != nil {
		return err
	}
	return c.JSON(dto.ReviewListResponse{Success: true, Reviews: reviews})
}

// GetReview godoc
// @Summary      Get a performance review
// @Tags         performance
// @Produce      json
// @Param        id path string true "Review ID"
// @Success      200 {object} dto.ReviewResponse
// @Failure      403 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/reviews/{id} [get]
func (h *ReviewHandler) GetReview(c *fiber.Ctx) error {
	viewer, err := viewerFrom(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	review, err := guard.Fetch(c.Context(), func(ctx context.Context) (models.Review, error) {
		return h.reviews.FindByID(ctx, id)
	}, viewer.CompanyID, "Review")
	if err != nil {
		return err
	}
	return c.JSON(dto.ReviewResponse{Success: true, Review: review})
}

// CreateReview godoc
// @Summary      Start a performance review
// @Tags         performance
// @Accept       json
// @Produce      json
// @Param        body body dto.ReviewCreate true "Review"
// @Success      201 {object} dto.ReviewResponse
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/reviews [post]
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	viewer, err := viewerFrom(c)
	if err != nil {
		return err
	}

	var body dto.ReviewCreate
	if err := parseAndValidate(c, &body); err != nil {
		return err
	}

	employeeID, err := utils.Oid(body.EmployeeID)
	if err != nil {
		return guard.BadRequest("Invalid employee")
	}
	employee, err := guard.Reference(c.Context(), func(ctx context.Context) (models.Employee, error) {
		return h.employees.FindByID(ctx, employeeID)
	}, viewer.CompanyID, "employee")
	if err != nil {
		return err
	}

	review, err := h.reviews.Insert(c.Context(), models.Review{
		CompanyID:  viewer.CompanyID,
		EmployeeID: employee.ID,
		ReviewerID: viewer.ID,
		Period:     body.Period,
		Rating:     body.Rating,
		Strengths:  body.Strengths,
		Goals:      body.Goals,
		Status:     models.ReviewDraft,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ReviewResponse{Success: true, Review: review})
}

// UpdateReview godoc
// @Summary      Update a performance review
// @Tags         performance
// @Accept       json
// @Produce      json
// @Param        id path string true "Review ID"
// @Param        body body dto.ReviewUpdate true "Fields to update"
// @Success      200 {object} dto.ReviewResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      403 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/reviews/{id} [put]
func (h *ReviewHandler) UpdateReview(c *fiber.Ctx) error {
	viewer, err := viewerFrom(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	review, err := guard.Fetch(c.Context(), func(ctx context.Context) (models.Review, error) {
		return h.reviews.FindByID(ctx, id)
	}, viewer.CompanyID, "Review")
	if err != nil {
		return err
	}

	var body dto.ReviewUpdate
	if err := parseAndValidate(c, &body); err != nil {
		return err
	}

	guard.MergeString(&review.Strengths, body.Strengths)
	guard.MergeString(&review.Improvements, body.Improvements)
	guard.MergeString(&review.Status, body.Status)
	if body.Rating != nil {
		review.Rating = *body.Rating
	}
	if body.Goals != nil {
		review.Goals = *body.Goals
	}

	if err := h.reviews.Update(c.Context(), review); err != nil {
		return err
	}
	return c.JSON(dto.ReviewResponse{Success: true, Review: review})
}
