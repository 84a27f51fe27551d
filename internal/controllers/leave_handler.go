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

type LeaveStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (models.LeaveRequest, error)
	List(ctx context.Context, companyID bson.ObjectID) ([]models.LeaveRequest, error)
	Insert(ctx context.Context, l models.LeaveRequest) (models.LeaveRequest, error)
	Update(ctx context.Context, l models.LeaveRequest) error
}

type EmployeeDirectory interface {
	FindByID(ctx context.Context, id bson.ObjectID) (models.Employee, error)
}

type LeaveHandler struct {
	leaves    LeaveStore
	employees EmployeeDirectory
}

func NewLeaveHandler(leaves LeaveStore, employees EmployeeDirectory) *LeaveHandler {
	return &LeaveHandler{leaves: leaves, employees: employees}
}

// ListLeaves godoc
// @Summary      List leave requests
// @Tags         leave
// @Produce      json
// @Success      200 {object} dto.LeaveListResponse
// @Router       /api/leaves [get]
func (h *LeaveHandler) ListLeaves(c *fiber.Ctx) error {
	viewer, err := viewerFrom(c)
	if err != nil {
		return err
	}

	leaves, err := h.leaves.List(c.Context(), viewer.CompanyID)
	if err != nil {
		return err
	}
	return c.JSON(dto.LeaveListResponse{Success: true, Leaves: leaves})
}

// GetLeave godoc
// @Summary      Get a leave request
// @Tags         leave
// @Produce      json
// @Param        id path string true "Leave Request ID"
// @Success      200 {object} dto.LeaveResponse
// @Failure      403 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/leaves/{id} [get]
func (h *LeaveHandler) GetLeave(c *fiber.Ctx) error {
	viewer, err := viewerFrom(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	leave, err := guard.Fetch(c.Context(), func(ctx context.Context) (models.LeaveRequest, error) {
		return h.leaves.FindByID(ctx, id)
	}, viewer.CompanyID, "Leave request")
	if err != nil {
		return err
	}
	return c.JSON(dto.LeaveResponse{Success: true, Leave: leave})
}

// CreateLeave godoc
// @Summary      File a leave request
// @Tags         leave
// @Accept       json
// @Produce      json
// @Param        body body dto.LeaveCreate true "Leave request"
// @Success      201 {object} dto.LeaveResponse
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/leaves [post]
func (h *LeaveHandler) CreateLeave(c *fiber.Ctx) error {
	viewer, err := viewerFrom(c)
	if err != nil {
		return err
	}

	var body dto.LeaveCreate
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

	leave, err := h.leaves.Insert(c.Context(), models.LeaveRequest{
		CompanyID:  viewer.CompanyID,
		EmployeeID: employee.ID,
		Type:       body.Type,
		StartDate:  body.StartDate,
		EndDate:    body.EndDate,
		Reason:     body.Reason,
		Status:     models.LeavePending,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.LeaveResponse{Success: true, Leave: leave})
}

// UpdateLeave godoc
// @Summary      Update a leave request
// @Description  Partial update; approvals and rejections set status and record the decider
// @Tags         leave
// @Accept       json
// @Produce      json
// @Param        id path string true "Leave Request ID"
// @Param        body body dto.LeaveUpdate true "Fields to update"
// @Success      200 {object} dto.LeaveResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      403 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/leaves/{id} [put]
func (h *LeaveHandler) UpdateLeave(c *fiber.Ctx) error {
	viewer, err := viewerFrom(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	leave, err := guard.Fetch(c.Context(), func(ctx context.Context) (models.LeaveRequest, error) {
		return h.leaves.FindByID(ctx, id)
	}, viewer.CompanyID, "Leave request")
	if err != nil {
		return err
	}

	var body dto.LeaveUpdate
	if err := parseAndValidate(c, &body); err != nil {
		return err
	}

	guard.MergeString(&leave.Type, body.Type)
	guard.MergeString(&leave.Reason, body.Reason)
	guard.MergeTime(&leave.StartDate, body.StartDate)
	guard.MergeTime(&leave.EndDate, body.EndDate)
	if body.Status != nil {
		leave.Status = *body.Status
		leave.DecidedBy = viewer.ID
	}

	if leave.EndDate.Before(leave.StartDate) {
		return guard.BadRequest("End date must not be before start date")
	}

	if err := h.leaves.Update(c.Context(), leave); err != nil {
		return err
	}
	return c.JSON(dto.LeaveResponse{Success: true, Leave: leave})
}
