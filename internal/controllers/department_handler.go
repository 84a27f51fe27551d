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

type DepartmentStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (models.Department, error)
	List(ctx context.Context, companyID bson.ObjectID) ([]models.Department, error)
	Insert(ctx context.Context, d models.Department) (models.Department, error)
	Update(ctx context.Context, d models.Department) error
	CountByName(ctx context.Context, companyID bson.ObjectID, name string, exclude bson.ObjectID) (int64, error)
	CountActiveChildren(ctx context.Context, parentID bson.ObjectID) (int64, error)
}

type UserDirectory interface {
	FindByID(ctx context.Context, id bson.ObjectID) (models.User, error)
}

type DepartmentEmployees interface {
	CountActiveByDepartment(ctx context.Context, departmentID bson.ObjectID) (int64, error)
}

type DepartmentHandler struct {
	departments DepartmentStore
	users       UserDirectory
	employees   DepartmentEmployees
}

func NewDepartmentHandler(departments DepartmentStore, users UserDirectory, employees DepartmentEmployees) *DepartmentHandler {
	return &DepartmentHandler{departments: departments, users: users, employees: employees}
}

// checkRefs validates the parent and manager references on a payload. Empty
// hex means "not supplied here"; self and cross-tenant parents are rejected.
func (h *DepartmentHandler) checkRefs(c *fiber.Ctx, viewer models.User, own bson.ObjectID, parentHex, managerHex string) error {
	if parentHex != "" {
		parentID, err := utils.Oid(parentHex)
		if err != nil {
			return guard.BadRequest("Invalid parent department")
		}
		if err := guard.SelfParent(parentID, own, "Department"); err != nil {
			return err
		}
		_, err = guard.Reference(c.Context(), func(ctx context.Context) (models.Department, error) {
			return h.departments.FindByID(ctx, parentID)
		}, viewer.CompanyID, "parent department")
		if err != nil {
			return err
		}
	}

	if managerHex != "" {
		managerID, err := utils.Oid(managerHex)
		if err != nil {
			return guard.BadRequest("Invalid manager")
		}
		_, err = guard.Reference(c.Context(), func(ctx context.Context) (models.User, error) {
			return h.users.FindByID(ctx, managerID)
		}, viewer.CompanyID, "manager")
		if err != nil {
			return err
		}
	}
	return nil
}

// ListDepartments godoc
// @Summary      List departments
// @Tags         departments
// @Produce      json
// @Success      200 {object} dto.DepartmentListResponse
// @Router       /api/departments [get]
func (h *DepartmentHandler) ListDepartments(c *fiber.Ctx) error {
	viewer, err := viewerFrom(c)
	if err != nil {
		return err
	}

	departments, err := h.departments.List(c.Context(), viewer.CompanyID)
	if err != nil {
		return err
	}
	return c.JSON(dto.DepartmentListResponse{Success: true, Departments: departments})
}

// GetDepartment godoc
// @Summary      Get a department
// @Tags         departments
// @Produce      json
// @Param        id path string true "Department ID"
// @Success      200 {object} dto.DepartmentResponse
// @Failure      403 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/departments/{id} [get]
func (h *DepartmentHandler) GetDepartment(c *fiber.Ctx) error {
	viewer, err := viewerFrom(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	department, err := guard.Fetch(c.Context(), func(ctx context.Context) (models.Department, error) {
		return h.departments.FindByID(ctx, id)
	}, viewer.CompanyID, "Department")
	if err != nil {
		return err
	}
	return c.JSON(dto.DepartmentResponse{Success: true, Department: department})
}

// CreateDepartment godoc
// @Summary      Create a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Param        body body dto.DepartmentCreate true "Department"
// @Success      201 {object} dto.DepartmentResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Router       /api/departments [post]
func (h *DepartmentHandler) CreateDepartment(c *fiber.Ctx) error {
	viewer, err := viewerFrom(c)
	if err != nil {
		return err
	}

	var body dto.DepartmentCreate
	if err := parseAndValidate(c, &body); err != nil {
		return err
	}

	taken, err := h.departments.CountByName(c.Context(), viewer.CompanyID, body.Name, bson.NilObjectID)
	if err != nil {
		return err
	}
	if taken > 0 {
		return guard.Conflict("Department name already exists")
	}

	if err := h.checkRefs(c, viewer, bson.NilObjectID, body.ParentDepartmentID, body.ManagerID); err != nil {
		return err
	}

	department := models.Department{
		CompanyID:   viewer.CompanyID,
		Name:        body.Name,
		Code:        body.Code,
		Description: body.Description,
		Budget:      body.Budget,
		Location:    body.Location,
		Status:      models.DepartmentActive,
	}
	if body.ParentDepartmentID != "" {
		department.ParentDepartmentID, _ = utils.Oid(body.ParentDepartmentID)
	}
	if body.ManagerID != "" {
		department.ManagerID, _ = utils.Oid(body.ManagerID)
	}

	department, err = h.departments.Insert(c.Context(), department)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DepartmentResponse{Success: true, Department: department})
}

// UpdateDepartment godoc
// @Summary      Update a department
// @Description  Partial update; only supplied fields overwrite, empty parent/manager clears the reference
// @Tags         departments
// @Accept       json
// @Produce      json
// @Param        id path string true "Department ID"
// @Param        body body dto.DepartmentUpdate true "Fields to update"
// @Success      200 {object} dto.DepartmentResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      403 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Router       /api/departments/{id} [put]
func (h *DepartmentHandler) UpdateDepartment(c *fiber.Ctx) error {
	viewer, err := viewerFrom(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	department, err := guard.Fetch(c.Context(), func(ctx context.Context) (models.Department, error) {
		return h.departments.FindByID(ctx, id)
	}, viewer.CompanyID, "Department")
	if err != nil {
		return err
	}

	var body dto.DepartmentUpdate
	if err := parseAndValidate(c, &body); err != nil {
		return err
	}

	if body.Name != nil && *body.Name != department.Name {
		taken, err := h.departments.CountByName(c.Context(), viewer.CompanyID, *body.Name, department.ID)
		if err != nil {
			return err
		}
		if taken > 0 {
			return guard.Conflict("Department name already exists")
		}
	}

	parentHex := ""
	if body.ParentDepartmentID != nil {
		parentHex = *body.ParentDepartmentID
	}
	managerHex := ""
	if body.ManagerID != nil {
		managerHex = *body.ManagerID
	}
	if err := h.checkRefs(c, viewer, department.ID, parentHex, managerHex); err != nil {
		return err
	}

	guard.MergeString(&department.Name, body.Name)
	guard.MergeString(&department.Code, body.Code)
	guard.MergeString(&department.Description, body.Description)
	guard.MergeString(&department.Location, body.Location)
	guard.MergeString(&department.Status, body.Status)
	guard.MergeFloat(&department.Budget, body.Budget)
	if err := guard.MergeRef(&department.ParentDepartmentID, body.ParentDepartmentID, "parent department"); err != nil {
		return err
	}
	if err := guard.MergeRef(&department.ManagerID, body.ManagerID, "manager"); err != nil {
		return err
	}

	if err := h.departments.Update(c.Context(), department); err != nil {
		return err
	}
	return c.JSON(dto.DepartmentResponse{Success: true, Department: department})
}

// DeleteDepartment godoc
// @Summary      Soft-delete a department
// @Description  Rejects the delete while active employees or child departments reference it
// @Tags         departments
// @Produce      json
// @Param        id path string true "Department ID"
// @Success      200 {object} dto.MessageResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      403 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/departments/{id} [delete]
func (h *DepartmentHandler) DeleteDepartment(c *fiber.Ctx) error {
	viewer, err := viewerFrom(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	department, err := guard.Fetch(c.Context(), func(ctx context.Context) (models.Department, error) {
		return h.departments.FindByID(ctx, id)
	}, viewer.CompanyID, "Department")
	if err != nil {
		return err
	}

	err = guard.Dependents(c.Context(), "department",
		guard.Dependency{
			Label:  "active employee(s)",
			Remedy: "Please reassign them first.",
			Count: func(ctx context.Context) (int64, error) {
				return h.employees.CountActiveByDepartment(ctx, department.ID)
			},
		},
		guard.Dependency{
			Label:  "active child department(s)",
			Remedy: "Please reassign or deactivate them first.",
			Count: func(ctx context.Context) (int64, error) {
				return h.departments.CountActiveChildren(ctx, department.ID)
			},
		},
	)
	if err != nil {
		return err
	}

	department.Status = models.DepartmentInactive
	if err := h.departments.Update(c.Context(), department); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Department deleted successfully"})
}
