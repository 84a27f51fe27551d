package controllers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"talenthr/dto"
	"talenthr/internal/guard"
	"talenthr/internal/models"
	"talenthr/utils"
)

type EmployeeStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (models.Employee, error)
	FindByUser(ctx context.Context, userID bson.ObjectID) (models.Employee, error)
	List(ctx context.Context, companyID bson.ObjectID) ([]models.Employee, error)
	Insert(ctx context.Context, e models.Employee) (models.Employee, error)
	Update(ctx context.Context, e models.Employee) error
}

type DepartmentDirectory interface {
	FindByID(ctx context.Context, id bson.ObjectID) (models.Department, error)
}

type EmployeeHandler struct {
	employees   EmployeeStore
	departments DepartmentDirectory
	users       UserDirectory
}

func NewEmployeeHandler(employees EmployeeStore, departments DepartmentDirectory, users UserDirectory) *EmployeeHandler {
	return &EmployeeHandler{employees: employees, departments: departments, users: users}
}

func (h *EmployeeHandler) checkRefs(c *fiber.Ctx, viewer models.User, departmentHex, managerHex string) error {
	if departmentHex != "" {
		departmentID, err := utils.Oid(departmentHex)
		if err != nil {
			return guard.BadRequest("Invalid department")
		}
		_, err = guard.Reference(c.Context(), func(ctx context.Context) (models.Department, error) {
			return h.departments.FindByID(ctx, departmentID)
		}, viewer.CompanyID, "department")
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

// ListEmployees godoc
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Success      200 {object} dto.EmployeeListResponse
// @Router       /api/employees [get]
func (h *EmployeeHandler) ListEmployees(c *fiber.Ctx) error {
	viewer, err := viewerFrom(c)
	if err != nil {
		return err
	}

	employees, err := h.employees.List(c.Context(), viewer.CompanyID)
	if err != nil {
		return err
	}
	return c.JSON(dto.EmployeeListResponse{Success: true, Employees: employees})
}

// GetEmployee godoc
// @Summary      Get an employee
// @Tags         employees
// @Produce      json
// @Param        id path string true "Employee ID"
// @Success      200 {object} dto.EmployeeResponse
// @Failure      403 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) GetEmployee(c *fiber.Ctx) error {
	viewer, err := viewerFrom(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	employee, err := guard.Fetch(c.Context(), func(ctx context.Context) (models.Employee, error) {
		return h.employees.FindByID(ctx, id)
	}, viewer.CompanyID, "Employee")
	if err != nil {
		return err
	}
	return c.JSON(dto.EmployeeResponse{Success: true, Employee: employee})
}

// CreateEmployee godoc
// @Summary      Create an employee record
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body body dto.EmployeeCreate true "Employee"
// @Success      201 {object} dto.EmployeeResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) CreateEmployee(c *fiber.Ctx) error {
	viewer, err := viewerFrom(c)
	if err != nil {
		return err
	}

	var body dto.EmployeeCreate
	if err := parseAndValidate(c, &body); err != nil {
		return err
	}

	userID, err := utils.Oid(body.UserID)
	if err != nil {
		return guard.BadRequest("Invalid user")
	}
	user, err := guard.Reference(c.Context(), func(ctx context.Context) (models.User, error) {
		return h.users.FindByID(ctx, userID)
	}, viewer.CompanyID, "user")
	if err != nil {
		return err
	}

	// One employee record per user.
	if _, err := h.employees.FindByUser(c.Context(), user.ID); err == nil {
		return guard.Conflict("Employee record already exists for this user")
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	if err := h.checkRefs(c, viewer, body.DepartmentID, body.ManagerID); err != nil {
		return err
	}

	employee := models.Employee{
		CompanyID:      viewer.CompanyID,
		UserID:         user.ID,
		Position:       body.Position,
		EmploymentType: body.EmploymentType,
		HireDate:       body.HireDate,
		Salary:         body.Salary,
		Contact:        body.Contact,
		Emergency:      body.Emergency,
		Status:         models.EmployeeActive,
	}
	if body.DepartmentID != "" {
		employee.DepartmentID, _ = utils.Oid(body.DepartmentID)
	}
	if body.ManagerID != "" {
		employee.ManagerID, _ = utils.Oid(body.ManagerID)
	}

	employee, err = h.employees.Insert(c.Context(), employee)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.EmployeeResponse{Success: true, Employee: employee})
}

// UpdateEmployee godoc
// @Summary      Update an employee record
// @Description  Partial update; only supplied fields overwrite, empty department/manager clears the reference
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        id path string true "Employee ID"
// @Param        body body dto.EmployeeUpdate true "Fields to update"
// @Success      200 {object} dto.EmployeeResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      403 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/employees/{id} [put]
func (h *EmployeeHandler) UpdateEmployee(c *fiber.Ctx) error {
	viewer, err := viewerFrom(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	employee, err := guard.Fetch(c.Context(), func(ctx context.Context) (models.Employee, error) {
		return h.employees.FindByID(ctx, id)
	}, viewer.CompanyID, "Employee")
	if err != nil {
		return err
	}

	var body dto.EmployeeUpdate
	if err := parseAndValidate(c, &body); err != nil {
		return err
	}

	departmentHex := ""
	if body.DepartmentID != nil {
		departmentHex = *body.DepartmentID
	}
	managerHex := ""
	if body.ManagerID != nil {
		managerHex = *body.ManagerID
	}
	if err := h.checkRefs(c, viewer, departmentHex, managerHex); err != nil {
		return err
	}

	guard.MergeString(&employee.Position, body.Position)
	guard.MergeString(&employee.EmploymentType, body.EmploymentType)
	guard.MergeString(&employee.Status, body.Status)
	guard.MergeFloat(&employee.Salary, body.Salary)
	guard.MergeTime(&employee.HireDate, body.HireDate)
	if body.Contact != nil {
		employee.Contact = *body.Contact
	}
	if body.Emergency != nil {
		employee.Emergency = *body.Emergency
	}
	if err := guard.MergeRef(&employee.DepartmentID, body.DepartmentID, "department"); err != nil {
		return err
	}
	if err := guard.MergeRef(&employee.ManagerID, body.ManagerID, "manager"); err != nil {
		return err
	}

	if err := h.employees.Update(c.Context(), employee); err != nil {
		return err
	}
	return c.JSON(dto.EmployeeResponse{Success: true, Employee: employee})
}

// DeleteEmployee godoc
// @Summary      Terminate an employee record
// @Description  Soft delete; flips status to terminated, the record is retained
// @Tags         employees
// @Produce      json
// @Param        id path string true "Employee ID"
// @Success      200 {object} dto.MessageResponse
// @Failure      403 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c *fiber.Ctx) error {
	viewer, err := viewerFrom(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	employee, err := guard.Fetch(c.Context(), func(ctx context.Context) (models.Employee, error) {
		return h.employees.FindByID(ctx, id)
	}, viewer.CompanyID, "Employee")
	if err != nil {
		return err
	}

	employee.Status = models.EmployeeTerminated
	if err := h.employees.Update(c.Context(), employee); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Employee terminated successfully"})
}
