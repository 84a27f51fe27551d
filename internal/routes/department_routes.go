package routes

import (
	"github.com/gofiber/fiber/v2"

	"talenthr/internal/controllers"
	"talenthr/internal/middleware"
)

func SetupDepartments(router fiber.Router, h *controllers.DepartmentHandler) {
	departments := router.Group("/departments")
	departments.Get("/", h.ListDepartments)
	departments.Get("/:id", h.GetDepartment)
	departments.Post("/", middleware.RequireManager(), h.CreateDepartment)
	departments.Put("/:id", middleware.RequireManager(), h.UpdateDepartment)
	departments.Delete("/:id", middleware.RequireManager(), h.DeleteDepartment)
}
