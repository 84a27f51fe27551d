package routes

import (
	"github.com/gofiber/fiber/v2"

	"talenthr/internal/controllers"
	"talenthr/internal/middleware"
)

func SetupEmployees(router fiber.Router, h *controllers.EmployeeHandler) {
	employees := router.Group("/employees")
	employees.Get("/", h.ListEmployees)
	employees.Get("/:id", h.GetEmployee)
	employees.Post("/", middleware.RequireManager(), h.CreateEmployee)
	employees.Put("/:id", middleware.RequireManager(), h.UpdateEmployee)
	employees.Delete("/:id", middleware.RequireManager(), h.DeleteEmployee)
}
