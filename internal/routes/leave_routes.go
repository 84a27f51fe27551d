package routes

import (
	"github.com/gofiber/fiber/v2"

	"talenthr/internal/controllers"
	"talenthr/internal/middleware"
)

func SetupLeaves(router fiber.Router, h *controllers.LeaveHandler) {
	leaves := router.Group("/leaves")
	leaves.Get("/", h.ListLeaves)
	leaves.Get("/:id", h.GetLeave)
	leaves.Post("/", h.CreateLeave)
	leaves.Put("/:id", middleware.RequireManager(), h.UpdateLeave)
}
