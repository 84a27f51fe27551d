package routes

import (
	"github.com/gofiber/fiber/v2"

	"talenthr/internal/controllers"
)

func SetupUsers(router fiber.Router, h *controllers.UserHandler) {
	users := router.Group("/users")
	users.Get("/me", h.Me)
	users.Get("/", h.ListUsers)
}
