package routes

import (
	"github.com/gofiber/fiber/v2"

	"talenthr/internal/controllers"
)

func SetupReports(router fiber.Router, h *controllers.ReportHandler) {
	reports := router.Group("/reports")
	reports.Get("/overview", h.Overview)
}
