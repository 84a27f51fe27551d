package routes

import (
	"github.com/gofiber/fiber/v2"

	"talenthr/internal/controllers"
	"talenthr/internal/middleware"
)

func SetupReviews(router fiber.Router, h *controllers.ReviewHandler) {
	reviews := router.Group("/reviews")
	reviews.Get("/", h.ListReviews)
	reviews.Get("/:id", h.GetReview)
	reviews.Post("/", middleware.RequireManager(), h.CreateReview)
	reviews.Put("/:id", middleware.RequireManager(), h.UpdateReview)
}
