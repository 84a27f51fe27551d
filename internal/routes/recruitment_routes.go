package routes

import (
	"github.com/gofiber/fiber/v2"

	"talenthr/internal/controllers"
	"talenthr/internal/middleware"
)

func SetupJobPostings(router fiber.Router, h *controllers.JobPostingHandler) {
	jobs := router.Group("/jobs")
	jobs.Get("/", h.ListJobPostings)
	jobs.Get("/:id", h.GetJobPosting)
	jobs.Post("/", middleware.RequireManager(), h.CreateJobPosting)
	jobs.Put("/:id", middleware.RequireManager(), h.UpdateJobPosting)
	jobs.Delete("/:id", middleware.RequireManager(), h.DeleteJobPosting)
}

func SetupCandidates(router fiber.Router, h *controllers.CandidateHandler) {
	candidates := router.Group("/candidates")
	candidates.Get("/", h.ListCandidates)
	candidates.Get("/:id", h.GetCandidate)
	candidates.Post("/", middleware.RequireManager(), h.CreateCandidate)
	candidates.Put("/:id", middleware.RequireManager(), h.UpdateCandidate)
	candidates.Delete("/:id", middleware.RequireManager(), h.DeleteCandidate)
}

func SetupInterviews(router fiber.Router, h *controllers.InterviewHandler) {
	interviews := router.Group("/interviews")
	interviews.Get("/", h.ListInterviews)
	interviews.Get("/:id", h.GetInterview)
	interviews.Post("/", middleware.RequireManager(), h.CreateInterview)
	interviews.Put("/:id", middleware.RequireManager(), h.UpdateInterview)
	interviews.Delete("/:id", middleware.RequireManager(), h.DeleteInterview)
}
