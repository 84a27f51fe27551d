package routes

import (
	"github.com/gofiber/fiber/v2"

	"talenthr/internal/controllers"
	"talenthr/internal/middleware"
)

// SetupAuthPublic mounts the routes that must work without a token.
func SetupAuthPublic(router fiber.Router, h *controllers.AuthHandler) {
	auth := router.Group("/auth")
	auth.Post("/register", h.Register)
	auth.Post("/verify-otp", h.VerifyOTP)
	auth.Post("/login", h.Login)
	auth.Post("/invitations/accept", h.AcceptInvite)
}

// SetupAuthProtected mounts invitation issuing, admin/hr only.
func SetupAuthProtected(router fiber.Router, h *controllers.AuthHandler) {
	auth := router.Group("/auth")
	auth.Post("/invitations", middleware.RequireManager(), h.Invite)
}
