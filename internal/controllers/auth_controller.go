package controllers

import (
	"github.com/gofiber/fiber/v2"

	"talenthr/dto"
	"talenthr/internal/services"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register godoc
// @Summary      Request registration OTP
// @Description  Starts company signup; the company and admin user are created after OTP verification
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.RegisterRequest true "Registration"
// @Success      200 {object} dto.MessageResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := parseAndValidate(c, &body); err != nil {
		return err
	}

	if err := h.auth.Register(c.Context(), body); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "OTP sent to email"})
}

// VerifyOTP godoc
// @Summary      Verify registration OTP
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.VerifyOTPRequest true "OTP"
// @Success      200 {object} dto.AuthResponse
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/auth/verify-otp [post]
func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	var body dto.VerifyOTPRequest
	if err := parseAndValidate(c, &body); err != nil {
		return err
	}

	user, token, err := h.auth.VerifyOTP(c.Context(), body.Email, body.OTP)
	if err != nil {
		return err
	}
	return c.JSON(dto.AuthResponse{Success: true, Token: token, User: user})
}

// Login godoc
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.LoginRequest true "Credentials"
// @Success      200 {object} dto.AuthResponse
// @Failure      401 {object} dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := parseAndValidate(c, &body); err != nil {
		return err
	}

	user, token, err := h.auth.Login(c.Context(), body.Email, body.Password)
	if err != nil {
		return err
	}
	return c.JSON(dto.AuthResponse{Success: true, Token: token, User: user})
}

// Invite godoc
// @Summary      Invite a user into the company
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.InviteRequest true "Invitation"
// @Success      201 {object} dto.InviteResponse
// @Failure      403 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Router       /api/auth/invitations [post]
func (h *AuthHandler) Invite(c *fiber.Ctx) error {
	viewer, err := viewerFrom(c)
	if err != nil {
		return err
	}

	var body dto.InviteRequest
	if err := parseAndValidate(c, &body); err != nil {
		return err
	}

	inv, err := h.auth.Invite(c.Context(), viewer, body)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.InviteResponse{Success: true, Invitation: inv})
}

// AcceptInvite godoc
// @Summary      Accept an invitation
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.AcceptInviteRequest true "Invitation acceptance"
// @Success      200 {object} dto.AuthResponse
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/auth/invitations/accept [post]
func (h *AuthHandler) AcceptInvite(c *fiber.Ctx) error {
	var body dto.AcceptInviteRequest
	if err := parseAndValidate(c, &body); err != nil {
		return err
	}

	user, token, err := h.auth.AcceptInvite(c.Context(), body)
	if err != nil {
		return err
	}
	return c.JSON(dto.AuthResponse{Success: true, Token: token, User: user})
}
