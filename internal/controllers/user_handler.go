package controllers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"talenthr/internal/models"
)

type UserLister interface {
	FindByCompany(ctx context.Context, companyID bson.ObjectID) ([]models.User, error)
}

type UserHandler struct {
	users UserLister
}

func NewUserHandler(users UserLister) *UserHandler {
	return &UserHandler{users: users}
}

// Me godoc
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /api/users/me [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	viewer, err := viewerFrom(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "user": viewer})
}

// ListUsers godoc
// @Summary      List company users
// @Tags         users
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /api/users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	viewer, err := viewerFrom(c)
	if err != nil {
		return err
	}

	users, err := h.users.FindByCompany(c.Context(), viewer.CompanyID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "users": users})
}
