package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"talenthr/internal/models"
)

// ViewerSource resolves the authenticated user's document; satisfied by
// repository.UserRepository.
type ViewerSource interface {
	FindByID(ctx context.Context, id bson.ObjectID) (models.User, error)
}

// InjectViewer resolves Locals("user_id") into the full user document so
// handlers can read the caller's tenant and role without another lookup.
func InjectViewer(users ViewerSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uidHex, ok := c.Locals("user_id").(string)
		if !ok || uidHex == "" {
			return fiber.ErrUnauthorized
		}

		uid, err := bson.ObjectIDFromHex(uidHex)
		if err != nil {
			return fiber.ErrUnauthorized
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		viewer, err := users.FindByID(ctx, uid)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return fiber.ErrUnauthorized
			}
			return err
		}
		c.Locals("viewer", viewer)
		return c.Next()
	}
}

// Viewer pulls the resolved user out of Locals.
func Viewer(c *fiber.Ctx) (models.User, error) {
	viewer, ok := c.Locals("viewer").(models.User)
	if !ok {
		return models.User{}, fiber.ErrUnauthorized
	}
	return viewer, nil
}

// RequireManager gates mutating routes to company_admin and hr_manager.
func RequireManager() fiber.Handler {
	return func(c *fiber.Ctx) error {
		viewer, err := Viewer(c)
		if err != nil {
			return err
		}
		if !viewer.CanManage() {
			return fiber.NewError(fiber.StatusForbidden, "insufficient role")
		}
		return c.Next()
	}
}
