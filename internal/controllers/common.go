package controllers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"

	"talenthr/dto"
	"talenthr/internal/guard"
	"talenthr/internal/middleware"
	"talenthr/internal/models"
)

var validate = validator.New()

func parseAndValidate(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}

func paramID(c *fiber.Ctx) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return bson.NilObjectID, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return oid, nil
}

func viewerFrom(c *fiber.Ctx) (models.User, error) {
	return middleware.Viewer(c)
}

// ErrorHandler renders every error through the uniform envelope. Business
// rules arrive as *guard.Error with their status attached; anything else is
// a 500 with the message passed through.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var ge *guard.Error
	if errors.As(err, &ge) {
		return c.Status(ge.Status).JSON(dto.ErrorResponse{Success: false, Message: ge.Message})
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Success: false, Message: fe.Message})
	}

	logrus.WithError(err).WithField("path", c.Path()).Error("unhandled error")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Success: false, Message: err.Error()})
}
