package guard

import "github.com/gofiber/fiber/v2"

// Error is a business-rule violation carrying the HTTP status it maps to.
// Handlers return these untouched; the app error handler renders the
// uniform {success:false, message} envelope.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

func BadRequest(msg string) *Error { return &Error{Status: fiber.StatusBadRequest, Message: msg} }
func Unauthorized(msg string) *Error {
	return &Error{Status: fiber.StatusUnauthorized, Message: msg}
}
func Forbidden(msg string) *Error  { return &Error{Status: fiber.StatusForbidden, Message: msg} }
func NotFound(msg string) *Error   { return &Error{Status: fiber.StatusNotFound, Message: msg} }
func Conflict(msg string) *Error   { return &Error{Status: fiber.StatusConflict, Message: msg} }
