// Package httperr carries typed errors from services up to the single
// fiber error handler, which turns every failure into the
// {success:false, message} envelope.
package httperr

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

type E struct {
	Status  int
	Message string
}

func (e *E) Error() string { return e.Message }

func New(status int, message string) *E {
	return &E{Status: status, Message: message}
}

func BadRequest(message string) *E { return New(fiber.StatusBadRequest, message) }
func Forbidden(message string) *E  { return New(fiber.StatusForbidden, message) }
func NotFound(message string) *E   { return New(fiber.StatusNotFound, message) }

// Handler is installed as the fiber ErrorHandler. Unknown errors are
// logged and reported as a generic 500 so internal details never leak.
func Handler(c *fiber.Ctx, err error) error {
	var appErr *E
	if errors.As(err, &appErr) {
		return c.Status(appErr.Status).JSON(fiber.Map{
			"success": false,
			"message": appErr.Message,
		})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"success": false,
			"message": fiberErr.Message,
		})
	}

	log.Printf("unhandled error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "internal server error",
	})
}
