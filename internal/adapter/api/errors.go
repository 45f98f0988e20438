package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"wikoo-core/internal/logger"
)

// ValidationError is a well-formed body that misses or breaks a field rule.
type ValidationError struct {
	Details string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Details
}

// NewErrorHandler renders every error returned by a handler as
// {"error": "..."}.
func NewErrorHandler(log logger.Interface) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error":   "validation failed",
				"details": verr.Details,
			})
		}

		code := fiber.StatusInternalServerError
		msg := "internal server error"
		var ferr *fiber.Error
		if errors.As(err, &ferr) {
			code = ferr.Code
			msg = ferr.Message
		}
		if code >= fiber.StatusInternalServerError {
			log.Error("request failed", "path", c.Path(), "request_id", requestID(c), "error", err)
		}
		return c.Status(code).JSON(fiber.Map{"error": msg})
	}
}
