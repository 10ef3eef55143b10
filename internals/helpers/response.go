package helper

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Error writes the standard error body: {"error": <label>, "message": <detail>}.
func Error(c *fiber.Ctx, code int, label, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"error":   label,
		"message": message,
	})
}

func errorLabel(code int) string {
	switch code {
	case fiber.StatusNotFound:
		return "Resource not found"
	case fiber.StatusBadRequest:
		return "Bad request"
	case fiber.StatusConflict:
		return "Conflict"
	case fiber.StatusTooManyRequests:
		return "Too many requests"
	default:
		return "Internal server error"
	}
}

// FromFiberError renders a *fiber.Error with the standard body. Anything else
// is logged in full and surfaced as a generic 500; internal detail never
// reaches the caller.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return Error(c, fe.Code, errorLabel(fe.Code), fe.Message)
	}
	log.Println("[ERROR] unhandled:", err)
	return Error(c, fiber.StatusInternalServerError, "Internal server error",
		"An unexpected error occurred. Please try again later.")
}

// ValidationError flattens validator.v10 field errors into one message.
func ValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return Error(c, fiber.StatusBadRequest, "Bad request", "Invalid input")
	}

	parts := make([]string, 0, len(ve))
	for _, fieldErr := range ve {
		parts = append(parts, fieldErr.Field()+": "+fieldErr.Tag())
	}
	return Error(c, fiber.StatusBadRequest, "Bad request", "Validation failed: "+strings.Join(parts, ", "))
}
