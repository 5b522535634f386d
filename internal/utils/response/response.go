package response

import (
	"fraudtriage/internal/utils/validation"

	"github.com/gofiber/fiber/v2"
)

func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{
		"message": message,
		"data":    data,
	})
}

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

func BadGateway(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadGateway, message)
}

func ServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}

// ValidationError reports the first failing field as the error and lists all of them.
func ValidationError(c *fiber.Ctx, v *validation.Validator) error {
	fields := make(fiber.Map, len(v.Errors))
	for _, e := range v.Errors {
		fields[e.Field] = e.Message
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  v.Errors[0].Message,
		"fields": fields,
	})
}
