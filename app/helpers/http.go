package helpers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/apperrors"
)

var validate = validator.New()

// CreateSuccess wraps handler output in the envelope every endpoint returns.
func CreateSuccess(c *fiber.Ctx, statusCode int, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"message":    message,
		"status":     "success",
		"statusCode": statusCode,
		"data":       data,
	})
}

// ParseAndValidate binds the request body onto dst and runs struct validation.
func ParseAndValidate(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return apperrors.NewValidation("Invalid request body")
	}
	if err := validate.Struct(dst); err != nil {
		return apperrors.NewValidation(err.Error())
	}
	return nil
}
