// Package apperrors defines the typed error taxonomy shared by the services
// and the Fiber error handler that renders every failure in the uniform
// response envelope.
package apperrors

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Error struct {
	StatusCode int    `json:"statusCode"`
	Status     string `json:"status"`
	Message    string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// NewValidation reports a missing or malformed field; never retried.
func NewValidation(message string) *Error {
	return &Error{StatusCode: fiber.StatusBadRequest, Status: "validation_error", Message: message}
}

// NewConflict reports a rejected operation such as a duplicate checkout or a
// re-scan inside the cooldown window.
func NewConflict(message string) *Error {
	return &Error{StatusCode: fiber.StatusConflict, Status: "conflict", Message: message}
}

func NewNotFound(message string) *Error {
	return &Error{StatusCode: fiber.StatusNotFound, Status: "not_found", Message: message}
}

func NewUnauthorized(message string) *Error {
	return &Error{StatusCode: fiber.StatusUnauthorized, Status: "unauthorized", Message: message}
}

func NewForbidden(message string) *Error {
	return &Error{StatusCode: fiber.StatusForbidden, Status: "forbidden", Message: message}
}

// ErrorHandler is installed as the Fiber app's ErrorHandler. Untyped errors
// (store failures and the like) surface as 500s with their message intact.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return c.Status(appErr.StatusCode).JSON(fiber.Map{
			"message":    appErr.Message,
			"status":     appErr.Status,
			"statusCode": appErr.StatusCode,
			"data":       nil,
		})
	}

	code := fiber.StatusInternalServerError
	status := "error"
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"message":    err.Error(),
		"status":     status,
		"statusCode": code,
		"data":       nil,
	})
}
