package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// errorPages is the fixed set of status-coded error pages. Any status
// outside the set renders as an internal error.
var errorPages = map[int]string{
	fiber.StatusBadRequest:          "Bad Request",
	fiber.StatusUnauthorized:        "Unauthorized",
	fiber.StatusForbidden:           "Forbidden",
	fiber.StatusNotFound:            "Not Found",
	fiber.StatusMethodNotAllowed:    "Method Not Allowed",
	fiber.StatusConflict:            "Conflict",
	fiber.StatusUnprocessableEntity: "Unprocessable Entity",
	fiber.StatusInternalServerError: "Internal Server Error",
}

// ErrorHandler renders the status-specific error page for every failure that
// escapes a handler. Raw error text never reaches the client.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}

	title, ok := errorPages[code]
	if !ok {
		code = fiber.StatusInternalServerError
		title = errorPages[code]
	}

	return c.Status(code).JSON(fiber.Map{
		"error": title,
		"code":  code,
	})
}
