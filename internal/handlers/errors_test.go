package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandlerStatusPages(t *testing.T) {
	testCases := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{"bad request", fiber.ErrBadRequest, fiber.StatusBadRequest},
		{"unauthorized", fiber.ErrUnauthorized, fiber.StatusUnauthorized},
		{"forbidden", fiber.ErrForbidden, fiber.StatusForbidden},
		{"not found", fiber.ErrNotFound, fiber.StatusNotFound},
		{"method not allowed", fiber.ErrMethodNotAllowed, fiber.StatusMethodNotAllowed},
		{"conflict", fiber.ErrConflict, fiber.StatusConflict},
		{"unprocessable", fiber.ErrUnprocessableEntity, fiber.StatusUnprocessableEntity},
		{"internal error", fiber.ErrInternalServerError, fiber.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fiberApp := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
			fiberApp.Get("/boom", func(c *fiber.Ctx) error {
				return tc.err
			})

			resp, err := fiberApp.Test(httptest.NewRequest(fiber.MethodGet, "/boom", nil))
			require.NoError(t, err)
			assert.Equal(t, tc.expectedCode, resp.StatusCode)

			body := decodeBody(t, resp)
			assert.Equal(t, float64(tc.expectedCode), body["code"])
		})
	}
}

func TestErrorHandlerUnknownStatusFallsBackToInternal(t *testing.T) {
	fiberApp := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	fiberApp.Get("/teapot", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})

	resp, err := fiberApp.Test(httptest.NewRequest(fiber.MethodGet, "/teapot", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	// Raw error text must not leak
	body := decodeBody(t, resp)
	assert.Equal(t, "Internal Server Error", body["error"])
}
