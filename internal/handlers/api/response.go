package api

import (
	"github.com/gofiber/fiber/v3"
)

// envelope is the body of every /api response. Data may accompany an error,
// as when a rejected reload reports the records still in use.
type envelope struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

// jsonSuccess returns a 200 response with data wrapped in the envelope.
func jsonSuccess(c fiber.Ctx, data any) error {
	return c.JSON(envelope{Status: "ok", Data: data})
}

// jsonError returns an error response with the given HTTP status code.
func jsonError(c fiber.Ctx, status int, message string) error {
	return jsonErrorData(c, status, message, nil)
}

// jsonErrorData is jsonError with a payload describing the state left behind.
func jsonErrorData(c fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(envelope{Status: "error", Data: data, Error: message})
}
