package handler

import "github.com/labstack/echo/v4"

// envelope is the canonical success wrapper for all API responses.
// Errors take the same shape with success=false; the central error handler
// renders those.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// respond writes a success envelope with the given status and payload.
func respond(c echo.Context, status int, data any) error {
	return c.JSON(status, envelope{Success: true, Data: data})
}
