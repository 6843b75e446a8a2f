package handler

import "github.com/labstack/echo/v4"

// apiResponse is the success envelope every endpoint renders:
// {"success": true, "message": "...", "data": ...}. Errors are rendered by
// the central error handler with the matching failure envelope.
type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func respond(c echo.Context, code int, message string, data any) error {
	return c.JSON(code, apiResponse{Success: true, Message: message, Data: data})
}
