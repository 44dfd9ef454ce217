package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the JSON envelope every HTTP endpoint replies with.
// Data and Error are mutually exclusive; Code carries the HTTP status
// on failures so non-browser clients don't have to inspect headers.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Code    int         `json:"code,omitempty"`
}

// SuccessResponse writes a success envelope with the given payload
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler writes a failure envelope with the given status
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, Response{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse rejects a malformed or invalid request
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse rejects a request with missing or bad credentials
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusUnauthorized, orDefault(errorMessage, "Unauthorized"))
}

// ForbiddenResponse rejects an authenticated request that lacks the role
func ForbiddenResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusForbidden, orDefault(errorMessage, "Forbidden"))
}

// NotFoundResponse reports a missing resource
func NotFoundResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusNotFound, orDefault(errorMessage, "Resource not found"))
}

func orDefault(msg, def string) string {
	if msg == "" {
		return def
	}
	return msg
}
