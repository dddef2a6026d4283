// Package response writes the JSON bodies returned by the HTTP API.
package response

import (
	"net/http"

	deliverycontext "eventdesk/internal/delivery/context"
	domainerrors "eventdesk/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`             // User-friendly error message
	Code      string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Details   string `json:"details,omitempty"` // Provider or validation detail
	RequestID string `json:"requestId,omitempty"`
}

// Success returns a successful response. Bodies are written as-is; clients read the
// fields at the top level.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success:   false,
		Error:     message,
		Code:      errorCode,
		Details:   details,
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}

// HandleAppError writes err as an error body when it carries a domain error and reports
// whether it did. Provider detail is kept on 5xx responses so the caller can tell a
// rejected grant from an outage.
func HandleAppError(c echo.Context, err error) bool {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return false
	}
	_ = Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

	return true
}
