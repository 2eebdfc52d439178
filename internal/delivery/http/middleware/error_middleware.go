// Package middleware contains the HTTP middleware for the application.
package middleware

import (
	"log/slog"
	"net/http"

	domainerrors "cumple/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware converts errors escaping the handlers into the unified
// JSON envelope. It is installed as Echo's HTTPErrorHandler.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware is the constructor for ErrorMiddleware.
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError maps AppError to its HTTP status and business code,
// passes through Echo's own HTTPError, and treats everything else as an
// internal error.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		m.write(c, appErr.HTTPCode(), appErr.Message(), appErr.ErrorCode(), appErr.Details())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		m.write(c, httpErr.Code, message, "HTTP_ERROR", message)

		return
	}

	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	m.write(c, http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR", err.Error())
}

func (m *ErrorMiddleware) write(c echo.Context, code int, message, errorCode, details string) {
	//nolint:errcheck // the response is already being written; nothing left to do on failure
	c.JSON(code, domainerrors.Response{
		Success: false,
		Code:    code,
		Message: message,
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}
