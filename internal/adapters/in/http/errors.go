package http

import (
	"errors"
	"log/slog"
	"net/http"

	"procurement/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned for a missing or invalid bearer token.
var ErrUnauthorized = echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid bearer token")

// StatusFor maps an error to the HTTP status reported to the client.
func StatusFor(err error) int {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, errs.ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusConflict
	case errs.IsValidation(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrPersistenceFailure):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler writes every error as an Error body. Server-side failures are
// logged and their details are not exposed.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := StatusFor(err)
		message := err.Error()

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			if m, ok := httpErr.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(httpErr.Code)
			}
		}

		if status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"status", status,
				"error", err,
			)
			message = http.StatusText(status)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		if writeErr := c.JSON(status, Error{Code: status, Message: message}); writeErr != nil {
			logger.WarnContext(c.Request().Context(), "failed to write error response", "error", writeErr)
		}
	}
}

func badRequest(message string, err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, message).SetInternal(err)
}
