package http

import (
	"errors"
	"log/slog"
	"net/http"

	"dishly/internal/generated/servers"
	"dishly/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps an error kind to the HTTP status it is reported with.
// Validation is checked first so that a joined constructor error never
// surfaces as anything else.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrMissingPrincipal), errors.Is(err, ErrInvalidToken):
		return http.StatusUnauthorized
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrReferentialIntegrity),
		errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(ctx echo.Context, err error) error {
	status := statusFor(err)
	message := err.Error()

	if status == http.StatusInternalServerError {
		if errors.Is(err, errs.ErrIntegrity) {
			s.logger.ErrorContext(ctx.Request().Context(), "Stored order violates an invariant",
				"path", ctx.Path(), "error", err)
		} else {
			s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
				"path", ctx.Path(), "error", err)
		}
		message = http.StatusText(http.StatusInternalServerError)
	}

	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: message,
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorHandler renders echo's own errors (routing, binding, rate limiting)
// in the same envelope the handlers use.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := http.StatusText(status)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(status)
			}
		} else {
			logger.ErrorContext(ctx.Request().Context(), "Unhandled error", "path", ctx.Path(), "error", err)
		}

		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(status)
		} else {
			writeErr = ctx.JSON(status, servers.Error{Code: status, Message: message})
		}
		if writeErr != nil {
			logger.ErrorContext(ctx.Request().Context(), "Failed to write error response", "error", writeErr)
		}
	}
}
