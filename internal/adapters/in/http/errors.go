package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"kitchen/internal/adapters/in/http/servers"
	"kitchen/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const messageInternal = "Internal server error"

// NewErrorHandler renders every failure as {"error": "..."}.
//
//	NotFound                      -> 404
//	InvalidTransition, bad input  -> 400
//	StorageUnavailable, the rest  -> 500
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		status, message := statusOf(err)
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "request failed",
				"method", ctx.Request().Method,
				"path", ctx.Path(),
				"error", err,
			)
		}

		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(status)
		} else {
			writeErr = ctx.JSON(status, servers.Error{Error: message})
		}
		if writeErr != nil {
			logger.ErrorContext(ctx.Request().Context(), "failed to write error response", "error", writeErr)
		}
	}
}

func statusOf(err error) (int, string) {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		if httpErr.Code >= http.StatusInternalServerError {
			return httpErr.Code, messageInternal
		}
		return httpErr.Code, fmt.Sprint(httpErr.Message)
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrStorageIsUnavailable):
		return http.StatusInternalServerError, errs.ErrStorageIsUnavailable.Error()
	case errors.Is(err, errs.ErrTransitionIsInvalid), errs.IsMalformedInput(err):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, messageInternal
	}
}
